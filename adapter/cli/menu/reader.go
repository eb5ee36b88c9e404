package menu

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

var errReaderClosed = errors.New("line reader closed")

// lineReader reads input lines on a background goroutine so a blocked read
// can be abandoned when the context is canceled. Lines have no length limit;
// oversized input is left to the field validators.
type lineReader struct {
	src       io.Reader
	once      sync.Once
	closeOnce sync.Once
	lines     chan string
	done      chan struct{}
	stopped   chan struct{}
	err       error
}

func newLineReader(src io.Reader) *lineReader {
	return &lineReader{
		src:     src,
		lines:   make(chan string),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (r *lineReader) start() {
	go func() {
		defer close(r.stopped)
		defer close(r.lines)

		br := bufio.NewReader(r.src)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				select {
				case r.lines <- trimLineEnd(line):
				case <-r.done:
					r.err = errReaderClosed
					return
				}
			}
			if err != nil {
				r.err = err
				return
			}
		}
	}()
}

// ReadLine returns the next line without its terminator. It returns io.EOF
// once input is exhausted and ctx.Err() if the context ends first.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	r.once.Do(r.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", errReaderClosed
	case text, ok := <-r.lines:
		if !ok {
			return "", r.err
		}
		return text, nil
	}
}

// Close stops delivery. A line read after Close is dropped instead of
// blocking the reading goroutine.
func (r *lineReader) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}

func trimLineEnd(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
