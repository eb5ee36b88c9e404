package mcp

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/felixgeelhaar/mcp-go/middleware"
	"github.com/felixgeelhaar/mcp-go/testutil"
	"github.com/felixgeelhaar/tasklist/internal/app"
	"github.com/felixgeelhaar/tasklist/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	container := app.NewConcurrentContainer(&config.Config{}, nil)

	srv, err := NewServer(container, nil)
	require.NoError(t, err)

	tc := testutil.NewTestClient(t, srv)
	defer tc.Close()

	tools, err := tc.ListTools()
	require.NoError(t, err)
	assert.Len(t, tools, 7)
}

func TestNewServer_RequiresContainer(t *testing.T) {
	_, err := NewServer(nil, nil)
	assert.Error(t, err)
}

func TestServe_RequiresConfig(t *testing.T) {
	err := Serve(context.Background(), nil, app.NewConcurrentContainer(&config.Config{}, nil), nil)
	assert.Error(t, err)
}

func TestMiddlewareStack(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	open := middlewareStack(&config.Config{}, logger)
	assert.Contains(t, buf.String(), "MCP auth token not set")

	buf.Reset()
	secured := middlewareStack(&config.Config{MCPAuthToken: "secret"}, logger)
	assert.Len(t, secured, len(open)+1)
	assert.NotContains(t, buf.String(), "MCP auth token not set")
}

func TestFieldsToArgs(t *testing.T) {
	args := fieldsToArgs([]middleware.Field{
		{Key: "method", Value: "tools/list"},
		{Key: "status", Value: 200},
	})

	assert.Equal(t, []any{"method", "tools/list", "status", 200}, args)
}
