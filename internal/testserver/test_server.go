package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/quill/internal/app"
	"github.com/rpggio/quill/internal/config"
	"github.com/rpggio/quill/internal/mcp"
	"github.com/rpggio/quill/internal/sqlite"
	"github.com/rpggio/quill/internal/transport"
	"github.com/stretchr/testify/require"
)

// TestServer is the full HTTP surface (REST and MCP) over an in-memory journal.
type TestServer struct {
	Server *httptest.Server
	App    *app.App
}

// New starts a server whose statistics use UTC days.
func New(t *testing.T) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	a, err := app.New(db, config.StatsConfig{Timezone: "UTC", TopTags: 10}, nil)
	require.NoError(t, err)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Entries:  a.Entries,
			Moods:    a.Moods,
			Tags:     a.Tags,
			Stats:    a.Stats,
			Activity: a.Activity,
		},
	})
	router := transport.NewServer(transport.Services{
		Entries:  a.Entries,
		Moods:    a.Moods,
		Tags:     a.Tags,
		Stats:    a.Stats,
		Activity: a.Activity,
	}, mcp.NewHTTPHandler(mcpServer), nil)

	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		_ = a.Close()
	})

	return &TestServer{Server: server, App: a}
}

// URL returns the absolute URL of path on the server.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// MCPSession connects an MCP client over streamable HTTP.
func (ts *TestServer) MCPSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{Endpoint: ts.URL("/mcp")}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}
