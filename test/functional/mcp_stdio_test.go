package functional_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// stdioSession wraps an MCP client session for stdio transport testing
type stdioSession struct {
	session *sdkmcp.ClientSession
	cancel  context.CancelFunc
}

func findBinary(t *testing.T) string {
	t.Helper()
	for _, path := range []string{"./bin/quill", "../../bin/quill"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skip("quill binary not found. Run 'go build -o bin/quill ./cmd/quill' first.")
	return ""
}

func newStdioSession(t *testing.T) *stdioSession {
	t.Helper()
	return newStdioSessionWithEnv(t, nil)
}

func newStdioSessionWithEnv(t *testing.T, extraEnv []string) *stdioSession {
	t.Helper()

	binaryPath := findBinary(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	cmd := exec.CommandContext(ctx, binaryPath, "mcp")
	cmd.Env = append(os.Environ(),
		"QUILL_DB_PATH=:memory:",
		"QUILL_TIMEZONE=UTC",
	)
	if len(extraEnv) > 0 {
		cmd.Env = append(cmd.Env, extraEnv...)
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		t.Fatalf("Failed to connect: %v", err)
	}

	t.Cleanup(func() {
		session.Close()
		cancel()
	})

	return &stdioSession{session: session, cancel: cancel}
}

func (s *stdioSession) callTool(t *testing.T, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := s.session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			require.False(t, result.IsError, "Tool %s returned error: %s", name, textContent.Text)
			return json.RawMessage(textContent.Text)
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil
}

func TestStdioFunctional_WriteAndSearch(t *testing.T) {
	s := newStdioSession(t)

	moodResp := s.callTool(t, "create_mood", map[string]any{"name": "Hopeful", "emoji": "🌱", "color": "#10b981"})
	var m struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(moodResp, &m))

	entryResp := s.callTool(t, "create_entry", map[string]any{
		"title":   "Harbor walk",
		"content": "Saw the ferries come in",
		"mood_id": m.ID,
		"tags":    []map[string]any{{"name": "walks"}},
	})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(entryResp, &created))
	require.NotEmpty(t, created.ID)

	searchResp := s.callTool(t, "search_entries", map[string]any{"query": "ferr"})
	require.Contains(t, string(searchResp), created.ID)

	listResp := s.callTool(t, "list_entries", map[string]any{"mood_ids": []string{m.ID}})
	require.Contains(t, string(listResp), created.ID)

	statsResp := s.callTool(t, "get_stats", nil)
	var snap struct {
		TotalEntries  int `json:"total_entries"`
		CurrentStreak int `json:"current_streak"`
	}
	require.NoError(t, json.Unmarshal(statsResp, &snap))
	require.Equal(t, 1, snap.TotalEntries)
	require.Equal(t, 1, snap.CurrentStreak)
}

func TestStdioFunctional_MCPProtocolCompliance(t *testing.T) {
	s := newStdioSession(t)

	initResult := s.session.InitializeResult()
	require.NotNil(t, initResult)
	require.NotNil(t, initResult.ServerInfo)
	require.Equal(t, "quill", initResult.ServerInfo.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := s.session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 13)

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
	}
	require.Contains(t, toolMap, "create_entry")
	require.Contains(t, toolMap, "get_stats")
	require.NotEmpty(t, toolMap["create_entry"].Description)
}

func TestStdioFunctional_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "quill.log")
	s := newStdioSessionWithEnv(t, []string{
		"QUILL_LOG_PATH=" + logPath,
		"QUILL_LOG_LEVEL=debug",
	})

	_ = s.callTool(t, "list_moods", nil)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(logPath)
		if err != nil {
			return false
		}
		text := string(data)
		return strings.Contains(text, `msg="mcp traffic"`) &&
			strings.Contains(text, "stage=request") &&
			strings.Contains(text, "stage=response")
	}, 5*time.Second, 100*time.Millisecond)
}

func TestStdioFunctional_DocumentationResources(t *testing.T) {
	s := newStdioSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resources, err := s.session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resources.Resources, 1)
	require.Equal(t, "quill://docs/guide", resources.Resources[0].URI)
	require.Equal(t, "text/markdown", resources.Resources[0].MIMEType)

	res, err := s.session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "quill://docs/guide"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Contents)
	require.NotEmpty(t, res.Contents[0].Text)
}
