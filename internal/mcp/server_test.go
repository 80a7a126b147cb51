package mcp_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/quill/internal/app"
	"github.com/rpggio/quill/internal/calendar"
	"github.com/rpggio/quill/internal/config"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/mcp"
	"github.com/rpggio/quill/internal/sqlite"
	"github.com/rpggio/quill/internal/stats"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	session *sdkmcp.ClientSession
}

func newTestClient(t *testing.T, svc mcp.Services) *testClient {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(mcp.Config{
		Services: svc,
		Now:      func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) },
	})
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})
	return &testClient{session: session}
}

func newAppServices(t *testing.T) (*app.App, mcp.Services) {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	a, err := app.New(db, config.StatsConfig{Timezone: "UTC", TopTags: 10}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a, mcp.Services{
		Entries:  a.Entries,
		Moods:    a.Moods,
		Tags:     a.Tags,
		Stats:    a.Stats,
		Activity: a.Activity,
	}
}

func (c *testClient) call(t *testing.T, name string, args map[string]any) (string, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := c.session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s", name)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "tool %s returned non-text content", name)
	return text.Text, result.IsError
}

func (c *testClient) callOK(t *testing.T, name string, args map[string]any, out any) {
	t.Helper()
	text, isErr := c.call(t, name, args)
	require.False(t, isErr, "tool %s failed: %s", name, text)
	if out != nil {
		require.NoError(t, json.Unmarshal([]byte(text), out))
	}
}

func (c *testClient) callErr(t *testing.T, name string, args map[string]any) mcp.APIError {
	t.Helper()
	text, isErr := c.call(t, name, args)
	require.True(t, isErr, "tool %s unexpectedly succeeded: %s", name, text)
	var apiErr mcp.APIError
	require.NoError(t, json.Unmarshal([]byte(text), &apiErr))
	return apiErr
}

func TestServer_ListsToolsAndGuide(t *testing.T) {
	_, svc := newAppServices(t)
	c := newTestClient(t, svc)
	ctx := context.Background()

	tools, err := c.session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{
		"list_entries", "get_entry", "create_entry", "update_entry", "delete_entry",
		"search_entries", "get_stats", "list_moods", "create_mood", "list_tags",
		"get_calendar", "recent_activity", "render_markdown",
	}, names)

	res, err := c.session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "quill://docs/guide"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "Journal Guide")
}

func TestServer_EntryLifecycle(t *testing.T) {
	_, svc := newAppServices(t)
	c := newTestClient(t, svc)

	var m mood.Mood
	c.callOK(t, "create_mood", map[string]any{"name": "Calm", "emoji": "😌", "color": "#22c55e"}, &m)
	require.NotEmpty(t, m.ID)

	var created entry.Entry
	c.callOK(t, "create_entry", map[string]any{
		"title":   "First",
		"content": "Walked by the **river**",
		"mood_id": m.ID,
		"tags":    []map[string]any{{"name": "outdoors"}, {"name": "Outdoors"}},
	}, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, []string{"outdoors"}, created.TagNames())
	require.NotNil(t, created.Mood)
	require.Equal(t, "Calm", created.Mood.Name)

	var fetched entry.Entry
	c.callOK(t, "get_entry", map[string]any{"id": created.ID}, &fetched)
	require.Equal(t, "First", fetched.Title)

	var updated entry.Entry
	c.callOK(t, "update_entry", map[string]any{
		"id":      created.ID,
		"title":   "First, revised",
		"content": "Walked by the river at dusk",
	}, &updated)
	require.Equal(t, "First, revised", updated.Title)
	require.Nil(t, updated.MoodID)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	var list mcp.EntryListResponse
	c.callOK(t, "list_entries", map[string]any{"query": "dusk"}, &list)
	require.Equal(t, 1, list.Total)
	require.False(t, list.HasMore)

	var results []entry.SearchResult
	c.callOK(t, "search_entries", map[string]any{"query": "riv"}, &results)
	require.Len(t, results, 1)
	require.Equal(t, created.ID, results[0].Entry.ID)

	var deleted mcp.DeleteEntryResponse
	c.callOK(t, "delete_entry", map[string]any{"id": created.ID}, &deleted)
	require.True(t, deleted.Success)

	apiErr := c.callErr(t, "get_entry", map[string]any{"id": created.ID})
	require.Equal(t, "ENTRY_NOT_FOUND", apiErr.Code)

	var activity []mcp.ActivityEntryResponse
	c.callOK(t, "recent_activity", map[string]any{"entry_id": created.ID}, &activity)
	require.Len(t, activity, 3)
	require.EqualValues(t, "entry_deleted", activity[0].Type)
}

func TestServer_Errors(t *testing.T) {
	_, svc := newAppServices(t)
	c := newTestClient(t, svc)

	apiErr := c.callErr(t, "create_entry", map[string]any{"title": " ", "content": "x"})
	require.Equal(t, "INVALID_INPUT", apiErr.Code)

	apiErr = c.callErr(t, "create_entry", map[string]any{"title": "t", "content": "x", "mood_id": "missing"})
	require.Equal(t, "MOOD_NOT_FOUND", apiErr.Code)

	apiErr = c.callErr(t, "list_entries", map[string]any{"from": "March 1"})
	require.Equal(t, "INVALID_INPUT", apiErr.Code)

	apiErr = c.callErr(t, "get_calendar", map[string]any{"month": "2024-13"})
	require.Equal(t, "INVALID_INPUT", apiErr.Code)

	apiErr = c.callErr(t, "search_entries", map[string]any{"query": ""})
	require.Equal(t, "INVALID_INPUT", apiErr.Code)
}

func TestServer_ListPaging(t *testing.T) {
	_, svc := newAppServices(t)
	c := newTestClient(t, svc)

	for _, title := range []string{"one", "two", "three"} {
		c.callOK(t, "create_entry", map[string]any{"title": title, "content": "body"}, nil)
	}

	var page mcp.EntryListResponse
	c.callOK(t, "list_entries", map[string]any{"limit": 2}, &page)
	require.Len(t, page.Entries, 2)
	require.Equal(t, 3, page.Total)
	require.True(t, page.HasMore)

	c.callOK(t, "list_entries", map[string]any{"limit": 2, "offset": 2}, &page)
	require.Len(t, page.Entries, 1)
	require.False(t, page.HasMore)

	c.callOK(t, "list_entries", map[string]any{"offset": 10}, &page)
	require.Empty(t, page.Entries)
}

func TestServer_InsightTools(t *testing.T) {
	_, svc := newAppServices(t)
	c := newTestClient(t, svc)

	var created entry.Entry
	c.callOK(t, "create_entry", map[string]any{
		"title":   "Today",
		"content": "notes",
		"tags":    []map[string]any{{"name": "work"}},
	}, &created)

	var snap stats.Snapshot
	c.callOK(t, "get_stats", nil, &snap)
	require.Equal(t, 1, snap.TotalEntries)
	require.Len(t, snap.TopTags, 1)
	require.Equal(t, "work", snap.TopTags[0].Tag)

	var grid calendar.Grid
	c.callOK(t, "get_calendar", map[string]any{}, &grid)
	require.Equal(t, 2024, grid.Year)
	require.Equal(t, 3, grid.Month)
	require.Equal(t, "March 2024", grid.Title)

	var day mcp.DayResponse
	date := created.CreatedAt.UTC().Format(time.DateOnly)
	c.callOK(t, "get_calendar", map[string]any{"date": date}, &day)
	require.Len(t, day.Entries, 1)

	var tags []map[string]any
	c.callOK(t, "list_tags", nil, &tags)
	require.Len(t, tags, 1)

	var moods []mood.Mood
	c.callOK(t, "list_moods", nil, &moods)
	require.Empty(t, moods)

	var rendered mcp.RenderMarkdownResponse
	c.callOK(t, "render_markdown", map[string]any{"content": "**hi**"}, &rendered)
	require.Equal(t, "<p><strong>hi</strong></p>", rendered.HTML)
}

type failingStats struct{}

func (failingStats) Snapshot(context.Context) (stats.Snapshot, error) {
	return stats.Snapshot{}, stats.ErrUnavailable
}

func TestServer_StatsUnavailable(t *testing.T) {
	_, svc := newAppServices(t)
	svc.Stats = failingStats{}
	c := newTestClient(t, svc)

	apiErr := c.callErr(t, "get_stats", nil)
	require.Equal(t, "STATS_UNAVAILABLE", apiErr.Code)
}
