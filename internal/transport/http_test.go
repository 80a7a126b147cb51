package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpggio/quill/internal/app"
	"github.com/rpggio/quill/internal/calendar"
	"github.com/rpggio/quill/internal/config"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/rpggio/quill/internal/sqlite"
	"github.com/rpggio/quill/internal/stats"
	"github.com/rpggio/quill/internal/transport"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	a, err := app.New(db, config.StatsConfig{Timezone: "UTC", TopTags: 10}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func newTestServer(t *testing.T, a *app.App) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(transport.NewServer(transport.Services{
		Entries:  a.Entries,
		Moods:    a.Moods,
		Tags:     a.Tags,
		Stats:    a.Stats,
		Activity: a.Activity,
	}, nil, nil))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHTTPServer_Health(t *testing.T) {
	server := newTestServer(t, newTestApp(t))

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "ok", string(body))
}

func TestHTTPServer_JournalLifecycle(t *testing.T) {
	a := newTestApp(t)
	server := newTestServer(t, a)
	ctx := context.Background()

	moods, err := a.Moods.EnsureDefaults(ctx)
	require.NoError(t, err)
	happy := moods[0].ID

	var created entry.Entry
	status := doJSON(t, http.MethodPost, server.URL+"/api/journal", map[string]any{
		"title":   "First day",
		"content": "Hello **journal**",
		"mood_id": happy,
		"tags":    []map[string]string{{"name": "work"}, {"name": "WORK"}, {"name": "home", "color": "#123456"}},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.ID)
	require.Equal(t, []string{"home", "work"}, created.TagNames())
	require.NotNil(t, created.Mood)

	var fetched entry.Entry
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/journal/"+created.ID, nil, &fetched))
	require.Equal(t, "First day", fetched.Title)

	var updated entry.Entry
	status = doJSON(t, http.MethodPut, server.URL+"/api/journal/"+created.ID, map[string]any{
		"title":   "First day, revised",
		"content": "Edited",
	}, &updated)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, updated.Tags)
	require.Nil(t, updated.Mood)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	var list []entry.Entry
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/journal?q=revised", nil, &list))
	require.Len(t, list, 1)

	var tags []tag.Usage
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/tags", nil, &tags))
	require.Len(t, tags, 2)

	var deleted map[string]bool
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodDelete, server.URL+"/api/journal/"+created.ID, nil, &deleted))
	require.True(t, deleted["success"])

	var errResp transport.ErrorResponse
	require.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, server.URL+"/api/journal/"+created.ID, nil, &errResp))
	require.Equal(t, http.StatusNotFound, doJSON(t, http.MethodDelete, server.URL+"/api/journal/"+created.ID, nil, &errResp))
}

func TestHTTPServer_CreateValidation(t *testing.T) {
	server := newTestServer(t, newTestApp(t))

	var errResp transport.ErrorResponse
	status := doJSON(t, http.MethodPost, server.URL+"/api/journal", map[string]any{"title": "", "content": "x"}, &errResp)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, errResp.Error, "title")

	status = doJSON(t, http.MethodPost, server.URL+"/api/journal", map[string]any{
		"title": "t", "content": "c", "mood_id": "no-such-mood",
	}, &errResp)
	require.Equal(t, http.StatusNotFound, status)

	resp, err := http.Post(server.URL+"/api/journal", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, server.URL+"/api/journal?from=yesterday", nil, &errResp))
}

func TestHTTPServer_Moods(t *testing.T) {
	server := newTestServer(t, newTestApp(t))

	var m mood.Mood
	status := doJSON(t, http.MethodPost, server.URL+"/api/moods", map[string]string{
		"name": "Tired", "emoji": "😴", "color": "#795548",
	}, &m)
	require.Equal(t, http.StatusCreated, status)

	var moods []mood.Mood
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/moods", nil, &moods))
	require.Len(t, moods, 1)

	var errResp transport.ErrorResponse
	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, server.URL+"/api/moods", map[string]string{"name": "x"}, &errResp))
}

func TestHTTPServer_StatsAndCalendar(t *testing.T) {
	a := newTestApp(t)
	server := newTestServer(t, a)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := a.Entries.Create(ctx, entry.CreateInput{
			Title:   fmt.Sprintf("Entry %d", i),
			Content: "body",
			Tags:    []entry.TagInput{{Name: "daily"}},
		})
		require.NoError(t, err)
	}

	var snap stats.Snapshot
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/stats", nil, &snap))
	require.Equal(t, 3, snap.TotalEntries)
	require.Equal(t, 1, snap.CurrentStreak)
	require.Equal(t, 1, snap.LongestStreak)
	require.Len(t, snap.TopTags, 1)
	require.Equal(t, 3, snap.TopTags[0].Count)

	today := time.Now().UTC()
	var grid calendar.Grid
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/calendar", nil, &grid))
	require.Equal(t, int(today.Month()), grid.Month)
	total := 0
	for _, c := range grid.Cells {
		total += c.Entries
	}
	require.Equal(t, 3, total)

	var day []entry.Entry
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/calendar/day?date="+today.Format(time.DateOnly), nil, &day))
	require.Len(t, day, 3)

	var errResp transport.ErrorResponse
	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, server.URL+"/api/calendar?month=13-2024", nil, &errResp))
}

func TestHTTPServer_SearchPreviewExportActivity(t *testing.T) {
	a := newTestApp(t)
	server := newTestServer(t, a)
	ctx := context.Background()

	_, err := a.Entries.Create(ctx, entry.CreateInput{Title: "Lakeside", Content: "Swimming in the lake"})
	require.NoError(t, err)

	var results []entry.SearchResult
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/search?q=lake", nil, &results))
	require.Len(t, results, 1)

	var errResp transport.ErrorResponse
	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, server.URL+"/api/search?q=", nil, &errResp))

	var preview map[string]string
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, server.URL+"/api/preview", map[string]string{"content": "# Hi"}, &preview))
	require.Equal(t, "<h1>Hi</h1></p>", preview["html"])

	resp, err := http.Get(server.URL + "/api/export?format=csv")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	require.Contains(t, string(body), "Lakeside")

	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, server.URL+"/api/export?format=xml", nil, &errResp))

	var items []map[string]any
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, server.URL+"/api/activity?limit=5", nil, &items))
	require.Len(t, items, 1)
	require.Equal(t, "entry_created", items[0]["type"])
}

type failingStats struct{}

func (failingStats) Snapshot(context.Context) (stats.Snapshot, error) {
	return stats.Snapshot{}, fmt.Errorf("%w: listing entries: %w", stats.ErrUnavailable, errors.New("disk I/O error"))
}

func TestHTTPServer_StatsUnavailable(t *testing.T) {
	a := newTestApp(t)
	server := httptest.NewServer(transport.NewServer(transport.Services{
		Entries: a.Entries,
		Stats:   failingStats{},
	}, nil, nil))
	t.Cleanup(server.Close)

	var errResp transport.ErrorResponse
	require.Equal(t, http.StatusServiceUnavailable, doJSON(t, http.MethodGet, server.URL+"/api/stats", nil, &errResp))
	require.Equal(t, "aggregation unavailable", errResp.Error)
}
