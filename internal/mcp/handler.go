package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/quill/internal/calendar"
	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/markdown"
)

// Handler dispatches MCP tool calls to domain services.
type Handler struct {
	entries  EntryService
	moods    MoodService
	tags     TagService
	stats    StatsService
	activity ActivityService
	now      func() time.Time
}

// NewHandler creates a new MCP handler.
func NewHandler(svc Services) *Handler {
	return &Handler{
		entries:  svc.Entries,
		moods:    svc.Moods,
		tags:     svc.Tags,
		stats:    svc.Stats,
		activity: svc.Activity,
		now:      time.Now,
	}
}

// Handle dispatches a tool call by name.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_entries":
		var req ListEntriesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.listEntries(ctx, req)
	case "get_entry":
		var req GetEntryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.ID) == "" {
			return nil, invalidInput("id is required")
		}
		return h.entries.Get(ctx, req.ID)
	case "create_entry":
		var req CreateEntryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.entries.Create(ctx, req.toInput())
	case "update_entry":
		var req UpdateEntryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.ID) == "" {
			return nil, invalidInput("id is required")
		}
		return h.entries.Update(ctx, req.ID, req.toInput())
	case "delete_entry":
		var req DeleteEntryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.ID) == "" {
			return nil, invalidInput("id is required")
		}
		if err := h.entries.Delete(ctx, req.ID); err != nil {
			return nil, err
		}
		return DeleteEntryResponse{Success: true, ID: req.ID}, nil
	case "search_entries":
		var req SearchEntriesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.entries.Search(ctx, req.Query, req.Limit)
	case "get_stats":
		return h.stats.Snapshot(ctx)
	case "list_moods":
		return h.moods.List(ctx)
	case "create_mood":
		var req CreateMoodParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.moods.Create(ctx, mood.CreateRequest{Name: req.Name, Emoji: req.Emoji, Color: req.Color})
	case "list_tags":
		return h.tags.List(ctx)
	case "get_calendar":
		var req GetCalendarParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.calendar(ctx, req)
	case "recent_activity":
		var req RecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts := activity.ListOptions{Limit: req.Limit, Offset: req.Offset}
		if req.EntryID != "" {
			opts.EntryID = &req.EntryID
		}
		if req.Type != "" {
			opts.Type = &req.Type
		}
		entries, err := h.activity.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, err
		}
		resp := make([]ActivityEntryResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, ActivityEntryResponse{
				Timestamp: e.CreatedAt,
				Type:      e.ActivityType,
				EntryID:   e.EntryID,
				Summary:   e.Summary,
				Details:   e.Details,
			})
		}
		return resp, nil
	case "render_markdown":
		var req RenderMarkdownParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return RenderMarkdownResponse{HTML: markdown.Render(req.Content)}, nil
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func (h *Handler) listEntries(ctx context.Context, req ListEntriesParams) (EntryListResponse, error) {
	loc := h.entries.Location()
	c := entry.Criteria{Query: req.Query, TagIDs: req.TagIDs, MoodIDs: req.MoodIDs}
	var err error
	if c.From, err = parseDay(req.From, loc, "from"); err != nil {
		return EntryListResponse{}, err
	}
	if c.To, err = parseDay(req.To, loc, "to"); err != nil {
		return EntryListResponse{}, err
	}
	if req.Limit < 0 || req.Offset < 0 {
		return EntryListResponse{}, invalidInput("limit and offset must not be negative")
	}

	all, err := h.entries.List(ctx, c)
	if err != nil {
		return EntryListResponse{}, err
	}

	start := min(req.Offset, len(all))
	end := len(all)
	if req.Limit > 0 {
		end = min(start+req.Limit, len(all))
	}
	page := all[start:end]
	if page == nil {
		page = []entry.Entry{}
	}
	return EntryListResponse{Entries: page, Total: len(all), HasMore: end < len(all)}, nil
}

func (h *Handler) calendar(ctx context.Context, req GetCalendarParams) (any, error) {
	loc := h.entries.Location()

	if req.Date != "" {
		day, err := time.ParseInLocation(time.DateOnly, req.Date, loc)
		if err != nil {
			return nil, invalidInput("date must be YYYY-MM-DD")
		}
		all, err := h.entries.List(ctx, entry.Criteria{})
		if err != nil {
			return nil, err
		}
		return DayResponse{Date: req.Date, Entries: calendar.EntriesOn(day, all, loc)}, nil
	}

	now := h.now().In(loc)
	year, month := now.Year(), now.Month()
	if req.Month != "" {
		var err error
		if year, month, err = calendar.ParseMonth(req.Month); err != nil {
			return nil, invalidInput("month must be YYYY-MM")
		}
	}
	all, err := h.entries.List(ctx, entry.Criteria{})
	if err != nil {
		return nil, err
	}
	return calendar.Month(year, month, all, loc), nil
}

func (p CreateEntryParams) toInput() entry.CreateInput {
	in := entry.CreateInput{Title: p.Title, Content: p.Content}
	if p.MoodID != "" {
		id := p.MoodID
		in.MoodID = &id
	}
	for _, t := range p.Tags {
		in.Tags = append(in.Tags, entry.TagInput{Name: t.Name, Color: t.Color})
	}
	return in
}

func parseDay(raw string, loc *time.Location, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return nil, invalidInput("%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return invalidInput("malformed arguments: %v", err)
	}
	return nil
}
