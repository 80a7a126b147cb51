package mcp

import (
	"time"

	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
)

type TagParam struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type ListEntriesParams struct {
	Query   string   `json:"query,omitempty"`
	TagIDs  []string `json:"tag_ids,omitempty"`
	MoodIDs []string `json:"mood_ids,omitempty"`
	From    string   `json:"from,omitempty"`
	To      string   `json:"to,omitempty"`
	Limit   int      `json:"limit,omitempty"`
	Offset  int      `json:"offset,omitempty"`
}

type GetEntryParams struct {
	ID string `json:"id"`
}

type CreateEntryParams struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	MoodID  string     `json:"mood_id,omitempty"`
	Tags    []TagParam `json:"tags,omitempty"`
}

type UpdateEntryParams struct {
	ID string `json:"id"`
	CreateEntryParams
}

type DeleteEntryParams struct {
	ID string `json:"id"`
}

type SearchEntriesParams struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type CreateMoodParams struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

type GetCalendarParams struct {
	Month string `json:"month,omitempty"`
	Date  string `json:"date,omitempty"`
}

type RecentActivityParams struct {
	EntryID string                `json:"entry_id,omitempty"`
	Type    activity.ActivityType `json:"type,omitempty"`
	Limit   int                   `json:"limit,omitempty"`
	Offset  int                   `json:"offset,omitempty"`
}

type RenderMarkdownParams struct {
	Content string `json:"content"`
}

type EntryListResponse struct {
	Entries []entry.Entry `json:"entries"`
	Total   int           `json:"total"`
	HasMore bool          `json:"has_more"`
}

type DeleteEntryResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type DayResponse struct {
	Date    string        `json:"date"`
	Entries []entry.Entry `json:"entries"`
}

type RenderMarkdownResponse struct {
	HTML string `json:"html"`
}

type ActivityEntryResponse struct {
	Timestamp time.Time             `json:"timestamp"`
	Type      activity.ActivityType `json:"type"`
	EntryID   *string               `json:"entry_id,omitempty"`
	Summary   string                `json:"summary"`
	Details   string                `json:"details,omitempty"`
}
