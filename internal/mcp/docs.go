package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `quill is a personal journal: Entries with an optional Mood and any number of Tags.

Core concepts:
- Entry: title + markdown content, created_at/updated_at, optional mood, tags.
- Mood: catalog item (name, emoji, color). Entries reference moods by id.
- Tag: shared by name across entries; created on first use.
- Stats: totals, entries per month, mood distribution, top tags, current and longest streaks.

Suggested workflow:
1) Orient: get_stats and recent_activity.
2) Find: search_entries for words, list_entries for filters (tags, moods, date range).
3) Write: list_moods for valid mood ids, then create_entry or update_entry.

Docs:
- quill://docs/guide
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "quill://docs/guide",
		Name:        "docs_guide",
		Title:       "quill journal guide",
		Description: "How entries, moods, tags and statistics behave.",
		Content: `# quill: Journal Guide

## Entries

- ` + "`title`" + ` and ` + "`content`" + ` are required and must not be blank.
- ` + "`mood_id`" + ` must name an existing mood (see ` + "`list_moods`" + `); omit it for no mood.
- Tags are matched by name, case-insensitively. Unknown names are created; a tag without a
  color gets one from a fixed palette. Duplicate names in one request are collapsed.
- ` + "`update_entry`" + ` replaces title, content, mood and tags. ` + "`created_at`" + ` never changes.
- Deleting an entry removes its tag links but keeps the tags.

## Finding entries

- ` + "`search_entries`" + ` uses full-text search. Every word matches as a prefix, so "hik"
  finds "hiking". Results are ranked best first and include a snippet with **matches** marked.
- ` + "`list_entries`" + ` filters by substring (title, content, tag or mood name), tag ids,
  mood ids and an inclusive ` + "`from`" + `/` + "`to`" + ` day range. Days use the journal's time zone.

## Statistics

- ` + "`entries_by_month`" + ` lists every month that has entries, oldest first.
- ` + "`mood_distribution`" + ` includes moods with zero entries. Ties are ordered by name.
- ` + "`current_streak`" + ` counts consecutive writing days ending today or yesterday;
  otherwise it is zero.
- ` + "`longest_streak`" + ` is the longest run of consecutive days ever written.

## Calendar

- ` + "`get_calendar`" + ` with ` + "`month`" + ` returns weeks starting on Sunday; leading blanks pad the first week.
- With ` + "`date`" + ` it returns the entries written on that day.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
