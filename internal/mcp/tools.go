package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition describes a callable tool.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func intProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description, "minimum": 0}
}

func stringArrayProp(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       map[string]any{"type": "string"},
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func entryFields() map[string]any {
	return map[string]any{
		"title":   stringProp("Entry title"),
		"content": stringProp("Entry body in markdown"),
		"mood_id": stringProp("Mood ID from list_moods (optional)"),
		"tags": map[string]any{
			"type":        "array",
			"description": "Tags to attach; unknown names are created",
			"items": objectSchema(map[string]any{
				"name":  stringProp("Tag name"),
				"color": stringProp("Hex color such as #3b82f6 (optional)"),
			}, "name"),
		},
	}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	updateFields := entryFields()
	updateFields["id"] = stringProp("Entry ID")

	return []ToolDefinition{
		// Entries
		{
			Name:        "list_entries",
			Description: "List journal entries newest first, optionally filtered by text, tags, moods and an inclusive date range",
			InputSchema: objectSchema(map[string]any{
				"query":    stringProp("Case-insensitive text matched against title, content, tag and mood names"),
				"tag_ids":  stringArrayProp("Keep entries carrying any of these tag IDs"),
				"mood_ids": stringArrayProp("Keep entries with any of these mood IDs"),
				"from":     stringProp("First day, YYYY-MM-DD"),
				"to":       stringProp("Last day, YYYY-MM-DD"),
				"limit":    intProp("Maximum entries to return (0 for all)"),
				"offset":   intProp("Entries to skip"),
			}),
		},
		{
			Name:        "get_entry",
			Description: "Get a single entry with its mood and tags",
			InputSchema: objectSchema(map[string]any{
				"id": stringProp("Entry ID"),
			}, "id"),
		},
		{
			Name:        "create_entry",
			Description: "Write a new journal entry",
			InputSchema: objectSchema(entryFields(), "title", "content"),
		},
		{
			Name:        "update_entry",
			Description: "Replace an entry's title, content, mood and tags; the creation time is kept",
			InputSchema: objectSchema(updateFields, "id", "title", "content"),
		},
		{
			Name:        "delete_entry",
			Description: "Delete an entry; its tags remain",
			InputSchema: objectSchema(map[string]any{
				"id": stringProp("Entry ID"),
			}, "id"),
		},
		{
			Name:        "search_entries",
			Description: "Full-text search over titles and content, best matches first, with highlighted snippets",
			InputSchema: objectSchema(map[string]any{
				"query": stringProp("Words to search for; each word matches as a prefix"),
				"limit": intProp("Maximum results (default 20, max 100)"),
			}, "query"),
		},

		// Insights
		{
			Name:        "get_stats",
			Description: "Get totals, entries per month, mood distribution, top tags and writing streaks",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "get_calendar",
			Description: "Get a month grid of entries, or the entries of a single day when date is set",
			InputSchema: objectSchema(map[string]any{
				"month": stringProp("Month as YYYY-MM (defaults to the current month)"),
				"date":  stringProp("Day as YYYY-MM-DD"),
			}),
		},
		{
			Name:        "recent_activity",
			Description: "List recent journal activity newest first",
			InputSchema: objectSchema(map[string]any{
				"entry_id": stringProp("Only activity for this entry"),
				"type": map[string]any{
					"type":        "string",
					"description": "Only activity of this type",
					"enum":        []string{"entry_created", "entry_updated", "entry_deleted", "mood_created"},
				},
				"limit":  intProp("Maximum items (default 50)"),
				"offset": intProp("Items to skip"),
			}),
		},

		// Catalog
		{
			Name:        "list_moods",
			Description: "List the moods an entry can reference",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "create_mood",
			Description: "Add a mood to the catalog",
			InputSchema: objectSchema(map[string]any{
				"name":  stringProp("Mood name"),
				"emoji": stringProp("Emoji shown with the mood"),
				"color": stringProp("Hex color"),
			}, "name", "emoji", "color"),
		},
		{
			Name:        "list_tags",
			Description: "List tags with the number of entries using each",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "render_markdown",
			Description: "Render entry markdown to the HTML used by the journal preview",
			InputSchema: objectSchema(map[string]any{
				"content": stringProp("Markdown text"),
			}, "content"),
		},
	}
}

func registerTools(server *sdkmcp.Server, h *Handler, logger *slog.Logger) {
	for _, def := range buildToolCatalog() {
		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := h.Handle(ctx, name, args)
			if err != nil {
				return toolError(logger, name, err), nil
			}
			return toolResult(result)
		})
	}
}

func toolResult(v any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

func toolError(logger *slog.Logger, name string, err error) *sdkmcp.CallToolResult {
	apiErr := MapError(err)
	if apiErr == nil {
		if logger != nil {
			logger.Error("tool failed", "tool", name, "error", err)
		}
		apiErr = &APIError{Code: "INTERNAL", Message: "internal error"}
	}
	data, _ := json.Marshal(apiErr)
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}
}
