package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const clientSessionKey contextKey = iota

// clientSession returns the caller's session label, if one was sent.
func clientSession(ctx context.Context) string {
	v, _ := ctx.Value(clientSessionKey).(string)
	return v
}

// clientSessionMiddleware stores the caller's session label in the context.
// Streamable HTTP clients send it as the Mcp-Session-Id header; stdio
// clients may put it in _meta.session_id.
func clientSessionMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if id := sessionLabel(req); id != "" {
				ctx = context.WithValue(ctx, clientSessionKey, id)
			}
			return next(ctx, method, req)
		}
	}
}

func sessionLabel(req sdkmcp.Request) (id string) {
	if extra := req.GetExtra(); extra != nil && extra.Header != nil {
		if id = extra.Header.Get("Mcp-Session-Id"); id != "" {
			return id
		}
	}

	// GetMeta panics on the typed-nil params of notifications.
	defer func() {
		if recover() != nil {
			id = ""
		}
	}()
	params := req.GetParams()
	if params == nil {
		return ""
	}
	id, _ = params.GetMeta()["session_id"].(string)
	return id
}
