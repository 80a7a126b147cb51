package main

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/quill/internal/mcp"
	"github.com/rpggio/quill/internal/transport"
)

func (s *session) mcpServer() *sdkmcp.Server {
	a := s.app
	return mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Entries:  a.Entries,
			Moods:    a.Moods,
			Tags:     a.Tags,
			Stats:    a.Stats,
			Activity: a.Activity,
		},
		Version: version,
		Logger:  s.logger,
	})
}

func (s *session) httpServices() transport.Services {
	a := s.app
	return transport.Services{
		Entries:  a.Entries,
		Moods:    a.Moods,
		Tags:     a.Tags,
		Stats:    a.Stats,
		Activity: a.Activity,
	}
}
