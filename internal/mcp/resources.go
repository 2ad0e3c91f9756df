// ABOUTME: MCP resource implementations for moodlog
// ABOUTME: Provides recent entries, vocabulary usage, and today's summary
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/moodlog/internal/db"
)

const (
	recentURI   = "moodlog://recent"
	emotionsURI = "moodlog://emotions"
	factorsURI  = "moodlog://factors"
	todayURI    = "moodlog://today"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Moods",
		Description: "Last 10 mood entries",
		MIMEType:    "application/json",
	}, s.handleRecent)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         emotionsURI,
		Name:        "Emotions",
		Description: "All emotion names with usage counts, most used first",
		MIMEType:    "application/json",
	}, s.vocabularyHandler(db.Emotions, emotionsURI))

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         factorsURI,
		Name:        "Factors",
		Description: "All factor names with usage counts, most used first",
		MIMEType:    "application/json",
	}, s.vocabularyHandler(db.Factors, factorsURI))

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today Summary",
		Description: "All mood entries recorded today",
		MIMEType:    "text/markdown",
	}, s.handleToday)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// handleRecent implements the recent resource.
func (s *Server) handleRecent(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.ListRecent(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	data := make([]EntryData, 0, len(entries))
	for _, e := range entries {
		data = append(data, toEntryData(e))
	}
	return jsonResource(recentURI, data)
}

// vocabularyHandler serves tag usage counts for one vocabulary.
func (s *Server) vocabularyHandler(v db.Vocabulary, uri string) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		usage, err := s.store.TagUsage(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", v, err)
		}
		return jsonResource(uri, usage)
	}
}

// handleToday implements the today resource.
func (s *Server) handleToday(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	entries, err := s.store.ListSince(ctx, startOfDay, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}

	var summary strings.Builder
	summary.WriteString("# Today's Moods\n\n")

	for _, e := range entries {
		line := fmt.Sprintf("- **%s** (#%d): valence %+d, arousal %d", e.Timestamp, e.ID, e.Valence, e.Arousal)
		if e.Energy != nil {
			line += fmt.Sprintf(", energy %d", *e.Energy)
		}
		if e.Social != nil {
			line += fmt.Sprintf(", social %d", *e.Social)
		}
		summary.WriteString(line + "\n")
	}

	if len(entries) == 0 {
		summary.WriteString("No moods recorded today yet.\n")
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      todayURI,
				MIMEType: "text/markdown",
				Text:     summary.String(),
			},
		},
	}

	return result, nil
}
