// ABOUTME: MCP tool implementations for moodlog
// ABOUTME: Records entries and exposes history, details, and vocabularies
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/moodlog/internal/db"
)

// RecordMoodInput defines the input for record_mood tool.
type RecordMoodInput struct {
	Valence  int      `json:"valence" jsonschema:"How pleasant the mood is, from -5 to 5"`
	Arousal  int      `json:"arousal" jsonschema:"How activated the mood is, from 0 to 5"`
	Energy   *int     `json:"energy,omitempty" jsonschema:"Optional energy level from 0 to 5"`
	Social   *int     `json:"social,omitempty" jsonschema:"Optional social battery from 0 to 5"`
	Note     string   `json:"note,omitempty" jsonschema:"Optional free-text note"`
	Emotions []string `json:"emotions,omitempty" jsonschema:"Emotion names felt"`
	Factors  []string `json:"factors,omitempty" jsonschema:"Factors that influenced the mood"`
}

// RecordMoodOutput defines the output for record_mood tool.
type RecordMoodOutput struct {
	EntryID   int64  `json:"entry_id" jsonschema:"The ID of the created entry"`
	Timestamp string `json:"timestamp" jsonschema:"When the entry was recorded"`
}

// EntryData is an entry as returned to MCP clients.
type EntryData struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Valence   int    `json:"valence"`
	Arousal   int    `json:"arousal"`
	Energy    *int   `json:"energy,omitempty"`
	Social    *int   `json:"social,omitempty"`
}

// RecentMoodsInput defines the input for recent_moods tool.
type RecentMoodsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default 30)"`
}

// RecentMoodsOutput defines the output for recent_moods tool.
type RecentMoodsOutput struct {
	Entries []EntryData `json:"entries"`
	Count   int         `json:"count"`
}

// MoodDetailsInput defines the input for mood_details tool.
type MoodDetailsInput struct {
	EntryID int64 `json:"entry_id" jsonschema:"The entry ID to look up"`
}

// MoodDetailsOutput defines the output for mood_details tool.
type MoodDetailsOutput struct {
	Found    bool       `json:"found"`
	Entry    *EntryData `json:"entry,omitempty"`
	Note     string     `json:"note,omitempty"`
	Emotions []string   `json:"emotions,omitempty"`
	Factors  []string   `json:"factors,omitempty"`
}

// ListTagsInput defines the input for list_tags tool.
type ListTagsInput struct {
	Vocabulary string `json:"vocabulary" jsonschema:"Either emotions or factors"`
}

// ListTagsOutput defines the output for list_tags tool.
type ListTagsOutput struct {
	Vocabulary string   `json:"vocabulary"`
	Tags       []string `json:"tags"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_mood",
		Description: "Record a mood entry. Use this when the user describes how they feel and wants it tracked.",
	}, s.handleRecordMood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recent_moods",
		Description: "List the most recent mood entries, newest first, without notes or tags.",
	}, s.handleRecentMoods)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "mood_details",
		Description: "Get one mood entry with its note, emotions, and factors.",
	}, s.handleMoodDetails)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_tags",
		Description: "List the known emotion or factor names.",
	}, s.handleListTags)
}

func toEntryData(e db.Summary) EntryData {
	return EntryData{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Valence:   e.Valence,
		Arousal:   e.Arousal,
		Energy:    e.Energy,
		Social:    e.Social,
	}
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

// handleRecordMood implements the record_mood tool.
func (s *Server) handleRecordMood(ctx context.Context, req *mcp.CallToolRequest, input RecordMoodInput) (*mcp.CallToolResult, RecordMoodOutput, error) {
	entry := db.NewEntry{
		Valence:  input.Valence,
		Arousal:  input.Arousal,
		Energy:   input.Energy,
		Social:   input.Social,
		Emotions: input.Emotions,
		Factors:  input.Factors,
	}
	if note := strings.TrimSpace(input.Note); note != "" {
		entry.Note = &note
	}

	id, err := s.store.CreateEntry(ctx, entry)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return nil, RecordMoodOutput{}, fmt.Errorf("rating out of range (valence -5..5, others 0..5): %w", err)
		}
		return nil, RecordMoodOutput{}, fmt.Errorf("failed to record mood: %w", err)
	}

	details, err := s.store.GetDetails(ctx, id)
	if err != nil {
		return nil, RecordMoodOutput{}, fmt.Errorf("failed to read back entry: %w", err)
	}
	timestamp := "unknown"
	if details != nil {
		timestamp = details.Entry.Timestamp
	}

	output := RecordMoodOutput{EntryID: id, Timestamp: timestamp}
	return textResult("Mood recorded (ID: %d) at %s", id, timestamp), output, nil
}

// handleRecentMoods implements the recent_moods tool.
func (s *Server) handleRecentMoods(ctx context.Context, req *mcp.CallToolRequest, input RecentMoodsInput) (*mcp.CallToolResult, RecentMoodsOutput, error) {
	entries, err := s.store.ListRecent(ctx, input.Limit)
	if err != nil {
		return nil, RecentMoodsOutput{}, fmt.Errorf("failed to list moods: %w", err)
	}

	output := RecentMoodsOutput{Entries: make([]EntryData, 0, len(entries)), Count: len(entries)}
	for _, e := range entries {
		output.Entries = append(output.Entries, toEntryData(e))
	}

	return textResult("Found %d mood entries", output.Count), output, nil
}

// handleMoodDetails implements the mood_details tool.
func (s *Server) handleMoodDetails(ctx context.Context, req *mcp.CallToolRequest, input MoodDetailsInput) (*mcp.CallToolResult, MoodDetailsOutput, error) {
	details, err := s.store.GetDetails(ctx, input.EntryID)
	if err != nil {
		return nil, MoodDetailsOutput{}, fmt.Errorf("failed to get entry: %w", err)
	}
	if details == nil {
		return textResult("Entry %d not found", input.EntryID), MoodDetailsOutput{Found: false}, nil
	}

	data := toEntryData(details.Entry.Summary)
	output := MoodDetailsOutput{
		Found:    true,
		Entry:    &data,
		Emotions: details.Emotions,
		Factors:  details.Factors,
	}
	if details.Entry.Note != nil {
		output.Note = *details.Entry.Note
	}

	return textResult("Entry %d at %s", data.ID, data.Timestamp), output, nil
}

// handleListTags implements the list_tags tool.
func (s *Server) handleListTags(ctx context.Context, req *mcp.CallToolRequest, input ListTagsInput) (*mcp.CallToolResult, ListTagsOutput, error) {
	vocab, err := db.ParseVocabulary(input.Vocabulary)
	if err != nil {
		return nil, ListTagsOutput{}, err
	}

	tags, err := s.store.ListTags(ctx, vocab)
	if err != nil {
		return nil, ListTagsOutput{}, fmt.Errorf("failed to list %s: %w", vocab, err)
	}

	output := ListTagsOutput{Vocabulary: vocab.String(), Tags: tags}
	return textResult("%d %s: %s", len(tags), vocab, strings.Join(tags, ", ")), output, nil
}
