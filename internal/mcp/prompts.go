// ABOUTME: MCP prompt definitions for moodlog
// ABOUTME: Tells AI assistants what the rating scales and vocabularies mean
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `moodlog is a personal mood journal.

Each entry has:
- valence: -5 (very unpleasant) to 5 (very pleasant), required
- arousal: 0 (calm, sleepy) to 5 (activated, wired), required
- energy and social: optional 0 to 5 ratings
- note: optional free text
- emotions: names of feelings ("anxious", "content")
- factors: things that influenced the mood ("sleep", "deadline", "rain")

Emotion and factor names are stored trimmed and lower-cased; new names are
added to the vocabulary automatically. Read moodlog://emotions and
moodlog://factors to reuse existing names instead of inventing synonyms.

When to use moodlog:
- The user describes how they feel and wants it recorded (record_mood)
- The user asks how they have been lately (recent_moods, moodlog://today)
- The user asks about a specific past entry (mood_details)

Out-of-range ratings are rejected; ask the user rather than guessing.`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "moodlog-getting-started",
		Description: "Introduction to moodlog and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		result := &mcp.GetPromptResult{
			Description: "Getting started with moodlog",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: gettingStarted,
					},
				},
			},
		}
		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
