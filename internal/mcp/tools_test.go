// ABOUTME: Tests for MCP tools
// ABOUTME: Calls tool handlers directly against a temp database
package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/moodlog/internal/db"
)

func intPtr(v int) *int { return &v }

func TestRecordMoodTool(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	input := RecordMoodInput{
		Valence:  2,
		Arousal:  3,
		Energy:   intPtr(4),
		Note:     "  coffee with a friend  ",
		Emotions: []string{"Content"},
		Factors:  []string{"friends", "coffee"},
	}

	result, output, err := server.handleRecordMood(ctx, nil, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(1), output.EntryID)
	assert.Equal(t, "2025-11-29 14:30:00", output.Timestamp)

	_, details, err := server.handleMoodDetails(ctx, nil, MoodDetailsInput{EntryID: output.EntryID})
	require.NoError(t, err)
	require.True(t, details.Found)
	assert.Equal(t, "coffee with a friend", details.Note)
	assert.Equal(t, []string{"content"}, details.Emotions)
	assert.Equal(t, []string{"coffee", "friends"}, details.Factors)
	assert.Equal(t, intPtr(4), details.Entry.Energy)
	assert.Nil(t, details.Entry.Social)
}

func TestRecordMoodToolRejectsOutOfRange(t *testing.T) {
	server := newTestServer(t)

	_, _, err := server.handleRecordMood(context.Background(), nil, RecordMoodInput{Valence: 9, Arousal: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.True(t, db.IsConstraintViolation(err))
}

func TestRecentMoodsTool(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	for i := 0; i < 4; i++ {
		_, _, err := server.handleRecordMood(ctx, nil, RecordMoodInput{Valence: i, Arousal: 1})
		require.NoError(t, err)
	}

	_, output, err := server.handleRecentMoods(ctx, nil, RecentMoodsInput{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	require.Len(t, output.Entries, 2)
	assert.Equal(t, int64(4), output.Entries[0].ID)
	assert.Equal(t, int64(3), output.Entries[1].ID)
}

func TestMoodDetailsToolNotFound(t *testing.T) {
	server := newTestServer(t)

	result, output, err := server.handleMoodDetails(context.Background(), nil, MoodDetailsInput{EntryID: 42})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, output.Found)
	assert.Nil(t, output.Entry)
}

func TestListTagsTool(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, _, err := server.handleRecordMood(ctx, nil, RecordMoodInput{
		Valence:  -1,
		Arousal:  4,
		Emotions: []string{"tense", "Alert"},
	})
	require.NoError(t, err)

	_, output, err := server.handleListTags(ctx, nil, ListTagsInput{Vocabulary: "emotion"})
	require.NoError(t, err)
	assert.Equal(t, "emotions", output.Vocabulary)
	assert.Equal(t, []string{"alert", "tense"}, output.Tags)

	_, _, err = server.handleListTags(ctx, nil, ListTagsInput{Vocabulary: "entries"})
	assert.ErrorIs(t, err, db.ErrInvalidVocabulary)
}
