// ABOUTME: Tests for daily journal file writing
// ABOUTME: Validates entry formatting and file operations
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/moodlog/internal/db"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func testDetails(id int64, ts string) db.Details {
	return db.Details{
		Entry: db.Entry{
			Summary: db.Summary{
				ID:        id,
				Timestamp: ts,
				Valence:   2,
				Arousal:   3,
				Energy:    intPtr(4),
			},
			Note: strPtr("long walk"),
		},
		Emotions: []string{"calm", "joy"},
		Factors:  []string{"sleep"},
	}
}

func TestWriteMarkdown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")

	err := Write(dir, "markdown", testDetails(1, "2025-11-29 14:30:00"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Verify journal file was created
	logFile := filepath.Join(dir, "2025-11-29.log")
	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read journal file: %v", err)
	}

	expectedContent := `## 14:30:00 - valence +2, arousal 3
- **Energy**: 4
- **Emotions**: calm, joy
- **Factors**: sleep
- **Note**: long walk

`
	if string(content) != expectedContent {
		t.Errorf("got:\n%s\nwant:\n%s", string(content), expectedContent)
	}
}

func TestWriteMarkdownOmitsEmptyFields(t *testing.T) {
	dir := t.TempDir()

	details := db.Details{
		Entry:    db.Entry{Summary: db.Summary{ID: 2, Timestamp: "2025-11-29 08:00:00", Valence: -4, Arousal: 1}},
		Emotions: []string{},
		Factors:  []string{},
	}
	if err := Write(dir, "markdown", details); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read journal file: %v", err)
	}
	if string(content) != "## 08:00:00 - valence -4, arousal 1\n\n" {
		t.Errorf("unexpected content: %q", string(content))
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()

	if err := Write(dir, "json", testDetails(7, "2025-11-29 14:30:00")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read journal file: %v", err)
	}

	var decoded db.Details
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("journal line is not JSON: %v", err)
	}
	if decoded.Entry.ID != 7 || len(decoded.Emotions) != 2 {
		t.Errorf("unexpected decoded entry: %+v", decoded)
	}
}

func TestWriteAppendsPerDay(t *testing.T) {
	dir := t.TempDir()

	entries := []db.Details{
		testDetails(1, "2025-11-29 10:00:00"),
		testDetails(2, "2025-11-29 15:00:00"),
		testDetails(3, "2025-11-30 09:00:00"),
	}
	for _, d := range entries {
		if err := Write(dir, "markdown", d); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	content, err := os.ReadFile(filepath.Join(dir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read journal file: %v", err)
	}
	contentStr := string(content)
	if !strings.Contains(contentStr, "## 10:00:00") || !strings.Contains(contentStr, "## 15:00:00") {
		t.Errorf("journal file should contain both entries: %s", contentStr)
	}
	if strings.Contains(contentStr, "09:00:00") {
		t.Errorf("next day's entry leaked into file: %s", contentStr)
	}

	if _, err := os.Stat(filepath.Join(dir, "2025-11-30.log")); err != nil {
		t.Errorf("expected second day file: %v", err)
	}
}

func TestWriteRejectsBadTimestamp(t *testing.T) {
	if err := Write(t.TempDir(), "markdown", testDetails(1, "yesterday")); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}
