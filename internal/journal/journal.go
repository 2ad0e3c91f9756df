// ABOUTME: Daily journal file writing
// ABOUTME: Formats mood entries as markdown or JSON and appends to daily logs
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/moodlog/internal/db"
)

// Write appends details to the journal file for the entry's day.
func Write(dir, format string, details db.Details) error {
	// Create journal directory if needed
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}

	ts, err := details.Entry.Time()
	if err != nil {
		return fmt.Errorf("parse entry timestamp: %w", err)
	}

	// One file per day
	logFile := filepath.Join(dir, ts.Format("2006-01-02")+".log")

	var content string
	switch format {
	case "json":
		data, err := json.Marshal(details)
		if err != nil {
			return err
		}
		content = string(data) + "\n"
	case "markdown":
		fallthrough
	default:
		content = formatMarkdown(details)
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // Journal is user-readable
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

func formatMarkdown(details db.Details) string {
	var sb strings.Builder
	entry := details.Entry

	timeStr := entry.Timestamp
	if ts, err := entry.Time(); err == nil {
		timeStr = ts.Format("15:04:05")
	}
	sb.WriteString(fmt.Sprintf("## %s - valence %+d, arousal %d\n", timeStr, entry.Valence, entry.Arousal))

	if entry.Energy != nil {
		sb.WriteString(fmt.Sprintf("- **Energy**: %d\n", *entry.Energy))
	}
	if entry.Social != nil {
		sb.WriteString(fmt.Sprintf("- **Social**: %d\n", *entry.Social))
	}
	if len(details.Emotions) > 0 {
		sb.WriteString(fmt.Sprintf("- **Emotions**: %s\n", strings.Join(details.Emotions, ", ")))
	}
	if len(details.Factors) > 0 {
		sb.WriteString(fmt.Sprintf("- **Factors**: %s\n", strings.Join(details.Factors, ", ")))
	}
	if entry.Note != nil && *entry.Note != "" {
		sb.WriteString(fmt.Sprintf("- **Note**: %s\n", *entry.Note))
	}
	sb.WriteString("\n")

	return sb.String()
}
