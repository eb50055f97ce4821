package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
)

// ExportDocument is the document written by Ledger.Export.
type ExportDocument struct {
	User   models.UserProfile `json:"user"`
	Habits []models.Habit     `json:"habits"`
}

// Export writes the profile and all habits as indented JSON.
func (l *Ledger) Export(w io.Writer) error {
	l.mu.RLock()
	doc := ExportDocument{User: l.state.User, Habits: l.habitsLocked()}
	l.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFileName names an export taken at now, using the UTC date.
func ExportFileName(now time.Time) string {
	return constants.ExportFilePrefix + now.UTC().Format(constants.DateFormat) + constants.ExportFileSuffix
}
