package welltag

import (
	"log/slog"

	"github.com/ukaji3/welltag-go/pkg/welltag/output"
	"github.com/ukaji3/welltag-go/pkg/welltag/tags"
)

// Export writes the saved tags of a session to an .xlsx report at path and
// clears the session. On failure the session is left untouched and the error
// is a *FileError.
func Export(path string, session *tags.Session, opts Options) error {
	saved := session.Tags()
	if len(saved) == 0 {
		return ErrNoTags
	}
	if err := output.SaveXLSX(path, saved, opts.Style); err != nil {
		return &FileError{Path: path, Op: OpExport, Err: err}
	}
	slog.Info("exported tag report", slog.String("path", path), slog.Int("tags", len(saved)))
	session.Clear()
	return nil
}
