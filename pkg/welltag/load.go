package welltag

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/ukaji3/welltag-go/pkg/welltag/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads a .csv or .xlsx sample export and interprets it.
// Failures are returned as *FileError.
func Load(path string, opts Options) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrFileNotFound
		}
		return nil, &FileError{Path: path, Op: OpLoad, Err: err}
	}

	table, err := readTable(path)
	if err != nil {
		return nil, &FileError{Path: path, Op: OpLoad, Err: err}
	}
	table.Name = filepath.Base(path)

	doc := Open(table, opts)
	slog.Info("loaded sample export",
		slog.String("path", path),
		slog.Int("rows", table.NumRows()),
		slog.String("layout", string(doc.Layout())),
		slog.Int("wells", doc.index.Len()))
	return doc, nil
}

func readTable(path string) (models.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return models.Table{}, err
		}
		return parser.ReadCSV(data)
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return models.Table{}, err
		}
		defer f.Close()
		return parser.ReadFirstSheet(f)
	default:
		return models.Table{}, ErrUnsupportedFormat
	}
}
