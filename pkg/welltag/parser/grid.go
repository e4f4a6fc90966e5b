// Package parser interprets sample export grids: decoding, layout
// classification, well indexing and analyte extraction.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrNoEncoding indicates that no supported text encoding could decode a CSV source.
var ErrNoEncoding = errors.New("unable to decode with supported encodings")

// csvEncodings are tried in order after UTF-8.
var csvEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"latin1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
}

// ReadSheet reads a sheet of an open workbook into a Table.
// The sheet is read header-less: row 0 of the table is row 1 of the sheet.
func ReadSheet(f *excelize.File, sheetName string) (models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, err
	}
	return models.NewTable(sheetName, rows), nil
}

// ReadFirstSheet reads the first sheet of an open workbook.
func ReadFirstSheet(f *excelize.File) (models.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.Table{}, errors.New("workbook has no sheets")
	}
	return ReadSheet(f, sheets[0])
}

// ReadCSV decodes delimited text into a Table.
// UTF-8 is used when the bytes are valid UTF-8, otherwise latin1 and cp1252
// are tried in that order.
func ReadCSV(data []byte) (models.Table, error) {
	text, err := decodeText(data)
	if err != nil {
		return models.Table{}, err
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return models.Table{}, fmt.Errorf("parse csv: %w", err)
	}
	return models.NewTable("", rows), nil
}

// decodeText returns UTF-8 text with any byte order mark removed.
func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return data, nil
	}
	for _, e := range csvEncodings {
		out, err := e.enc.NewDecoder().Bytes(data)
		if err == nil && utf8.Valid(out) {
			slog.Debug("decoded csv with fallback encoding", slog.String("encoding", e.name))
			return out, nil
		}
	}
	return nil, ErrNoEncoding
}
