package output

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
)

// taggedJSON wraps a tag with its layout kind.
type taggedJSON struct {
	Kind models.LayoutKind `json:"kind"`
	Tag  models.Tag        `json:"tag"`
}

// ToJSON serializes tags to JSON, each wrapped with its layout kind.
func ToJSON(tags []models.Tag, pretty bool) ([]byte, error) {
	out := make([]taggedJSON, 0, len(tags))
	for _, tag := range tags {
		switch tag.(type) {
		case models.StandardTag, *models.StandardTag:
			out = append(out, taggedJSON{Kind: models.LayoutStandard, Tag: tag})
		case models.HistoricalTag, *models.HistoricalTag:
			out = append(out, taggedJSON{Kind: models.LayoutHistorical, Tag: tag})
		default:
			return nil, fmt.Errorf("unsupported tag type %T", tag)
		}
	}
	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
