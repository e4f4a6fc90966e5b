package tags

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/welltag-go/pkg/welltag/models"
)

// Session accumulates saved tags until they are exported.
// It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	pending []models.Tag
	saved   []models.Tag
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Stage replaces the uncommitted batch. Tags are deep-copied so they do not
// share memory with the caller.
func (s *Session) Stage(batch []models.Tag) error {
	copied, err := cloneTags(batch)
	if err != nil {
		return err
	}
	s.pending = copied
	return nil
}

// Pending returns the uncommitted batch.
func (s *Session) Pending() []models.Tag {
	return append([]models.Tag(nil), s.pending...)
}

// Commit appends the staged batch to the saved tags and returns how many were added.
func (s *Session) Commit() int {
	n := len(s.pending)
	s.saved = append(s.saved, s.pending...)
	s.pending = nil
	return n
}

// Save stages and commits a batch in one step.
func (s *Session) Save(batch []models.Tag) (int, error) {
	if err := s.Stage(batch); err != nil {
		return 0, err
	}
	return s.Commit(), nil
}

// Tags returns the saved tags in save order.
func (s *Session) Tags() []models.Tag {
	return append([]models.Tag(nil), s.saved...)
}

// Len returns the number of saved tags.
func (s *Session) Len() int {
	return len(s.saved)
}

// Clear drops all saved and staged tags.
func (s *Session) Clear() {
	s.pending = nil
	s.saved = nil
}

func cloneTags(batch []models.Tag) ([]models.Tag, error) {
	out := make([]models.Tag, 0, len(batch))
	for _, tag := range batch {
		switch v := tag.(type) {
		case *models.StandardTag:
			tag = *v
		case *models.HistoricalTag:
			tag = *v
		}

		var err error
		switch v := tag.(type) {
		case models.StandardTag:
			var c models.StandardTag
			err = deepcopy.Copy(&c, &v)
			tag = c
		case models.HistoricalTag:
			var c models.HistoricalTag
			err = deepcopy.Copy(&c, &v)
			tag = c
		default:
			return nil, fmt.Errorf("unsupported tag type %T", tag)
		}
		if err != nil {
			return nil, fmt.Errorf("copy tag %q: %w", tag.Well(), err)
		}
		out = append(out, tag)
	}
	return out, nil
}
