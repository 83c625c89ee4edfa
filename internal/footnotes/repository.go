package footnotes

import (
	"github.com/goliatone/go-footnotes/notes"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewFootnoteRepository builds the generic bun repository for footnote models.
func NewFootnoteRepository(db *bun.DB) repository.Repository[*notes.Footnote] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*notes.Footnote]{
		NewRecord: func() *notes.Footnote { return &notes.Footnote{} },
		GetID: func(fn *notes.Footnote) uuid.UUID {
			return fn.ID
		},
		SetID: func(fn *notes.Footnote, id uuid.UUID) {
			fn.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(fn *notes.Footnote) string {
			return fn.ID.String()
		},
	})
}
