package notes

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// MaxTextLength caps footnote body text.
const MaxTextLength = 500

// Store is the read-only collaborator consumed by render paths. Given a page
// it returns the footnotes legally referencable from that page, keyed by
// canonical UUID string.
type Store interface {
	PageSet(ctx context.Context, pageID uuid.UUID) (map[string]*Footnote, error)
}

// Service exposes footnote management use cases.
type Service interface {
	Store

	Create(ctx context.Context, req CreateFootnoteRequest) (*Footnote, error)
	Get(ctx context.Context, id uuid.UUID) (*Footnote, error)
	ListForPage(ctx context.Context, pageID uuid.UUID) ([]*Footnote, error)
	Update(ctx context.Context, req UpdateFootnoteRequest) (*Footnote, error)
	Delete(ctx context.Context, req DeleteFootnoteRequest) error
}

// CreateFootnoteRequest captures the payload required to create a footnote.
// When ID is left zero the service derives a deterministic UUID from the page
// and text so repeated imports stay idempotent.
type CreateFootnoteRequest struct {
	ID     uuid.UUID
	PageID uuid.UUID
	Text   string
}

// Validate ensures the request carries an owning page and bounded text.
func (req CreateFootnoteRequest) Validate() error {
	if req.PageID == uuid.Nil {
		return ErrPageRequired
	}
	return validateText(&req, &req.Text)
}

// UpdateFootnoteRequest captures mutable footnote fields.
type UpdateFootnoteRequest struct {
	ID   uuid.UUID
	Text string
}

// Validate ensures the update targets an existing footnote with bounded text.
func (req UpdateFootnoteRequest) Validate() error {
	if req.ID == uuid.Nil {
		return ErrFootnoteRequired
	}
	return validateText(&req, &req.Text)
}

// DeleteFootnoteRequest captures the information required to remove a footnote.
type DeleteFootnoteRequest struct {
	ID uuid.UUID
}

// Validate ensures the delete targets a footnote.
func (req DeleteFootnoteRequest) Validate() error {
	if req.ID == uuid.Nil {
		return ErrFootnoteRequired
	}
	return nil
}

func validateText(structPtr any, field *string) error {
	err := validation.ValidateStruct(structPtr,
		validation.Field(field,
			validation.Required,
			validation.RuneLength(1, MaxTextLength),
		),
	)
	if err == nil {
		return nil
	}
	if strings.TrimSpace(*field) == "" {
		return ErrTextRequired
	}
	return ErrTextTooLong
}
