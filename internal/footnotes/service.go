package footnotes

import (
	"context"
	"time"

	"github.com/goliatone/go-footnotes/internal/identity"
	"github.com/goliatone/go-footnotes/internal/logging"
	"github.com/goliatone/go-footnotes/notes"
	"github.com/goliatone/go-footnotes/pkg/interfaces"
	"github.com/google/uuid"
)

// Repository abstracts footnote persistence so the service can run against
// the in-memory store or the bun-backed one.
type Repository interface {
	Create(ctx context.Context, record *notes.Footnote) (*notes.Footnote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*notes.Footnote, error)
	ListByPage(ctx context.Context, pageID uuid.UUID) ([]*notes.Footnote, error)
	Update(ctx context.Context, record *notes.Footnote) (*notes.Footnote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	logger interfaces.Logger
	now    func() time.Time
}

// ServiceOption customises service behaviour.
type ServiceOption func(*service)

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs a footnote service over the supplied repository.
func NewService(repo Repository, opts ...ServiceOption) notes.Service {
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req notes.CreateFootnoteRequest) (*notes.Footnote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := req.ID
	if id == uuid.Nil {
		id = identity.FootnoteUUID(req.PageID, req.Text)
	}

	if existing, err := s.repo.GetByID(ctx, id); err == nil && existing != nil {
		return nil, notes.ErrFootnoteExists
	}

	now := s.now().UTC()
	record := &notes.Footnote{
		ID:        id,
		PageID:    req.PageID,
		Text:      req.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	logging.WithFields(s.logger, map[string]any{
		"footnote_id": created.ID.String(),
		"page_id":     created.PageID.String(),
	}).Debug("footnotes.service.created")

	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*notes.Footnote, error) {
	if id == uuid.Nil {
		return nil, notes.ErrFootnoteRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListForPage(ctx context.Context, pageID uuid.UUID) ([]*notes.Footnote, error) {
	if pageID == uuid.Nil {
		return nil, notes.ErrPageRequired
	}
	return s.repo.ListByPage(ctx, pageID)
}

// PageSet returns the page's footnotes keyed by canonical UUID string, the
// shape consumed by the resolver when rewriting markers.
func (s *service) PageSet(ctx context.Context, pageID uuid.UUID) (map[string]*notes.Footnote, error) {
	records, err := s.ListForPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]*notes.Footnote, len(records))
	for _, record := range records {
		set[record.ID.String()] = record
	}
	return set, nil
}

func (s *service) Update(ctx context.Context, req notes.UpdateFootnoteRequest) (*notes.Footnote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	current.Text = req.Text
	current.UpdatedAt = s.now().UTC()

	return s.repo.Update(ctx, current)
}

func (s *service) Delete(ctx context.Context, req notes.DeleteFootnoteRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, req.ID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return err
	}

	logging.WithFields(s.logger, map[string]any{
		"footnote_id": req.ID.String(),
	}).Debug("footnotes.service.deleted")

	return nil
}

var _ notes.Service = (*service)(nil)
