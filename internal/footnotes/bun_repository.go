package footnotes

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-footnotes/notes"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunFootnoteRepository implements Repository on top of go-repository-bun.
type BunFootnoteRepository struct {
	repo repository.Repository[*notes.Footnote]
}

// NewBunFootnoteRepository creates a bun-backed footnote repository.
func NewBunFootnoteRepository(db *bun.DB) *BunFootnoteRepository {
	return &BunFootnoteRepository{repo: NewFootnoteRepository(db)}
}

func (r *BunFootnoteRepository) Create(ctx context.Context, record *notes.Footnote) (*notes.Footnote, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("footnote repository error: %w", err)
	}
	return created, nil
}

func (r *BunFootnoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*notes.Footnote, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

func (r *BunFootnoteRepository) ListByPage(ctx context.Context, pageID uuid.UUID) ([]*notes.Footnote, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_id = ?", pageID.String()).
				Order("created_at ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("footnote repository error: %w", err)
	}
	return records, nil
}

func (r *BunFootnoteRepository) Update(ctx context.Context, record *notes.Footnote) (*notes.Footnote, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns("text", "updated_at"),
	)
	if err != nil {
		return nil, mapRepositoryError(err, record.ID.String())
	}
	return updated, nil
}

func (r *BunFootnoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &notes.Footnote{ID: id}); err != nil {
		return mapRepositoryError(err, id.String())
	}
	return nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}

	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &notes.FootnoteNotFoundError{Key: key}
	}

	return fmt.Errorf("footnote repository error: %w", err)
}

var _ Repository = (*BunFootnoteRepository)(nil)
