package footnotes

import (
	"context"
	"sync"

	"github.com/goliatone/go-footnotes/notes"
	"github.com/google/uuid"
)

// MemoryFootnoteRepository is an in-memory footnote store for scaffolding and
// tests. Records are cloned on the way in and out so callers cannot mutate
// shared state.
type MemoryFootnoteRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*notes.Footnote
	pageIndex map[uuid.UUID][]uuid.UUID
}

// NewMemoryFootnoteRepository constructs the repository.
func NewMemoryFootnoteRepository() *MemoryFootnoteRepository {
	return &MemoryFootnoteRepository{
		records:   make(map[uuid.UUID]*notes.Footnote),
		pageIndex: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Create inserts the supplied footnote.
func (m *MemoryFootnoteRepository) Create(_ context.Context, record *notes.Footnote) (*notes.Footnote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; exists {
		return nil, notes.ErrFootnoteExists
	}

	copied := cloneFootnote(record)
	m.records[copied.ID] = copied
	m.pageIndex[copied.PageID] = append(m.pageIndex[copied.PageID], copied.ID)
	return cloneFootnote(copied), nil
}

// GetByID retrieves a footnote by identifier.
func (m *MemoryFootnoteRepository) GetByID(_ context.Context, id uuid.UUID) (*notes.Footnote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &notes.FootnoteNotFoundError{Key: id.String()}
	}
	return cloneFootnote(record), nil
}

// ListByPage returns the footnotes owned by a page in insertion order.
func (m *MemoryFootnoteRepository) ListByPage(_ context.Context, pageID uuid.UUID) ([]*notes.Footnote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.pageIndex[pageID]
	out := make([]*notes.Footnote, 0, len(ids))
	for _, id := range ids {
		if record, ok := m.records[id]; ok {
			out = append(out, cloneFootnote(record))
		}
	}
	return out, nil
}

// Update persists text changes for a footnote.
func (m *MemoryFootnoteRepository) Update(_ context.Context, record *notes.Footnote) (*notes.Footnote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.records[record.ID]
	if !ok {
		return nil, &notes.FootnoteNotFoundError{Key: record.ID.String()}
	}

	updated := cloneFootnote(current)
	updated.Text = record.Text
	updated.UpdatedAt = record.UpdatedAt

	m.records[updated.ID] = updated
	return cloneFootnote(updated), nil
}

// Delete removes a footnote.
func (m *MemoryFootnoteRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return &notes.FootnoteNotFoundError{Key: id.String()}
	}

	delete(m.records, id)

	ids := m.pageIndex[record.PageID]
	for i, existing := range ids {
		if existing == id {
			m.pageIndex[record.PageID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func cloneFootnote(record *notes.Footnote) *notes.Footnote {
	if record == nil {
		return nil
	}
	copied := *record
	return &copied
}

var _ Repository = (*MemoryFootnoteRepository)(nil)
