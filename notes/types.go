package notes

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Footnote is a page-scoped note referenced from rich text by UUID. A page
// owns many footnotes; markers resolve identifiers against the owning page's
// set only, never across pages.
type Footnote struct {
	bun.BaseModel `bun:"table:footnotes,alias:fn"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	PageID    uuid.UUID `bun:"page_id,notnull,type:uuid" json:"page_id"`
	Text      string    `bun:"text,notnull" json:"text"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// RenderContext binds one rich text rewrite to the page being rendered. The
// zero value represents rendering outside a page (previews, detached blocks):
// State is nil and the resolver passes content through untouched.
//
// Every block rendered within one page render must receive the same context
// so numbering stays consistent across blocks.
type RenderContext struct {
	PageID    uuid.UUID
	State     *RenderState
	Footnotes map[string]*Footnote
}

// NewRenderContext builds a page-bound render context over the supplied
// footnote set. Keys of set must be canonical UUID strings, as produced by
// Service.PageSet.
func NewRenderContext(pageID uuid.UUID, set map[string]*Footnote) RenderContext {
	return RenderContext{
		PageID:    pageID,
		State:     NewRenderState(),
		Footnotes: set,
	}
}
