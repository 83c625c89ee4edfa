package footnotes

import (
	"context"
	"database/sql"
	"html/template"

	"github.com/goliatone/go-footnotes/internal/footnotes"
	"github.com/goliatone/go-footnotes/internal/logging"
	"github.com/goliatone/go-footnotes/internal/logging/gologger"
	"github.com/goliatone/go-footnotes/notes"
	"github.com/goliatone/go-footnotes/pkg/interfaces"
	"github.com/goliatone/go-footnotes/richtext"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

// NoteService exports the footnote service contract for consumers of the
// footnotes package.
type NoteService = notes.Service

// Footnote exports the footnote record type.
type Footnote = notes.Footnote

// RenderState exports the per-page render state.
type RenderState = notes.RenderState

// RenderContext exports the resolver render context.
type RenderContext = notes.RenderContext

// CreateFootnoteRequest exports the create request payload.
type CreateFootnoteRequest = notes.CreateFootnoteRequest

// UpdateFootnoteRequest exports the update request payload.
type UpdateFootnoteRequest = notes.UpdateFootnoteRequest

// DeleteFootnoteRequest exports the delete request payload.
type DeleteFootnoteRequest = notes.DeleteFootnoteRequest

// Module is the top level footnotes runtime façade. It owns the service,
// the marker resolver, and richtext block construction.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	service  notes.Service
	resolver *footnotes.Resolver
	db       *bun.DB
}

// Option overrides module wiring before boot.
type Option func(*moduleDeps)

type moduleDeps struct {
	sqlDB      *sql.DB
	provider   interfaces.LoggerProvider
	repository footnotes.Repository
}

// WithDB hands the module an already open database handle. The module still
// picks the bun dialect from Config.Storage.Driver.
func WithDB(db *sql.DB) Option {
	return func(d *moduleDeps) {
		d.sqlDB = db
	}
}

// WithLoggerProvider replaces the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		d.provider = provider
	}
}

// WithRepository bypasses storage configuration entirely. Useful for tests
// and hosts that manage their own persistence.
func WithRepository(repo footnotes.Repository) Option {
	return func(d *moduleDeps) {
		d.repository = repo
	}
}

// New constructs a footnotes module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &moduleDeps{}
	for _, opt := range opts {
		if opt != nil {
			opt(deps)
		}
	}

	m := &Module{cfg: cfg}

	m.provider = deps.provider
	if m.provider == nil && cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	repo := deps.repository
	if repo == nil {
		if cfg.Features.Persistence || deps.sqlDB != nil {
			sqlDB := deps.sqlDB
			if sqlDB == nil {
				opened, err := sql.Open(cfg.Storage.Driver, cfg.Storage.DSN)
				if err != nil {
					return nil, err
				}
				sqlDB = opened
			}
			m.db = bun.NewDB(sqlDB, dialectFor(cfg.Storage.Driver))
			repo = footnotes.NewBunFootnoteRepository(m.db)
		} else {
			repo = footnotes.NewMemoryFootnoteRepository()
		}
	}

	m.service = footnotes.NewService(repo,
		footnotes.WithLogger(logging.ServiceLogger(m.provider)),
	)
	m.resolver = footnotes.NewResolver(
		footnotes.WithResolverLogger(logging.ResolverLogger(m.provider)),
	)

	return m, nil
}

// Notes returns the configured footnote service.
func (m *Module) Notes() NoteService {
	return m.service
}

// DB returns the bun handle when persistence was configured, nil otherwise.
func (m *Module) DB() *bun.DB {
	if m == nil {
		return nil
	}
	return m.db
}

// Rewrite replaces footnote markers in the rendered HTML using the supplied
// render context.
func (m *Module) Rewrite(html string, rctx RenderContext) template.HTML {
	return m.resolver.Rewrite(html, rctx)
}

// NewRichTextBlock builds a richtext block bound to the module resolver so
// every block shares rewrite behavior.
func (m *Module) NewRichTextBlock(opts ...richtext.Option) *richtext.Block {
	merged := make([]richtext.Option, 0, len(opts)+2)
	merged = append(merged, richtext.WithResolver(m.resolver))
	if m.cfg.Features.Markdown {
		merged = append(merged, richtext.WithRenderer(richtext.NewMarkdownRenderer(richtext.MarkdownOptions{})))
	}
	merged = append(merged, opts...)
	return richtext.NewBlock(merged...)
}

// PageRenderContext loads the page's footnote set and returns a render
// context with fresh numbering state.
func (m *Module) PageRenderContext(ctx context.Context, pageID uuid.UUID) (RenderContext, error) {
	set, err := m.service.PageSet(ctx, pageID)
	if err != nil {
		return RenderContext{}, err
	}
	return notes.NewRenderContext(pageID, set), nil
}

func dialectFor(driver string) schema.Dialect {
	switch driver {
	case "postgres", "pg", "pgx":
		return pgdialect.New()
	default:
		return sqlitedialect.New()
	}
}
