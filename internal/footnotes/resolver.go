package footnotes

import (
	"fmt"
	"html/template"
	"regexp"

	"github.com/goliatone/go-footnotes/internal/logging"
	"github.com/goliatone/go-footnotes/notes"
	"github.com/goliatone/go-footnotes/pkg/interfaces"
	"github.com/google/uuid"
)

// footnoteTagPattern matches inline footnote markers embedded in stored rich
// text. The body match is non-greedy: the first closing tag wins, matches are
// taken left to right and never overlap. The label between the tags is
// display-only in the editor and is discarded here.
var footnoteTagPattern = regexp.MustCompile(`<footnote id="(.*?)">.*?</footnote>`)

// Resolver rewrites footnote markers in rendered HTML into numbered anchor
// elements, recording every reference on the render state so the outer page
// template can emit the visible footnotes section.
type Resolver struct {
	logger     interfaces.Logger
	unresolved func(identifier string)
}

// ResolverOption configures the resolver instance.
type ResolverOption func(*Resolver)

// WithResolverLogger attaches a logger used for diagnostics. Unresolved
// markers are reported at debug level only; rendering stays silent.
func WithResolverLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithUnresolvedHook installs a callback invoked with the raw identifier of
// every marker that fails to resolve. The marker is still removed from the
// output; the hook exists so hosts can surface the gap in their own
// diagnostics.
func WithUnresolvedHook(hook func(identifier string)) ResolverOption {
	return func(r *Resolver) {
		r.unresolved = hook
	}
}

// NewResolver constructs a resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite replaces every footnote marker in html with a resolved anchor, or
// removes it when the referenced footnote cannot be resolved. The returned
// value is safe for direct template inclusion and must not be re-escaped.
//
// With a nil render state (no page bound to this render) the input passes
// through unchanged, marker tags included. Otherwise rctx.State is mutated:
// resolved footnotes join the ordered reference list and every generated
// anchor id is appended to the reference-id mapping.
func (r *Resolver) Rewrite(html string, rctx notes.RenderContext) template.HTML {
	if rctx.State == nil {
		return template.HTML(html)
	}

	out := footnoteTagPattern.ReplaceAllStringFunc(html, func(tag string) string {
		matches := footnoteTagPattern.FindStringSubmatch(tag)
		if len(matches) < 2 {
			return ""
		}
		identifier := matches[1]

		uid, err := uuid.Parse(identifier)
		if err != nil {
			r.reportUnresolved(identifier)
			return ""
		}

		key := uid.String()
		fn, ok := rctx.Footnotes[key]
		if !ok {
			r.reportUnresolved(identifier)
			return ""
		}

		index := rctx.State.Index(fn)

		// The display index is 1-based while the occurrence counter is
		// 0-based: the first link to the first footnote is
		// footnote-source-1-0, a second link to it footnote-source-1-1.
		// This keeps anchor ids unique throughout the page and lets the
		// footnotes template link back to each distinct reference.
		anchorID := fmt.Sprintf("footnote-source-%d-%d", index, rctx.State.Occurrences(key))
		rctx.State.AddReference(key, anchorID)

		return fmt.Sprintf(`<a href="#footnote-%d" id="%s"><sup>[%d]</sup></a>`, index, anchorID, index)
	})

	return template.HTML(out)
}

func (r *Resolver) reportUnresolved(identifier string) {
	if r.unresolved != nil {
		r.unresolved(identifier)
	}
	logging.WithFields(r.logger, map[string]any{
		"identifier": identifier,
	}).Debug("footnotes.resolver.unresolved_marker")
}
