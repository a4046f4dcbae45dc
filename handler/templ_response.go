package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component of a TemplMulti response.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	patches []TemplPatch
	full    TemplComponent
}

// Render patches each component over SSE for datastar requests. Plain requests
// get full when set, otherwise the components concatenated in order.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders a component as a page, or as a single patch for datastar.
//
//	return handler.Templ(views.Toast(msg), handler.WithTarget("#toasts"), handler.WithPatchMode(handler.PatchPrepend))
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplPartial patches partial for datastar requests and renders full otherwise.
// A form re-rendered with errors is the typical partial; the page around it the full.
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(partial, opts...)}, full: full}
}

// TemplMulti sends several patches in one datastar response.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}

// TemplMultiPartial is TemplMulti with a full page fallback for plain requests.
func TemplMultiPartial(full TemplComponent, patches ...TemplPatch) Response {
	return templResponse{patches: patches, full: full}
}
