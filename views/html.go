package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// attrs are rendered in key order by templ.RenderAttributes. A true bool renders
// a bare attribute; false and empty strings are dropped unless the key is "value".
type attrs = templ.Attributes

func el(tag string, a attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(ctx, w, tag, a); err != nil {
			return err
		}
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// void renders an element without a closing tag, such as input.
func void(tag string, a attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return openTag(ctx, w, tag, a)
	})
}

func openTag(ctx context.Context, w io.Writer, tag string, a attrs) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, present(a)); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}

// present drops empty string attributes so optional ones can be set
// unconditionally. An empty value attribute is kept.
func present(a attrs) attrs {
	out := make(attrs, len(a))
	for k, v := range a {
		if str, ok := v.(string); ok && str == "" && k != "value" {
			continue
		}
		out[k] = v
	}
	return out
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// when returns c if cond holds, nil otherwise. el and group skip nil children.
func when(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}
