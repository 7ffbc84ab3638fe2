// Package components holds the shared UI building blocks: an HTML element
// builder over templ.ComponentFunc and the widgets the pages compose.
package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// Attrs are rendered in key order. A false bool omits the attribute and a
// true bool renders it bare.
type Attrs = templ.Attributes

// El renders <tag attrs>children</tag>. Nil children are skipped.
func El(tag string, attrs Attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if len(attrs) > 0 {
			if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
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

// Void renders an element without children or closing tag (img, input, ...).
func Void(tag string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if len(attrs) > 0 {
			if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ">")
		return err
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func Textf(format string, args ...any) templ.Component {
	return Text(fmt.Sprintf(format, args...))
}

// Raw renders trusted HTML unescaped. Only pass sanitised markup.
func Raw(html string) templ.Component {
	return templ.Raw(html)
}

// Group renders children one after another.
func Group(children ...templ.Component) templ.Component {
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

// If returns c when cond holds and nil otherwise.
func If(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}

// Map renders fn for every item.
func Map[T any](items []T, fn func(T) templ.Component) templ.Component {
	children := make([]templ.Component, len(items))
	for i, item := range items {
		children[i] = fn(item)
	}
	return Group(children...)
}

// URL returns s when it is safe in href/src, and an inert URL otherwise.
func URL(s string) string {
	return string(templ.URL(s))
}

// Classes merges tailwind classes; later classes win over conflicting
// earlier ones.
func Classes(classes ...string) string {
	return twmerge.Merge(strings.Join(classes, " "))
}

// Fragment marks c as the fragment id so ui.RenderFragment can send only it.
func Fragment(id string, c templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.Fragment(id).Render(templ.WithChildren(ctx, c), w)
	})
}

// Div, Span, P and A are shorthands for the most common elements.
func Div(attrs Attrs, children ...templ.Component) templ.Component {
	return El("div", attrs, children...)
}

func Span(attrs Attrs, children ...templ.Component) templ.Component {
	return El("span", attrs, children...)
}

func P(attrs Attrs, children ...templ.Component) templ.Component {
	return El("p", attrs, children...)
}

func A(href string, attrs Attrs, children ...templ.Component) templ.Component {
	a := Attrs{"href": URL(href)}
	for k, v := range attrs {
		a[k] = v
	}
	return El("a", a, children...)
}

// Class is shorthand for Attrs{"class": c}.
func Class(c string) Attrs {
	return Attrs{"class": c}
}
