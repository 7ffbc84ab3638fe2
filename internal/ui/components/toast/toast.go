// Package toast renders transient notifications. Handlers append them to
// #toast-container with an out-of-band swap.
package toast

import (
	"github.com/a-h/templ"

	c "github.com/artshowcase/showcase/internal/ui/components"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

// Target is the hx-swap-oob value that appends a toast.
const Target = "beforeend:#toast-container"

type Props struct {
	Title       string
	Description string
	Variant     Variant
	Icon        bool
	Dismissible bool
	Duration    int // milliseconds; 0 uses the client default
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-gray-200",
	VariantSuccess: "border-green-500",
	VariantError:   "border-red-500",
	VariantInfo:    "border-blue-500",
}

var icons = map[Variant]string{
	VariantSuccess: "✓",
	VariantError:   "!",
	VariantInfo:    "i",
}

func Toast(p Props) templ.Component {
	v := p.Variant
	if v == "" {
		v = VariantDefault
	}
	role := "status"
	if v == VariantError {
		role = "alert"
	}
	attrs := c.Attrs{
		"class":      c.Classes("pointer-events-auto flex w-80 items-start gap-3 rounded-md border-l-4 bg-white p-4 shadow-lg", variantClasses[v]),
		"role":       role,
		"data-toast": true,
	}
	if p.Duration > 0 {
		attrs["data-duration"] = p.Duration
	}
	return c.Div(attrs,
		c.If(p.Icon && icons[v] != "", c.Span(c.Attrs{"class": "text-sm font-bold", "aria-hidden": "true"}, c.Text(icons[v]))),
		c.Div(c.Class("flex-1"),
			c.If(p.Title != "", c.P(c.Class("text-sm font-semibold text-gray-900"), c.Text(p.Title))),
			c.If(p.Description != "", c.P(c.Class("mt-0.5 text-sm text-gray-600"), c.Text(p.Description))),
		),
		c.If(p.Dismissible, c.El("button", c.Attrs{
			"type":               "button",
			"class":              "text-gray-400 hover:text-gray-600",
			"aria-label":         "Dismiss",
			"data-toast-dismiss": true,
		}, c.Text("✕"))),
	)
}

// Error is the common failure toast.
func Error(description string) templ.Component {
	return Toast(Props{Title: "Error", Description: description, Variant: VariantError, Icon: true, Dismissible: true})
}

func Success(description string) templ.Component {
	return Toast(Props{Title: "Success", Description: description, Variant: VariantSuccess, Icon: true, Dismissible: true, Duration: 4000})
}

func Info(description string) templ.Component {
	return Toast(Props{Title: "Info", Description: description, Variant: VariantInfo, Icon: true, Dismissible: true, Duration: 4000})
}
