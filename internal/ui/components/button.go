package components

import "github.com/a-h/templ"

type ButtonVariant string

const (
	ButtonPrimary     ButtonVariant = "primary"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonDestructive ButtonVariant = "destructive"
)

type ButtonProps struct {
	Variant ButtonVariant
	Type    string // defaults to "button"
	Href    string // renders an <a> styled as a button
	Class   string
	Small   bool
	Attrs   Attrs
}

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:     "bg-indigo-600 text-white hover:bg-indigo-500",
	ButtonSecondary:   "bg-white text-gray-900 ring-1 ring-inset ring-gray-300 hover:bg-gray-50",
	ButtonGhost:       "bg-transparent text-gray-700 hover:bg-gray-100",
	ButtonDestructive: "bg-red-600 text-white hover:bg-red-500",
}

func buttonClass(p ButtonProps) string {
	variant := p.Variant
	if variant == "" {
		variant = ButtonPrimary
	}
	size := "px-4 py-2 text-sm"
	if p.Small {
		size = "px-2.5 py-1.5 text-xs"
	}
	return Classes(
		"inline-flex items-center justify-center gap-1.5 rounded-md font-semibold shadow-sm transition disabled:cursor-not-allowed disabled:opacity-50",
		size,
		buttonVariants[variant],
		p.Class,
	)
}

func Button(p ButtonProps, children ...templ.Component) templ.Component {
	attrs := Attrs{"class": buttonClass(p)}
	for k, v := range p.Attrs {
		attrs[k] = v
	}
	if p.Href != "" {
		return A(p.Href, attrs, children...)
	}
	typ := p.Type
	if typ == "" {
		typ = "button"
	}
	attrs["type"] = typ
	return El("button", attrs, children...)
}

type BadgeVariant string

const (
	BadgeNeutral BadgeVariant = "neutral"
	BadgeAccent  BadgeVariant = "accent"
	BadgeWarning BadgeVariant = "warning"
)

var badgeVariants = map[BadgeVariant]string{
	BadgeNeutral: "bg-gray-100 text-gray-700",
	BadgeAccent:  "bg-indigo-50 text-indigo-700",
	BadgeWarning: "bg-amber-50 text-amber-800",
}

func Badge(text string, variant BadgeVariant, class ...string) templ.Component {
	return Span(Class(Classes(append([]string{
		"inline-flex items-center rounded-full px-2 py-0.5 text-xs font-medium",
		badgeVariants[variant],
	}, class...)...)), Text(text))
}
