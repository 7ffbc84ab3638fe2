package components

import (
	"github.com/a-h/templ"
)

const inputClass = "block w-full rounded-md border-0 px-3 py-2 text-sm text-gray-900 shadow-sm ring-1 ring-inset ring-gray-300 placeholder:text-gray-400 focus:ring-2 focus:ring-inset focus:ring-indigo-600"

// Field wraps a control with its label and, when set, its error message.
func Field(label, name, errMsg string, control templ.Component) templ.Component {
	return Div(Class("space-y-1"),
		El("label", Attrs{"for": name, "class": "block text-sm font-medium text-gray-700"}, Text(label)),
		control,
		If(errMsg != "", P(Attrs{"class": "text-xs text-red-600", "id": name + "-error"}, Text(errMsg))),
	)
}

type InputProps struct {
	Type        string
	Name        string
	Value       string
	Placeholder string
	Required    bool
	Invalid     bool
	Attrs       Attrs
}

func Input(p InputProps) templ.Component {
	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	class := inputClass
	if p.Invalid {
		class = Classes(class, "ring-red-500")
	}
	attrs := Attrs{
		"type":     typ,
		"id":       p.Name,
		"name":     p.Name,
		"class":    class,
		"required": p.Required,
	}
	if p.Value != "" {
		attrs["value"] = p.Value
	}
	if p.Placeholder != "" {
		attrs["placeholder"] = p.Placeholder
	}
	if p.Invalid {
		attrs["aria-invalid"] = "true"
		attrs["aria-describedby"] = p.Name + "-error"
	}
	for k, v := range p.Attrs {
		attrs[k] = v
	}
	return Void("input", attrs)
}

func Textarea(name, value string, rows int, required bool) templ.Component {
	return El("textarea", Attrs{
		"id":       name,
		"name":     name,
		"rows":     rows,
		"class":    inputClass,
		"required": required,
	}, Text(value))
}

type Option struct {
	Value string
	Label string
}

func Select(name, selected string, options []Option, attrs Attrs) templ.Component {
	a := Attrs{"id": name, "name": name, "class": inputClass}
	for k, v := range attrs {
		a[k] = v
	}
	return El("select", a, Map(options, func(o Option) templ.Component {
		return El("option", Attrs{"value": o.Value, "selected": o.Value == selected}, Text(o.Label))
	}))
}

// CSRFField is the hidden token input for plain (non-htmx) form posts.
func CSRFField(token string) templ.Component {
	return Void("input", Attrs{"type": "hidden", "name": "csrf_token", "value": token})
}

func Hidden(name, value string) templ.Component {
	return Void("input", Attrs{"type": "hidden", "name": name, "value": value})
}

// Alert is an inline error banner for full-page forms.
func Alert(msg string) templ.Component {
	if msg == "" {
		return nil
	}
	return Div(Attrs{"class": "rounded-md bg-red-50 p-3 text-sm text-red-700", "role": "alert"}, Text(msg))
}
