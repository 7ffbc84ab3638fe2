package components

import "github.com/a-h/templ"

// DialogTarget is the container dialogs are loaded into.
const DialogTarget = "#dialog"

// Dialog renders a modal. Elements marked data-dialog-close empty the dialog
// container (see assets/js/app.js).
func Dialog(title string, body templ.Component) templ.Component {
	return Div(Attrs{
		"class":           "fixed inset-0 z-40 flex items-center justify-center bg-gray-900/50 p-4",
		"role":            "dialog",
		"aria-modal":      "true",
		"aria-labelledby": "dialog-title",
	},
		Div(Class("max-h-[90vh] w-full max-w-lg overflow-y-auto rounded-lg bg-white p-6 shadow-xl"),
			Div(Class("mb-4 flex items-center justify-between"),
				El("h2", Attrs{"id": "dialog-title", "class": "text-lg font-semibold text-gray-900"}, Text(title)),
				El("button", Attrs{
					"type":              "button",
					"class":             "text-gray-400 hover:text-gray-600",
					"aria-label":        "Close",
					"data-dialog-close": true,
				}, Text("✕")),
			),
			body,
		),
	)
}

// CloseButton is a secondary button that dismisses the open dialog.
func CloseButton(label string) templ.Component {
	return Button(ButtonProps{Variant: ButtonSecondary, Attrs: Attrs{"data-dialog-close": true}}, Text(label))
}
