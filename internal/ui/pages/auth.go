package pages

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/validation"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

type LoginProps struct {
	Email         string
	Next          string
	Error         string
	GoogleEnabled bool
}

func Login(p LoginProps) templ.Component {
	action := "/login"
	if p.Next != "" {
		action += "?next=" + url.QueryEscape(p.Next)
	}
	return Layout("Login", authCard("Welcome back", "Sign in to manage your gallery.",
		c.Alert(p.Error),
		csrfForm(action,
			c.Field("Email", "email", "", c.Input(c.InputProps{Type: "email", Name: "email", Value: p.Email, Required: true, Attrs: c.Attrs{"autocomplete": "email"}})),
			c.Field("Password", "password", "", c.Input(c.InputProps{Type: "password", Name: "password", Required: true, Attrs: c.Attrs{"autocomplete": "current-password"}})),
			c.Button(c.ButtonProps{Type: "submit", Class: "w-full"}, c.Text("Login")),
		),
		c.If(p.GoogleEnabled, googleButton(p.Next)),
		c.P(c.Class("text-center text-sm text-gray-600"),
			c.Text("New here? "),
			c.A("/register", c.Class("font-medium text-indigo-600 hover:text-indigo-500"), c.Text("Create an account")),
		),
	))
}

type RegisterProps struct {
	Name          string
	Email         string
	PhotoURL      string
	Errors        validation.FieldErrors
	Error         string
	GoogleEnabled bool
}

func Register(p RegisterProps) templ.Component {
	errs := p.Errors
	return Layout("Register", authCard("Create your account", "Join the community and share your art.",
		c.Alert(p.Error),
		csrfForm("/register",
			c.Field("Name", "name", errs["name"], c.Input(c.InputProps{Name: "name", Value: p.Name, Required: true, Invalid: errs["name"] != "", Attrs: c.Attrs{"autocomplete": "name"}})),
			c.Field("Email", "email", errs["email"], c.Input(c.InputProps{Type: "email", Name: "email", Value: p.Email, Required: true, Invalid: errs["email"] != "", Attrs: c.Attrs{"autocomplete": "email"}})),
			c.Field("Photo URL (optional)", "photoURL", errs["photoURL"], c.Input(c.InputProps{Type: "url", Name: "photoURL", Value: p.PhotoURL, Invalid: errs["photoURL"] != ""})),
			c.Field("Password", "password", errs["password"], c.Input(c.InputProps{Type: "password", Name: "password", Required: true, Invalid: errs["password"] != "", Attrs: c.Attrs{"autocomplete": "new-password"}})),
			c.P(c.Class("-mt-2 text-xs text-gray-500"), c.Text("At least 6 characters with an uppercase and a lowercase letter.")),
			c.Field("Confirm password", "confirmPassword", errs["confirmPassword"], c.Input(c.InputProps{Type: "password", Name: "confirmPassword", Required: true, Invalid: errs["confirmPassword"] != "", Attrs: c.Attrs{"autocomplete": "new-password"}})),
			c.Button(c.ButtonProps{Type: "submit", Class: "w-full"}, c.Text("Register")),
		),
		c.If(p.GoogleEnabled, googleButton("")),
		c.P(c.Class("text-center text-sm text-gray-600"),
			c.Text("Already have an account? "),
			c.A("/login", c.Class("font-medium text-indigo-600 hover:text-indigo-500"), c.Text("Login")),
		),
	))
}

func authCard(title, subtitle string, children ...templ.Component) templ.Component {
	return c.Div(c.Class("mx-auto max-w-md space-y-6 rounded-lg bg-white p-8 shadow-sm ring-1 ring-gray-200"),
		c.Div(c.Class("text-center"),
			el("h1", "text-2xl font-bold text-gray-900", c.Text(title)),
			c.P(c.Class("mt-1 text-sm text-gray-600"), c.Text(subtitle)),
		),
		c.Group(children...),
	)
}

// csrfForm is a plain POST form carrying the CSRF token from the request.
func csrfForm(action string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.El("form", c.Attrs{"method": "post", "action": action, "class": "space-y-4"},
			c.CSRFField(ctxkeys.CSRFToken(ctx)),
			c.Group(children...),
		).Render(ctx, w)
	})
}

func googleButton(next string) templ.Component {
	href := "/auth/google"
	if next != "" {
		href += "?next=" + url.QueryEscape(next)
	}
	return c.Group(
		c.Div(c.Class("flex items-center gap-3 text-xs text-gray-400"),
			c.Div(c.Class("h-px flex-1 bg-gray-200")), c.Text("or"), c.Div(c.Class("h-px flex-1 bg-gray-200")),
		),
		c.Button(c.ButtonProps{Variant: c.ButtonSecondary, Href: href, Class: "w-full"}, c.Text("Continue with Google")),
	)
}
