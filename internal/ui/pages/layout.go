package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/model"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Layout wraps page content in the document shell: navigation, the toast
// container, the dialog container and the scripts.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		appName := "Artshowcase"
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}
		fullTitle := appName
		if title != "" {
			fullTitle = title + " | " + appName
		}
		nonce := templ.GetNonce(ctx)

		if _, err := io.WriteString(w, "<!doctype html>"); err != nil {
			return err
		}
		doc := c.El("html", c.Attrs{"lang": "en", "class": "h-full bg-gray-50"},
			c.El("head", nil,
				c.Void("meta", c.Attrs{"charset": "utf-8"}),
				c.Void("meta", c.Attrs{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
				c.El("title", nil, c.Text(fullTitle)),
				c.Void("meta", c.Attrs{"name": "htmx-config", "content": `{"includeIndicatorStyles":false}`}),
				c.Void("link", c.Attrs{"rel": "stylesheet", "href": "/assets/css/output.css"}),
				c.El("script", c.Attrs{"src": htmxSrc, "nonce": nonce, "defer": true}),
				c.El("script", c.Attrs{"src": "/assets/js/app.js", "nonce": nonce, "defer": true}),
			),
			c.El("body", c.Attrs{
				"class":      "flex min-h-full flex-col",
				"hx-headers": `{"X-CSRF-Token":"` + ctxkeys.CSRFToken(ctx) + `"}`,
			},
				navbar(ctx, appName),
				c.El("main", c.Class("mx-auto w-full max-w-7xl flex-1 px-4 py-8 sm:px-6 lg:px-8"), content),
				c.El("footer", c.Class("border-t border-gray-200 py-6 text-center text-xs text-gray-500"),
					c.Textf("%s · a showcase for artists", appName),
				),
				c.Div(c.Attrs{"id": "dialog"}),
				c.Div(c.Attrs{
					"id":        "toast-container",
					"class":     "pointer-events-none fixed bottom-4 right-4 z-50 flex flex-col gap-2",
					"aria-live": "polite",
				}),
			),
		)
		return doc.Render(ctx, w)
	})
}

func navbar(ctx context.Context, appName string) templ.Component {
	sess := ctxkeys.Session(ctx)
	path := ctxkeys.URLPath(ctx)

	link := func(href, label string) templ.Component {
		active := href == path || (href != "/" && strings.HasPrefix(path, href+"/"))
		class := "rounded-md px-3 py-2 text-sm font-medium text-gray-600 hover:text-gray-900"
		attrs := c.Attrs{}
		if active {
			class = c.Classes(class, "bg-gray-100 text-gray-900")
			attrs["aria-current"] = "page"
		}
		attrs["class"] = class
		return c.A(href, attrs, c.Text(label))
	}

	links := []templ.Component{link("/", "Home"), link("/explore", "Explore")}
	if sess != nil {
		links = append(links,
			link("/app/dashboard", "Dashboard"),
			link("/app/gallery", "My Gallery"),
			link("/app/artworks/new", "Add Artwork"),
			link("/app/favorites", "Favorites"),
		)
	}

	return el("header", "border-b border-gray-200 bg-white",
		c.El("nav", c.Class("mx-auto flex max-w-7xl flex-wrap items-center gap-2 px-4 py-3 sm:px-6 lg:px-8"),
			c.A("/", c.Class("mr-4 text-lg font-bold text-indigo-600"), c.Text(appName)),
			c.Group(links...),
			c.Div(c.Class("ml-auto flex items-center gap-3"), account(ctx, sess)),
		),
	)
}

func account(ctx context.Context, sess *model.Session) templ.Component {
	if sess == nil {
		return c.Group(
			c.Button(c.ButtonProps{Variant: c.ButtonGhost, Href: "/login"}, c.Text("Login")),
			c.Button(c.ButtonProps{Href: "/register"}, c.Text("Register")),
		)
	}
	return c.Group(
		avatar(sess.PhotoURL, sess.DisplayName(), "h-8 w-8"),
		c.Span(c.Class("hidden text-sm text-gray-700 sm:inline"), c.Text(sess.DisplayName())),
		c.El("form", c.Attrs{"method": "post", "action": "/logout"},
			c.CSRFField(ctxkeys.CSRFToken(ctx)),
			c.Button(c.ButtonProps{Variant: c.ButtonSecondary, Type: "submit", Small: true}, c.Text("Logout")),
		),
	)
}

func avatar(photoURL, name, size string) templ.Component {
	if photoURL == "" {
		initial := "?"
		if r := []rune(strings.TrimSpace(name)); len(r) > 0 {
			initial = strings.ToUpper(string(r[0]))
		}
		return c.Span(c.Class(c.Classes("inline-flex items-center justify-center rounded-full bg-indigo-100 font-semibold text-indigo-700", size)), c.Text(initial))
	}
	return c.Void("img", c.Attrs{
		"src":   c.URL(photoURL),
		"alt":   name,
		"class": c.Classes("rounded-full object-cover", size),
	})
}

// el is shorthand for an element with only a class.
func el(tag, class string, children ...templ.Component) templ.Component {
	return c.El(tag, c.Class(class), children...)
}

// heading is the page title with an optional subtitle.
func heading(title, subtitle string) templ.Component {
	return c.Div(c.Class("mb-8"),
		el("h1", "text-2xl font-bold tracking-tight text-gray-900 sm:text-3xl", c.Text(title)),
		c.If(subtitle != "", c.P(c.Class("mt-2 text-sm text-gray-600"), c.Text(subtitle))),
	)
}
