package layouts

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
	"github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/view"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Page is what every full page needs besides its content.
type Page struct {
	Title     string
	Path      string
	Viewer    domain.Viewer
	Flashes   view.FlashData
	FilesBase string
}

// Base wraps content in the document shell with the sidebar.
func Base(p Page, content cmp.Node) templ.Component {
	return view.AdaptGomponentToTempl(document(p, content))
}

func document(p Page, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(p.Title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
				g.Script(g.Src(htmxSrc), g.Defer()),
			),
			g.Body(
				g.Div(
					g.Class("shell"),
					Sidebar(p),
					g.Main(
						g.Class("content"),
						Flashes(p.Flashes),
						content,
						g.Div(g.ID("modal")),
					),
				),
			),
		),
	)
}

// Sidebar is the navigation column with the profile block.
func Sidebar(p Page) cmp.Node {
	return g.Nav(
		g.Class("sidebar"),
		g.A(g.Class("brand"), g.Href("/"), cmp.Text("LearnHub")),
		cmp.Map(view.Sidebar(p.Viewer), func(item view.NavItem) cmp.Node {
			return g.A(
				g.Href(item.Href),
				cmp.If(view.IsActiveRoute(p.Path, item.Href), g.Class("active")),
				cmp.Text(item.Icon+" "+item.Label),
			)
		}),
		profile(p),
	)
}

func profile(p Page) cmp.Node {
	if !p.Viewer.LoggedIn() {
		return g.Div(
			g.Class("profile"),
			g.A(g.Href("/login"), cmp.Text("Log in")),
			g.A(g.Href("/register"), cmp.Text("Sign up")),
		)
	}
	return g.Div(
		g.Class("profile"),
		g.Img(g.Src(format.MediaURL(p.Viewer.AvatarURL, p.FilesBase, format.DefaultAvatar)), g.Alt("avatar")),
		g.Div(
			g.Div(cmp.Text(p.Viewer.Username)),
			g.Div(g.Class("role"), cmp.Text(format.Role(string(p.Viewer.Role)))),
			g.Form(
				g.Method("post"), g.Action("/logout"),
				g.Button(g.Class("btn btn-secondary"), g.Type("submit"), cmp.Text("Log out")),
			),
		),
	)
}

// Flashes renders the pending flash messages.
func Flashes(f view.FlashData) cmp.Node {
	if f.Empty() {
		return nil
	}
	return g.Div(
		g.ID("flashes"),
		cmp.Map(f.Messages(), func(m view.Message) cmp.Node {
			return g.Div(g.Class("flash flash-"+string(m.Kind)), cmp.Text(m.Text))
		}),
	)
}

// PageFor fills the page chrome from the request: path, viewer and flashes.
func PageFor(c echo.Context, title, filesBase string) Page {
	return Page{
		Title:     title,
		Path:      c.Request().URL.Path,
		Viewer:    middleware.ViewerFrom(c),
		Flashes:   view.GetFlashData(c),
		FilesBase: filesBase,
	}
}
