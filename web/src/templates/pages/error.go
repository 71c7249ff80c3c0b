package pages

import (
	"net/http"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func Error(status int, message string) cmp.Node {
	if message == "" {
		message = http.StatusText(status)
	}
	return g.Section(
		g.Class("error-page"),
		g.H1(cmp.Textf("%d", status)),
		g.P(cmp.Text(message)),
		g.A(g.Class("btn"), g.Href("/courses"), cmp.Text("Back to courses")),
	)
}
