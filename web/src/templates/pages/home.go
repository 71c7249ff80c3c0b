package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the guest landing page. Signed-in users are redirected before it
// renders.
func Home() cmp.Node {
	return g.Section(
		g.H1(cmp.Text("Learn something new with LearnHub")),
		g.P(cmp.Text("Browse the catalog, enroll in free courses or buy the ones you need, and follow your progress.")),
		g.A(g.Class("btn"), g.Href("/courses"), cmp.Text("Browse courses")),
		cmp.Text(" "),
		g.A(g.Class("btn btn-secondary"), g.Href("/login"), cmp.Text("Log in")),
	)
}
