package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// LoginData refills the form after a failed attempt.
type LoginData struct {
	Username string
}

func Login(d LoginData) cmp.Node {
	return g.Section(
		g.H1(cmp.Text("Log in")),
		g.Form(
			g.Method("post"), g.Action("/login"),
			field("username", "Username", "text", d.Username, true),
			field("password", "Password", "password", "", true),
			g.Button(g.Type("submit"), g.Class("btn"), cmp.Text("Log in")),
		),
		g.P(cmp.Text("No account yet? "), g.A(g.Href("/register"), cmp.Text("Sign up"))),
	)
}

// RegisterData refills the form after a failed attempt.
type RegisterData struct {
	Username string
	Email    string
	FullName string
	Role     string
}

// RegisterRoles are the roles a visitor may sign up with.
var RegisterRoles = []string{"student", "instructor"}

func Register(d RegisterData) cmp.Node {
	return g.Section(
		g.H1(cmp.Text("Create an account")),
		g.Form(
			g.Method("post"), g.Action("/register"),
			field("username", "Username", "text", d.Username, true),
			field("email", "Email", "email", d.Email, true),
			field("full_name", "Full name", "text", d.FullName, false),
			field("password", "Password", "password", "", true),
			g.Label(g.For("role"), cmp.Text("I want to")),
			g.Select(
				g.ID("role"), g.Name("role"),
				cmp.Map(RegisterRoles, func(r string) cmp.Node {
					label := "Learn"
					if r == "instructor" {
						label = "Teach"
					}
					return g.Option(g.Value(r), cmp.If(r == d.Role, g.Selected()), cmp.Text(label))
				}),
			),
			g.Button(g.Type("submit"), g.Class("btn"), cmp.Text("Sign up")),
		),
		g.P(cmp.Text("Already registered? "), g.A(g.Href("/login"), cmp.Text("Log in"))),
	)
}

func field(name, label, typ, value string, required bool) cmp.Node {
	return g.Div(
		g.Class("field"),
		g.Label(g.For(name), cmp.Text(label)),
		g.Input(g.ID(name), g.Name(name), g.Type(typ), cmp.If(value != "", g.Value(value)), cmp.If(required, g.Required())),
	)
}
