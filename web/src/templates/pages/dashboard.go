package pages

import (
	"strconv"
	"strings"
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/learnhub/internal/dashboard"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
)

type DashboardData struct {
	Dashboard dashboard.Dashboard
	Now       time.Time
}

func Dashboard(d DashboardData) cmp.Node {
	s := d.Dashboard.Stats
	return g.Div(
		g.H1(cmp.Text("Dashboard")),
		cmp.If(len(d.Dashboard.Failed) > 0, g.Div(
			g.Class("flash flash-warning"),
			cmp.Text("Some figures could not be loaded: "+strings.Join(d.Dashboard.Failed, ", ")),
		)),
		g.Div(
			g.Class("stats"),
			stat("Users", s.TotalUsers),
			stat("Courses", s.TotalCourses),
			stat("Payments", s.TotalPayments),
			stat("Categories", s.TotalCategories),
		),
		g.Section(
			g.H2(cmp.Text("Recent activity")),
			cmp.If(len(d.Dashboard.Activities) == 0, g.P(g.Class("meta"), cmp.Text("Nothing happened yet."))),
			g.Ul(
				g.Class("feed"),
				cmp.Map(d.Dashboard.Activities, func(a domain.RecentActivity) cmp.Node {
					return g.Li(
						g.Span(g.Class("icon"), cmp.Text(a.Icon())),
						g.Span(cmp.Text(a.Description)),
						g.Span(g.Class("meta"), cmp.Text(" "+format.Relative(d.Now, a.Timestamp))),
					)
				}),
			),
		),
	)
}

func stat(label string, n int) cmp.Node {
	return g.Div(
		g.Class("stat"),
		g.Strong(cmp.Text(strconv.Itoa(n))),
		g.Span(cmp.Text(label)),
	)
}
