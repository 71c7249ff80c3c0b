package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
	"github.com/nfrund/learnhub/internal/pagination"
	"github.com/nfrund/learnhub/internal/reviews"
)

// ReviewsData is the review modal of one course.
type ReviewsData struct {
	Viewer    domain.Viewer
	Course    domain.Course
	Summary   reviews.Summary
	Page      pagination.Page[domain.CourseReview]
	FilesBase string
}

// Reviews renders the review modal fragment.
func Reviews(d ReviewsData) cmp.Node {
	base := fmt.Sprintf("/courses/%d/reviews", d.Course.CourseID)
	return Modal("Reviews: "+d.Course.DisplayTitle(),
		g.Div(
			g.Class("summary"),
			g.Strong(cmp.Textf("%.1f", d.Summary.Average)),
			cmp.Textf(" out of 5 · %d reviews", d.Summary.Total),
			cmp.Map(d.Summary.Breakdown, breakdownRow),
		),
		reviewCTA(d),
		cmp.If(len(d.Page.Items) == 0, g.P(g.Class("meta"), cmp.Text("No reviews yet."))),
		cmp.Map(d.Page.Items, func(r domain.CourseReview) cmp.Node {
			return reviewItem(r, d.FilesBase)
		}),
		Pagination(Pager{
			Current:    d.Page.Current,
			TotalPages: d.Page.TotalPages,
			Numbers:    d.Page.Numbers(),
			Href:       func(p int) string { return fmt.Sprintf("%s?page=%d", base, p) },
			Target:     "#modal",
		}),
	)
}

func breakdownRow(b reviews.Bucket) cmp.Node {
	return g.Div(
		g.Class("breakdown"),
		g.Span(cmp.Textf("%d ★", b.Stars)),
		g.Div(g.Class("bar"), g.Div(cmp.Attr("style", fmt.Sprintf("width: %.0f%%", b.Percentage)))),
		g.Span(cmp.Textf("%d (%.0f%%)", b.Count, b.Percentage)),
	)
}

func reviewItem(r domain.CourseReview, filesBase string) cmp.Node {
	return g.Article(
		g.Class("review"),
		g.Img(g.Src(format.MediaURL(r.AvatarURL, filesBase, format.DefaultAvatar)), g.Alt(r.Author()), g.Width("32")),
		g.Strong(cmp.Text(r.Author())),
		Stars(reviews.Stars(r.Rating)),
		g.Span(g.Class("meta"), cmp.Text(" "+format.Date(r.CreatedAt))),
		g.P(cmp.Text(r.Comment)),
	)
}

func reviewCTA(d ReviewsData) cmp.Node {
	c := d.Course
	switch {
	case reviews.CanWrite(d.Viewer, c):
		return g.A(g.Class("btn"), g.Href(fmt.Sprintf("/courses/%d/home?tab=reviews", c.CourseID)), cmp.Text("Write a review"))
	case !d.Viewer.LoggedIn():
		return g.P(
			cmp.Text("Log in to enroll and review this course. "),
			g.A(g.Href("/login"), cmp.Text("Log in")),
			cmp.Text(" · "),
			g.A(g.Href("/register"), cmp.Text("Sign up")),
		)
	case d.Viewer.IsStudent():
		action := fmt.Sprintf("/courses/%d/enroll", c.CourseID)
		label := "Enroll for free"
		if c.Paid() {
			label = "Buy for " + format.VND(c.Price)
		}
		return g.Form(
			g.Method("post"), g.Action(action),
			hx.Post(action), hx.Target("#modal"),
			g.Button(g.Type("submit"), g.Class("btn"), cmp.Text(label)),
		)
	}
	return nil
}
