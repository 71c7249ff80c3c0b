package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/learnhub/internal/catalog"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
	"github.com/nfrund/learnhub/internal/pagination"
	"github.com/nfrund/learnhub/internal/payments"
)

// CoursesData is the course list page.
type CoursesData struct {
	Viewer    domain.Viewer
	Source    catalog.Source
	Enrolled  []domain.Course
	Page      pagination.Page[domain.Course]
	FilesBase string
}

func (d CoursesData) heading() string {
	switch d.Source {
	case catalog.SourceOwn:
		return "My teaching courses"
	case catalog.SourceAll:
		return "All courses"
	case catalog.SourceWithStatus:
		return "Available courses"
	}
	return "Courses"
}

// Courses renders the catalog.
func Courses(d CoursesData) cmp.Node {
	return g.Div(
		g.H1(cmp.Text("Courses")),
		cmp.If(d.Source == catalog.SourceWithStatus, g.Section(
			g.H2(cmp.Textf("My courses (%d)", len(d.Enrolled))),
			courseGrid(d, d.Enrolled, "You are not enrolled in any course yet."),
		)),
		g.Section(
			g.H2(cmp.Text(d.heading())),
			courseGrid(d, d.Page.Items, "No courses to show."),
			Pagination(Pager{
				Current:    d.Page.Current,
				TotalPages: d.Page.TotalPages,
				Numbers:    d.Page.Numbers(),
				Href:       func(p int) string { return fmt.Sprintf("/courses?page=%d", p) },
			}),
		),
	)
}

func courseGrid(d CoursesData, courses []domain.Course, empty string) cmp.Node {
	if len(courses) == 0 {
		return g.P(g.Class("meta"), cmp.Text(empty))
	}
	return g.Div(g.Class("grid"), cmp.Map(courses, func(c domain.Course) cmp.Node {
		return CourseCard(d.Viewer, c, d.FilesBase)
	}))
}

// CourseCard is one catalog tile.
func CourseCard(v domain.Viewer, c domain.Course, filesBase string) cmp.Node {
	enter := fmt.Sprintf("/courses/%d/enter", c.CourseID)
	return g.Div(
		g.Class("card"),
		g.ID(fmt.Sprintf("course-%d", c.CourseID)),
		g.Img(g.Src(format.MediaURL(c.ThumbnailURL, filesBase, format.DefaultCourseThumbnail)), g.Alt(c.DisplayTitle())),
		g.Div(
			g.Class("body"),
			g.H3(cmp.Text(c.DisplayTitle())),
			g.P(cmp.Text(c.DisplayDescription())),
			g.Div(g.Class("meta"), cmp.Text(c.InstructorName), cmp.If(c.CategoryName != "", cmp.Text(" · "+c.CategoryName))),
			g.Div(
				Stars(catalog.Stars(c.AverageRating)),
				g.Span(g.Class("meta"), cmp.Textf(" %.1f (%d)", c.AverageRating, c.ReviewCount)),
			),
			g.Div(g.Class("price"), cmp.Text(format.Price(c.Price))),
			g.Div(
				g.Button(
					g.Type("button"), g.Class("btn btn-secondary"),
					hx.Get(fmt.Sprintf("/courses/%d/reviews", c.CourseID)), hx.Target("#modal"),
					cmp.Text("Reviews"),
				),
				g.Form(
					g.Method("post"), g.Action(enter),
					hx.Post(enter), hx.Target("#modal"),
					g.Button(g.Type("submit"), g.Class("btn"), cmp.Text(enterLabel(v, c))),
				),
			),
		),
	)
}

func enterLabel(v domain.Viewer, c domain.Course) string {
	switch catalog.Decide(v, c) {
	case catalog.ActionPurchase:
		return "Buy course"
	case catalog.ActionEnrollFree:
		return "Enroll for free"
	case catalog.ActionLoginRequired:
		return "Start learning"
	}
	return "Open course"
}

// LoginPrompt asks a guest to log in or sign up before opening a course.
func LoginPrompt() cmp.Node {
	return Modal("Log in required",
		g.P(cmp.Text("You need an account to open this course.")),
		g.A(g.Class("btn"), g.Href("/login"), cmp.Text("Log in")),
		cmp.Text(" "),
		g.A(g.Class("btn btn-secondary"), g.Href("/register"), cmp.Text("Sign up")),
	)
}

// PaymentMethods offered in the purchase modal.
var PaymentMethods = []string{"vnpay", "momo"}

// PurchaseModal lets a student pay for a course.
func PurchaseModal(c domain.Course, filesBase string) cmp.Node {
	action := fmt.Sprintf("/courses/%d/purchase", c.CourseID)
	instructor := c.InstructorName
	if instructor == "" {
		instructor = "Unknown instructor"
	}
	return Modal("Buy course",
		g.Img(g.Src(format.MediaURL(c.ThumbnailURL, filesBase, format.DefaultCourseThumbnail)), g.Alt(c.DisplayTitle())),
		g.H3(cmp.Text(c.DisplayTitle())),
		g.P(g.Class("meta"), cmp.Text(instructor)),
		g.P(cmp.Text(c.DisplayDescription())),
		g.P(g.Class("price"), cmp.Text(format.VND(c.Price))),
		g.Form(
			g.Method("post"), g.Action(action),
			g.Label(g.For("paymentMethod"), cmp.Text("Payment method")),
			g.Select(
				g.ID("paymentMethod"), g.Name("paymentMethod"),
				cmp.Map(PaymentMethods, func(m string) cmp.Node {
					return g.Option(g.Value(m), cmp.Text(payments.MethodName(m)))
				}),
			),
			g.Button(g.Type("submit"), g.Class("btn"), cmp.Text("Pay now")),
		),
	)
}
