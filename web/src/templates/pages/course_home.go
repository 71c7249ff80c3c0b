package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
)

// CourseHomeData is the landing page of an opened course. Course is nil when
// the id did not match anything the viewer can list.
type CourseHomeData struct {
	CourseID  int64
	Course    *domain.Course
	Tab       string
	FilesBase string
}

func CourseHome(d CourseHomeData) cmp.Node {
	if d.Course == nil {
		return g.Section(
			g.H1(cmp.Textf("Course #%d", d.CourseID)),
			g.P(cmp.Text("Course content is loading from the learning area.")),
			g.A(g.Class("btn btn-secondary"), g.Href("/courses"), cmp.Text("Back to courses")),
		)
	}
	c := d.Course
	return g.Section(
		g.Img(g.Src(format.MediaURL(c.ThumbnailURL, d.FilesBase, format.DefaultCourseThumbnail)), g.Alt(c.DisplayTitle())),
		g.H1(cmp.Text(c.DisplayTitle())),
		g.P(g.Class("meta"), cmp.Text(c.InstructorName), cmp.If(c.CategoryName != "", cmp.Text(" · "+c.CategoryName))),
		g.P(cmp.Text(c.DisplayDescription())),
		cmp.If(d.Tab == "reviews", g.P(g.Class("flash flash-info"), cmp.Text("Reviews are written from the course's review tab."))),
		g.A(g.Class("btn btn-secondary"), g.Href("/courses"), cmp.Text("Back to courses")),
	)
}
