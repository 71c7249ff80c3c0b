package courses

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/learnhub/internal/activity"
	"github.com/nfrund/learnhub/internal/catalog"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/notify"
	"github.com/nfrund/learnhub/internal/pagination"
	"github.com/nfrund/learnhub/internal/pubsub"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/internal/reviews"
	"github.com/nfrund/learnhub/internal/view"
	"github.com/nfrund/learnhub/web/src/templates/layouts"
	"github.com/nfrund/learnhub/web/src/templates/pages"
)

// Enroller is the subset of the enrollment client used here.
type Enroller interface {
	Register(ctx context.Context, courseID int64) (domain.EnrollmentResult, error)
	Enroll(ctx context.Context, courseID int64) error
}

// Purchaser starts a gateway payment.
type Purchaser interface {
	Create(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResponse, error)
}

type Dependencies struct {
	Renderer    rendering.Renderer
	Courses     catalog.CourseAPI
	Enrollments Enroller
	Payments    Purchaser
	ReviewAPI   reviews.API
	Publisher   pubsub.Publisher
	FilesBase   string
}

// Handler serves the course pages.
type Handler struct {
	Dependencies
}

func NewHandler(deps Dependencies) *Handler {
	return &Handler{Dependencies: deps}
}

// Mount registers the routes on the /courses group.
func (h *Handler) Mount(g *echo.Group) {
	g.GET("", h.List)
	g.POST("/:id/enter", h.Enter)
	g.GET("/:id/reviews", h.Reviews)
	g.POST("/:id/enroll", h.Enroll, middleware.RequireLogin)
	g.GET("/:id/purchase", h.PurchaseGet, middleware.RequireLogin)
	g.POST("/:id/purchase", h.PurchasePost, middleware.RequireLogin)
	g.GET("/:id/home", h.Home, middleware.RequireLogin)
}

// List renders the catalog for the viewer's role.
func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	v := middleware.ViewerFrom(c)

	listing, err := catalog.Load(ctx, h.Courses, v)
	if err != nil {
		n := notify.FromError(err, "Could not load courses. Please try again later.")
		middleware.FromContext(ctx).Warn("Failed to load courses", "source", listing.Source.String(), "error", err)
		if n.RedirectToLogin {
			return middleware.ToLogin(c, n)
		}
		view.Flash(c, n)
	}

	items := listing.Courses
	if listing.Source == catalog.SourceWithStatus {
		items = listing.Available
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))

	data := pages.CoursesData{
		Viewer:    v,
		Source:    listing.Source,
		Enrolled:  listing.Enrolled,
		Page:      pagination.Paginate(items, page, catalog.PageSize),
		FilesBase: h.FilesBase,
	}
	return h.page(c, "Courses", pages.Courses(data))
}

// Enter is the card's main button: open, enroll, buy or log in first.
func (h *Handler) Enter(c echo.Context) error {
	v := middleware.ViewerFrom(c)
	course, err := h.course(c)
	if err != nil {
		return err
	}

	switch catalog.Decide(v, course) {
	case catalog.ActionLoginRequired:
		if rendering.IsHTMX(c) {
			return h.Renderer.RenderPage(c, http.StatusOK, pages.LoginPrompt())
		}
		view.SetFlashWarning(c, "Please log in to open this course.")
		return rendering.Redirect(c, "/login")
	case catalog.ActionPurchase:
		if rendering.IsHTMX(c) {
			return h.Renderer.RenderPage(c, http.StatusOK, pages.PurchaseModal(course, h.FilesBase))
		}
		return rendering.Redirect(c, purchaseURL(course.CourseID))
	case catalog.ActionEnrollFree:
		return h.registerFree(c, v, course)
	}
	return rendering.Redirect(c, homeURL(course.CourseID))
}

func (h *Handler) registerFree(c echo.Context, v domain.Viewer, course domain.Course) error {
	ctx := c.Request().Context()
	res, err := h.Enrollments.Register(ctx, course.CourseID)
	if err != nil {
		return h.enrollmentFailed(c, course, err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "The enrollment was not completed."
		}
		view.SetFlashInfo(c, msg)
		return rendering.Redirect(c, "/courses")
	}
	return h.enrolled(c, v, course, res.Message)
}

// Enroll is the review modal's enrollment button. Paid courses go through
// the purchase flow instead.
func (h *Handler) Enroll(c echo.Context) error {
	v := middleware.ViewerFrom(c)
	course, err := h.course(c)
	if err != nil {
		return err
	}
	if course.Enrolled {
		return rendering.Redirect(c, homeURL(course.CourseID))
	}
	if course.Paid() {
		if rendering.IsHTMX(c) {
			return h.Renderer.RenderPage(c, http.StatusOK, pages.PurchaseModal(course, h.FilesBase))
		}
		return rendering.Redirect(c, purchaseURL(course.CourseID))
	}

	if err := h.Enrollments.Enroll(c.Request().Context(), course.CourseID); err != nil {
		return h.enrollmentFailed(c, course, err)
	}
	return h.enrolled(c, v, course, "")
}

func (h *Handler) enrolled(c echo.Context, v domain.Viewer, course domain.Course, message string) error {
	ctx := c.Request().Context()
	if message == "" {
		message = fmt.Sprintf("You are now enrolled in %s.", course.DisplayTitle())
	}
	view.SetFlashSuccess(c, message)

	err := activity.PublishEnrollment(ctx, h.Publisher, activity.Enrollment{
		UserID:      v.UserID,
		Username:    v.Username,
		CourseID:    course.CourseID,
		CourseTitle: course.DisplayTitle(),
		At:          time.Now(),
	})
	if err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish enrollment", "course_id", course.CourseID, "error", err)
	}
	return rendering.Redirect(c, homeURL(course.CourseID))
}

func (h *Handler) enrollmentFailed(c echo.Context, course domain.Course, err error) error {
	middleware.FromContext(c.Request().Context()).Warn("Enrollment failed", "course_id", course.CourseID, "error", err)
	f := catalog.DescribeEnrollmentError(err)
	switch {
	case f.RedirectToLogin:
		return middleware.ToLogin(c, f.Notice)
	case f.AlreadyEnrolled:
		view.Flash(c, f.Notice)
		return rendering.Redirect(c, homeURL(course.CourseID))
	}
	view.Flash(c, f.Notice)
	return rendering.Redirect(c, "/courses")
}

// PurchaseGet is the purchase dialog as a page, for browsers without htmx.
func (h *Handler) PurchaseGet(c echo.Context) error {
	course, err := h.course(c)
	if err != nil {
		return err
	}
	if course.Enrolled || !course.Paid() {
		return rendering.Redirect(c, homeURL(course.CourseID))
	}
	return h.page(c, "Buy "+course.DisplayTitle(), pages.PurchaseModal(course, h.FilesBase))
}

// PurchasePost creates the payment and sends the browser to the gateway.
func (h *Handler) PurchasePost(c echo.Context) error {
	ctx := c.Request().Context()
	course, err := h.course(c)
	if err != nil {
		return err
	}

	method := c.FormValue("paymentMethod")
	if method == "" {
		method = pages.PaymentMethods[0]
	}
	if !slices.Contains(pages.PaymentMethods, method) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported payment method.")
	}

	res, err := h.Payments.Create(ctx, domain.PaymentRequest{CourseID: course.CourseID, PaymentMethod: method})
	if err != nil {
		middleware.FromContext(ctx).Warn("Payment creation failed", "course_id", course.CourseID, "error", err)
		n := notify.FromError(err, "Could not start the payment. Please try again.")
		if n.RedirectToLogin {
			return middleware.ToLogin(c, n)
		}
		view.Flash(c, n)
		return rendering.Redirect(c, "/courses")
	}

	if res.PaymentURL == "" {
		msg := res.Message
		if msg == "" {
			msg = "The payment was created but no payment page was returned."
		}
		view.SetFlashInfo(c, msg)
		return rendering.Redirect(c, "/payments/history")
	}
	middleware.FromContext(ctx).Info("Redirecting to payment gateway", "course_id", course.CourseID, "transaction_id", res.TransactionID)
	return rendering.Redirect(c, res.PaymentURL)
}

// Reviews renders the review modal. Non-htmx requests get it inside a page.
func (h *Handler) Reviews(c echo.Context) error {
	ctx := c.Request().Context()
	v := middleware.ViewerFrom(c)
	course, err := h.course(c)
	if err != nil {
		return err
	}

	list, err := reviews.Load(ctx, h.ReviewAPI, v, course.CourseID)
	content := pages.ModalMessage("Reviews", "Could not load the reviews of this course.")
	if err != nil {
		middleware.FromContext(ctx).Warn("Failed to load reviews", "course_id", course.CourseID, "error", err)
		if notify.FromError(err, "").RedirectToLogin {
			content = pages.LoginPrompt()
		}
	} else {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		content = pages.Reviews(pages.ReviewsData{
			Viewer:    v,
			Course:    course,
			Summary:   reviews.Summarize(list),
			Page:      pagination.Paginate(list, page, reviews.PageSize),
			FilesBase: h.FilesBase,
		})
	}

	if rendering.IsHTMX(c) {
		return h.Renderer.RenderPage(c, http.StatusOK, content)
	}
	return h.page(c, "Reviews", content)
}

// Home is the landing page of an opened course.
func (h *Handler) Home(c echo.Context) error {
	id, err := courseID(c)
	if err != nil {
		return err
	}
	data := pages.CourseHomeData{CourseID: id, Tab: c.QueryParam("tab"), FilesBase: h.FilesBase}

	listing, err := catalog.Load(c.Request().Context(), h.Courses, middleware.ViewerFrom(c))
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to load course", "course_id", id, "error", err)
	}
	if course, ok := listing.Find(id); ok {
		data.Course = &course
	}
	return h.page(c, "Course", pages.CourseHome(data))
}

// course loads the viewer's listing and picks the course named in the path.
func (h *Handler) course(c echo.Context) (domain.Course, error) {
	id, err := courseID(c)
	if err != nil {
		return domain.Course{}, err
	}
	listing, err := catalog.Load(c.Request().Context(), h.Courses, middleware.ViewerFrom(c))
	if err != nil {
		return domain.Course{}, fmt.Errorf("load course %d: %w", id, err)
	}
	course, ok := listing.Find(id)
	if !ok {
		return domain.Course{}, echo.NewHTTPError(http.StatusNotFound, "Course not found.")
	}
	return course, nil
}

func (h *Handler) page(c echo.Context, title string, content cmp.Node) error {
	return h.Renderer.RenderPage(c, http.StatusOK, layouts.Base(layouts.PageFor(c, title, h.FilesBase), content))
}

func courseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid course id.")
	}
	return id, nil
}

func homeURL(id int64) string     { return fmt.Sprintf("/courses/%d/home", id) }
func purchaseURL(id int64) string { return fmt.Sprintf("/courses/%d/purchase", id) }
