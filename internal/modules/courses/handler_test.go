package courses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/learnhub/internal/activity"
	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/pubsub"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/internal/testutils"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) messages() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pubsub.Message(nil), p.msgs...)
}

type fixture struct {
	e   *echo.Echo
	api *testutils.FakeAPI
	pub *recordingPublisher
}

func setup(t *testing.T) fixture {
	t.Helper()
	api := testutils.NewFakeAPI(t)
	client := api.Client()
	pub := &recordingPublisher{}

	h := NewHandler(Dependencies{
		Renderer:    rendering.NewUniversalRenderer(),
		Courses:     apiclient.NewCourseClient(client),
		Enrollments: apiclient.NewEnrollmentClient(client),
		Payments:    apiclient.NewPaymentClient(client),
		ReviewAPI:   apiclient.NewReviewClient(client),
		Publisher:   pub,
		FilesBase:   "http://files.test/images",
	})
	e := testutils.NewEcho()
	h.Mount(e.Group("/courses"))
	return fixture{e: e, api: api, pub: pub}
}

var studentCourses = []domain.Course{
	{CourseID: 1, Title: "Go basics", Enrolled: true},
	{CourseID: 2, Title: "Free SQL", Price: 0},
	{CourseID: 3, Title: "Paid Rust", Price: 500000, InstructorName: "Huy"},
}

func TestList_Guest(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/public/with-ratings", http.StatusOK, []domain.Course{{CourseID: 5, Title: "Public course"}})

	rec := testutils.Do(f.e, http.MethodGet, "/courses", nil, nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Public course")
	assert.Contains(t, rec.Body.String(), "Start learning")
}

func TestList_GuestFailureIsEmptyState(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/public/with-ratings", http.StatusInternalServerError, `{"message":"down"}`)

	rec := testutils.Do(f.e, http.MethodGet, "/courses", nil, nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No courses to show.")
	assert.NotContains(t, rec.Body.String(), "Could not load courses")
}

func TestList_StudentSplitsEnrolled(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodGet, "/courses", nil, cookies, false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "My courses (1)")
	assert.Contains(t, body, "Enroll for free")
	assert.Contains(t, body, "Buy course")

	call, ok := f.api.LastCall(http.MethodGet, "/courses/with-status/7")
	require.True(t, ok)
	assert.Contains(t, call.Auth, "Bearer ")
}

func TestList_InstructorAndAdminSources(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/my-courses", http.StatusOK, []domain.Course{{CourseID: 1, Title: "Mine"}})
	f.api.Handle(http.MethodGet, "/courses", http.StatusOK, []domain.Course{{CourseID: 2, Title: "Everything"}})

	rec := testutils.Do(f.e, http.MethodGet, "/courses", nil, testutils.LoginAs(t, f.e, domain.RoleInstructor, 3, "huy"), false)
	assert.Contains(t, rec.Body.String(), "My teaching courses")
	assert.Contains(t, rec.Body.String(), "Mine")

	rec = testutils.Do(f.e, http.MethodGet, "/courses", nil, testutils.LoginAs(t, f.e, domain.RoleAdmin, 1, "root"), false)
	assert.Contains(t, rec.Body.String(), "All courses")
	assert.Contains(t, rec.Body.String(), "Everything")
}

func TestList_UnauthorizedRedirectsToLogin(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusUnauthorized, `{"message":"expired"}`)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodGet, "/courses", nil, cookies, false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestList_ServerErrorShowsFlash(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusInternalServerError, `{"message":"boom"}`)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodGet, "/courses", nil, cookies, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not load courses. Please try again later.")
}

func TestEnter_GuestGetsLoginPrompt(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/public/with-ratings", http.StatusOK, []domain.Course{{CourseID: 5, Title: "Public"}})

	rec := testutils.Do(f.e, http.MethodPost, "/courses/5/enter", url.Values{}, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log in required")

	rec = testutils.Do(f.e, http.MethodPost, "/courses/5/enter", url.Values{}, nil, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestEnter_PaidCourseOpensPurchaseModal(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/3/enter", url.Values{}, cookies, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/courses/3/purchase"`)
	assert.Contains(t, rec.Body.String(), "Huy")
}

func TestEnter_EnrolledCourseOpensHome(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/1/enter", url.Values{}, cookies, true)

	assert.Equal(t, "/courses/1/home", rec.Header().Get("HX-Redirect"))
}

func TestEnter_FreeCourseRegistersAndPublishes(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	f.api.Handle(http.MethodPost, "/enrollments/register", http.StatusOK, domain.EnrollmentResult{Success: true})
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/2/enter", url.Values{}, cookies, false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/courses/2/home", rec.Header().Get(echo.HeaderLocation))

	call, ok := f.api.LastCall(http.MethodPost, "/enrollments/register")
	require.True(t, ok)
	assert.JSONEq(t, `{"courseId":2}`, string(call.Body))

	msgs := f.pub.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, activity.EnrollmentCreated.Name(), msgs[0].Topic)
	var payload activity.Enrollment
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &payload))
	assert.Equal(t, int64(2), payload.CourseID)
	assert.Equal(t, "mai", payload.Username)

	home := testutils.Do(f.e, http.MethodGet, "/courses/2/home", nil, testutils.Follow(cookies, rec), false)
	assert.Contains(t, home.Body.String(), "You are now enrolled in Free SQL.")
}

func TestEnter_RegisterDeclined(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	f.api.Handle(http.MethodPost, "/enrollments/register", http.StatusOK, domain.EnrollmentResult{Success: false, Message: "Course is full"})
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/2/enter", url.Values{}, cookies, false)

	assert.Equal(t, "/courses", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, f.pub.messages())
	list := testutils.Do(f.e, http.MethodGet, "/courses", nil, testutils.Follow(cookies, rec), false)
	assert.Contains(t, list.Body.String(), "Course is full")
}

func TestEnter_AlreadyEnrolledOpensHome(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	f.api.Handle(http.MethodPost, "/enrollments/register", http.StatusBadRequest, `{"message":"User already enrolled"}`)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/2/enter", url.Values{}, cookies, false)

	assert.Equal(t, "/courses/2/home", rec.Header().Get(echo.HeaderLocation))
}

func TestEnter_UnknownCourse(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/99/enter", url.Values{}, cookies, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = testutils.Do(f.e, http.MethodPost, "/courses/abc/enter", url.Values{}, cookies, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnroll_FreeCourseFromReviews(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	f.api.Handle(http.MethodPost, "/enrollments/enroll/2", http.StatusOK, `{}`)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/2/enroll", url.Values{}, cookies, true)

	assert.Equal(t, "/courses/2/home", rec.Header().Get("HX-Redirect"))
	assert.True(t, f.api.Called(http.MethodPost, "/enrollments/enroll/2"))
	assert.Len(t, f.pub.messages(), 1)
}

func TestEnroll_PaidCourseShowsPurchase(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/3/enroll", url.Values{}, cookies, true)

	assert.Contains(t, rec.Body.String(), "Pay now")
	assert.False(t, f.api.Called(http.MethodPost, "/enrollments/enroll/3"))
}

func TestEnroll_RequiresLogin(t *testing.T) {
	f := setup(t)

	rec := testutils.Do(f.e, http.MethodPost, "/courses/2/enroll", url.Values{}, nil, false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestPurchase_RedirectsToGateway(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	f.api.Handle(http.MethodPost, "/payments/create", http.StatusOK, domain.PaymentResponse{Success: true, PaymentURL: "https://sandbox.test/pay?tx=1", TransactionID: "TX1"})
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/3/purchase", url.Values{"paymentMethod": {"momo"}}, cookies, false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://sandbox.test/pay?tx=1", rec.Header().Get(echo.HeaderLocation))
	call, ok := f.api.LastCall(http.MethodPost, "/payments/create")
	require.True(t, ok)
	assert.JSONEq(t, `{"courseId":3,"paymentMethod":"momo"}`, string(call.Body))
}

func TestPurchase_RejectsUnknownMethod(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/3/purchase", url.Values{"paymentMethod": {"cash"}}, cookies, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, f.api.Called(http.MethodPost, "/payments/create"))
}

func TestPurchase_Failure(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	f.api.Handle(http.MethodPost, "/payments/create", http.StatusInternalServerError, `{"message":"gateway down"}`)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodPost, "/courses/3/purchase", url.Values{}, cookies, false)

	assert.Equal(t, "/courses", rec.Header().Get(echo.HeaderLocation))
	list := testutils.Do(f.e, http.MethodGet, "/courses", nil, testutils.Follow(cookies, rec), false)
	assert.Contains(t, list.Body.String(), "Could not start the payment.")
}

func TestPurchaseGet_FreeCourseRedirectsHome(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodGet, "/courses/2/purchase", nil, cookies, false)
	assert.Equal(t, "/courses/2/home", rec.Header().Get(echo.HeaderLocation))

	rec = testutils.Do(f.e, http.MethodGet, "/courses/3/purchase", nil, cookies, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Buy Paid Rust - LearnHub</title>")
}

func TestReviews_GuestUsesPublicEndpoint(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/public/with-ratings", http.StatusOK, []domain.Course{{CourseID: 5, Title: "Public"}})
	f.api.Handle(http.MethodGet, "/course-reviews/public/course/5", http.StatusOK, []domain.CourseReview{
		{ReviewID: 1, Rating: 5, FullName: "Lan", Comment: "Loved it"},
		{ReviewID: 2, Rating: 4, UserName: "binh"},
	})

	rec := testutils.Do(f.e, http.MethodGet, "/courses/5/reviews", nil, nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Loved it")
	assert.Contains(t, body, "4.5")
	assert.NotContains(t, body, "<html")
	assert.False(t, f.api.Called(http.MethodGet, "/course-reviews/course/5"))
}

func TestReviews_MemberUsesAuthenticatedEndpoint(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	f.api.Handle(http.MethodGet, "/course-reviews/course/1", http.StatusOK, []domain.CourseReview{{ReviewID: 1, Rating: 3}})
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodGet, "/courses/1/reviews", nil, cookies, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<html")
	assert.Contains(t, rec.Body.String(), "Write a review")
}

func TestReviews_LoadFailure(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/public/with-ratings", http.StatusOK, []domain.Course{{CourseID: 5, Title: "Public"}})
	f.api.Handle(http.MethodGet, "/course-reviews/public/course/5", http.StatusInternalServerError, `{}`)

	rec := testutils.Do(f.e, http.MethodGet, "/courses/5/reviews", nil, nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not load the reviews of this course.")
}

func TestHome(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusOK, studentCourses)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodGet, "/courses/1/home", nil, cookies, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go basics")

	rec = testutils.Do(f.e, http.MethodGet, "/courses/42/home", nil, cookies, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Course #42")
}

func TestList_RejectedTokenIsCleared(t *testing.T) {
	f := setup(t)
	f.api.Handle(http.MethodGet, "/courses/with-status/7", http.StatusUnauthorized, `{"message":"expired"}`)
	cookies := testutils.LoginAs(t, f.e, domain.RoleStudent, 7, "mai")

	rec := testutils.Do(f.e, http.MethodGet, "/courses", nil, cookies, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookies = testutils.Follow(cookies, rec)
	rec = testutils.Do(f.e, http.MethodGet, "/_whoami", nil, cookies, false)
	assert.Empty(t, rec.Body.String())
}
