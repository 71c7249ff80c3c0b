package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseClient_Paths(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[{"courseId":7,"courseTitle":"Go","enrolled":true,"price":0}]`)
	cc := NewCourseClient(New(srv.URL, srv.Client()))
	ctx := context.Background()

	courses, err := cc.AllWithStatus(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "/courses/with-status/42", srv.last.URL.Path)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go", courses[0].DisplayTitle())
	assert.True(t, courses[0].Enrolled)

	_, err = cc.Mine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/courses/my-courses", srv.last.URL.Path)

	_, err = cc.PublicWithRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/courses/public/with-ratings", srv.last.URL.Path)
}

func TestEnrollmentClient(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"success":true,"message":"Enrolled"}`)
	ec := NewEnrollmentClient(New(srv.URL, srv.Client()))

	res, err := ec.Register(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, http.MethodPost, srv.last.Method)
	assert.JSONEq(t, `{"courseId":9}`, string(srv.lastBody))

	require.NoError(t, ec.Enroll(context.Background(), 9))
	assert.Equal(t, "/enrollments/enroll/9", srv.last.URL.Path)
	assert.JSONEq(t, `{}`, string(srv.lastBody))
}

func TestPaymentClient_GatewayReturnsRawBody(t *testing.T) {
	body := `{"success":false,"message":"hash secret missing"}`
	srv := newRecordingServer(t, http.StatusBadRequest, body)
	pc := NewPaymentClient(New(srv.URL, srv.Client()))

	_, raw, err := pc.GatewayCreate(context.Background(), domain.GatewayTestPayment{CourseID: 1, Amount: 500000, OrderInfo: "x"})
	require.Error(t, err)
	assert.JSONEq(t, body, string(raw))
	assert.Equal(t, "hash secret missing", MessageOf(err))

	var sent domain.GatewayTestPayment
	require.NoError(t, json.Unmarshal(srv.lastBody, &sent))
	assert.Equal(t, int64(500000), sent.Amount)
}

func TestPaymentClient_Callback(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"success":true}`)
	pc := NewPaymentClient(New(srv.URL, srv.Client()))

	res, err := pc.SimulateCallback(context.Background(), "TX1", "success")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "/payments/callback/simulate", srv.last.URL.Path)
	assert.JSONEq(t, `{"transactionId":"TX1","status":"success"}`, string(srv.lastBody))
}

func TestReviewClient_Paths(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[{"rating":5}]`)
	rc := NewReviewClient(New(srv.URL, srv.Client()))

	_, err := rc.ByCourse(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/course-reviews/course/3", srv.last.URL.Path)

	reviews, err := rc.PublicByCourse(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/course-reviews/public/course/3", srv.last.URL.Path)
	assert.Equal(t, 5, reviews[0].Rating)
}
