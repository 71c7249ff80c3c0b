package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nfrund/learnhub/internal/domain"
)

// EnrollmentClient enrolls the calling user in courses.
type EnrollmentClient struct {
	c *Client
}

func NewEnrollmentClient(c *Client) *EnrollmentClient {
	return &EnrollmentClient{c: c}
}

// Register enrolls in a free course from the catalog.
func (ec *EnrollmentClient) Register(ctx context.Context, courseID int64) (domain.EnrollmentResult, error) {
	var out domain.EnrollmentResult
	err := ec.c.Do(ctx, http.MethodPost, "/enrollments/register", map[string]int64{"courseId": courseID}, &out)
	return out, err
}

// Enroll is the direct enrollment used from the review dialog.
func (ec *EnrollmentClient) Enroll(ctx context.Context, courseID int64) error {
	return ec.c.Do(ctx, http.MethodPost, fmt.Sprintf("/enrollments/enroll/%d", courseID), struct{}{}, nil)
}

// MyCourses lists the calling student's enrollments.
func (ec *EnrollmentClient) MyCourses(ctx context.Context) ([]domain.Course, error) {
	return get[[]domain.Course](ctx, ec.c, "/enrollments/my-courses")
}
