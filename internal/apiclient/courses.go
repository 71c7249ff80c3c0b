package apiclient

import (
	"context"
	"fmt"

	"github.com/nfrund/learnhub/internal/domain"
)

// CourseClient reads the course catalog.
type CourseClient struct {
	c *Client
}

func NewCourseClient(c *Client) *CourseClient {
	return &CourseClient{c: c}
}

// PublicWithRatings lists every course with its rating summary. It needs no
// token.
func (cc *CourseClient) PublicWithRatings(ctx context.Context) ([]domain.Course, error) {
	return get[[]domain.Course](ctx, cc.c, "/courses/public/with-ratings")
}

// AllWithStatus lists every course with the enrolled flag set for userID.
func (cc *CourseClient) AllWithStatus(ctx context.Context, userID int64) ([]domain.Course, error) {
	return get[[]domain.Course](ctx, cc.c, fmt.Sprintf("/courses/with-status/%d", userID))
}

// Mine lists the courses owned by the calling instructor.
func (cc *CourseClient) Mine(ctx context.Context) ([]domain.Course, error) {
	return get[[]domain.Course](ctx, cc.c, "/courses/my-courses")
}

// All lists every course.
func (cc *CourseClient) All(ctx context.Context) ([]domain.Course, error) {
	return get[[]domain.Course](ctx, cc.c, "/courses")
}

// Categories lists course categories.
func (cc *CourseClient) Categories(ctx context.Context) ([]domain.Category, error) {
	return get[[]domain.Category](ctx, cc.c, "/categories")
}
