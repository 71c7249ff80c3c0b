package apiclient

import (
	"context"
	"fmt"

	"github.com/nfrund/learnhub/internal/domain"
)

// ReviewClient reads course reviews.
type ReviewClient struct {
	c *Client
}

func NewReviewClient(c *Client) *ReviewClient {
	return &ReviewClient{c: c}
}

// ByCourse is the authenticated listing.
func (rc *ReviewClient) ByCourse(ctx context.Context, courseID int64) ([]domain.CourseReview, error) {
	return get[[]domain.CourseReview](ctx, rc.c, fmt.Sprintf("/course-reviews/course/%d", courseID))
}

// PublicByCourse is the listing guests may read.
func (rc *ReviewClient) PublicByCourse(ctx context.Context, courseID int64) ([]domain.CourseReview, error) {
	return get[[]domain.CourseReview](ctx, rc.c, fmt.Sprintf("/course-reviews/public/course/%d", courseID))
}
