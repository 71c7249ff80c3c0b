// Package reviews loads course reviews and builds the rating summary shown
// in the review modal.
package reviews

import (
	"context"

	"github.com/nfrund/learnhub/internal/domain"
)

// PageSize is the number of reviews per modal page.
const PageSize = 5

// API is the subset of the review client used here.
type API interface {
	ByCourse(ctx context.Context, courseID int64) ([]domain.CourseReview, error)
	PublicByCourse(ctx context.Context, courseID int64) ([]domain.CourseReview, error)
}

// Load fetches the reviews of a course. Guests use the public endpoint.
func Load(ctx context.Context, api API, v domain.Viewer, courseID int64) ([]domain.CourseReview, error) {
	if v.LoggedIn() {
		return api.ByCourse(ctx, courseID)
	}
	return api.PublicByCourse(ctx, courseID)
}

// Bucket is one row of the rating breakdown.
type Bucket struct {
	Stars      int
	Count      int
	Percentage float64
}

// Summary is the average rating and the breakdown from 5 stars down to 1.
type Summary struct {
	Total     int
	Average   float64
	Breakdown []Bucket
}

// Summarize computes the average and breakdown. An empty set has a zero
// average and no breakdown. Ratings outside 1..5 count towards the average
// only.
func Summarize(reviews []domain.CourseReview) Summary {
	if len(reviews) == 0 {
		return Summary{}
	}

	var sum int
	var counts [6]int
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			counts[r.Rating]++
		}
	}

	n := len(reviews)
	s := Summary{
		Total:     n,
		Average:   float64(sum) / float64(n),
		Breakdown: make([]Bucket, 0, 5),
	}
	for stars := 5; stars >= 1; stars-- {
		s.Breakdown = append(s.Breakdown, Bucket{
			Stars:      stars,
			Count:      counts[stars],
			Percentage: float64(counts[stars]) / float64(n) * 100,
		})
	}
	return s
}

// Stars returns five slots for a single review; only whole stars fill.
func Stars(rating int) [5]bool {
	var stars [5]bool
	for i := range stars {
		stars[i] = i < rating
	}
	return stars
}

// CanWrite reports whether the viewer may write a review: logged in and
// enrolled in the course.
func CanWrite(v domain.Viewer, c domain.Course) bool {
	return v.LoggedIn() && c.Enrolled
}
