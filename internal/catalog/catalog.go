// Package catalog holds the course list logic: which listing a viewer gets,
// how it is split, and what happens when a course card is opened.
package catalog

import (
	"context"
	"log/slog"

	"github.com/nfrund/learnhub/internal/domain"
)

// PageSize is the number of available courses per page (a 3x2 grid).
const PageSize = 6

// Source identifies which listing endpoint serves a viewer.
type Source int

const (
	SourceNone       Source = iota // unknown role, nothing is fetched
	SourcePublic                   // guests: public listing with ratings
	SourceWithStatus               // students: everything plus their enrollment flag
	SourceOwn                      // instructors: their own courses
	SourceAll                      // admins: everything
)

func (s Source) String() string {
	switch s {
	case SourcePublic:
		return "public"
	case SourceWithStatus:
		return "with-status"
	case SourceOwn:
		return "own"
	case SourceAll:
		return "all"
	}
	return "none"
}

// SelectSource picks the listing for the viewer.
func SelectSource(v domain.Viewer) Source {
	if !v.LoggedIn() {
		return SourcePublic
	}
	switch v.Role {
	case domain.RoleStudent:
		return SourceWithStatus
	case domain.RoleInstructor:
		return SourceOwn
	case domain.RoleAdmin:
		return SourceAll
	}
	return SourceNone
}

// CourseAPI is the subset of the course client the catalog reads from.
type CourseAPI interface {
	PublicWithRatings(ctx context.Context) ([]domain.Course, error)
	AllWithStatus(ctx context.Context, userID int64) ([]domain.Course, error)
	Mine(ctx context.Context) ([]domain.Course, error)
	All(ctx context.Context) ([]domain.Course, error)
}

// Listing is what the course page renders.
type Listing struct {
	Source    Source
	Courses   []domain.Course
	Enrolled  []domain.Course
	Available []domain.Course
}

// Split partitions courses by their enrolled flag, keeping order.
func Split(courses []domain.Course) (enrolled, available []domain.Course) {
	for _, c := range courses {
		if c.Enrolled {
			enrolled = append(enrolled, c)
		} else {
			available = append(available, c)
		}
	}
	return enrolled, available
}

// Load fetches the viewer's listing. Guests see an empty catalog instead of
// an error when the public listing fails.
func Load(ctx context.Context, api CourseAPI, v domain.Viewer) (Listing, error) {
	src := SelectSource(v)
	listing := Listing{Source: src}

	switch src {
	case SourcePublic:
		courses, err := api.PublicWithRatings(ctx)
		if err != nil {
			slog.DebugContext(ctx, "public catalog unavailable, showing empty state", "error", err)
			return listing, nil
		}
		listing.Courses = courses
		listing.Available = courses

	case SourceWithStatus:
		courses, err := api.AllWithStatus(ctx, v.UserID)
		if err != nil {
			return listing, err
		}
		listing.Courses = courses
		listing.Enrolled, listing.Available = Split(courses)

	case SourceOwn:
		courses, err := api.Mine(ctx)
		if err != nil {
			return listing, err
		}
		listing.Courses = courses

	case SourceAll:
		courses, err := api.All(ctx)
		if err != nil {
			return listing, err
		}
		listing.Courses = courses
	}
	return listing, nil
}

// Find returns the course with id from the listing.
func (l Listing) Find(id int64) (domain.Course, bool) {
	for _, c := range l.Courses {
		if c.CourseID == id {
			return c, true
		}
	}
	return domain.Course{}, false
}
