// Package dashboard assembles the admin dashboard: counters and the recent
// activity feed.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
)

const (
	// FeedLimit caps the number of activity entries shown.
	FeedLimit = 5

	feedCourses  = 3
	feedPayments = 2
)

type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type CourseLister interface {
	All(ctx context.Context) ([]domain.Course, error)
}

type PaymentLister interface {
	AdminHistory(ctx context.Context) ([]domain.PaymentHistory, error)
}

type CategoryLister interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// ActivitySource supplies activity observed by this process, most recent
// first.
type ActivitySource interface {
	Recent(n int) []domain.RecentActivity
}

// Service loads the dashboard. Activity may be nil.
type Service struct {
	Users      UserLister
	Courses    CourseLister
	Payments   PaymentLister
	Categories CategoryLister
	Activity   ActivitySource

	// Now is used for fallback timestamps; defaults to time.Now.
	Now func() time.Time
}

// Dashboard is everything the admin page renders.
type Dashboard struct {
	Stats      domain.DashboardStats
	Activities []domain.RecentActivity
	// Failed names the fetches that failed and were shown as zero.
	Failed []string
}

// Load fetches users, courses, payments and categories concurrently. A failed
// fetch is logged and counts as zero; Load itself never fails.
func (s *Service) Load(ctx context.Context) Dashboard {
	var (
		users      []domain.User
		courses    []domain.Course
		payments   []domain.PaymentHistory
		categories []domain.Category
		failed     [4]bool
	)

	// A plain Group: one failure must not cancel the other fetches.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		users, err = s.Users.List(ctx)
		failed[0] = report(ctx, "users", err)
		return nil
	})
	g.Go(func() error {
		var err error
		courses, err = s.Courses.All(ctx)
		failed[1] = report(ctx, "courses", err)
		return nil
	})
	g.Go(func() error {
		var err error
		payments, err = s.Payments.AdminHistory(ctx)
		failed[2] = report(ctx, "payments", err)
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.Categories.Categories(ctx)
		failed[3] = report(ctx, "categories", err)
		return nil
	})
	_ = g.Wait()

	d := Dashboard{
		Stats: domain.DashboardStats{
			TotalUsers:      len(users),
			TotalCourses:    len(courses),
			TotalPayments:   len(payments),
			TotalCategories: len(categories),
		},
	}
	for i, name := range []string{"users", "courses", "payments", "categories"} {
		if failed[i] {
			d.Failed = append(d.Failed, name)
		}
	}

	var local []domain.RecentActivity
	if s.Activity != nil {
		local = s.Activity.Recent(FeedLimit)
	}
	d.Activities = Feed(s.now(), courses, payments, local)
	return d
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func report(ctx context.Context, what string, err error) bool {
	if err == nil {
		return false
	}
	slog.WarnContext(ctx, "Dashboard fetch failed, showing zero", "fetch", what, "error", err)
	return true
}

// Feed builds the activity feed: the first courses as created entries, the
// completed ones among the first payments, and the local entries. The result
// is sorted most recent first and capped at FeedLimit. Entries without a
// parseable timestamp are stamped with now.
func Feed(now time.Time, courses []domain.Course, payments []domain.PaymentHistory, local []domain.RecentActivity) []domain.RecentActivity {
	var feed []domain.RecentActivity

	for _, c := range courses[:min(feedCourses, len(courses))] {
		feed = append(feed, domain.RecentActivity{
			ID:          fmt.Sprintf("course-%d", c.CourseID),
			Type:        domain.ActivityCourseCreated,
			Description: fmt.Sprintf("Course %q was created", c.DisplayTitle()),
			Timestamp:   stamp(now, c.CreatedAt),
			Course:      c.DisplayTitle(),
		})
	}

	for _, p := range payments[:min(feedPayments, len(payments))] {
		if p.Status != domain.PaymentCompleted {
			continue
		}
		user := p.UserName
		if user == "" {
			user = "A user"
		}
		paid := p.PaidAt
		if paid == "" {
			paid = p.CreatedAt
		}
		feed = append(feed, domain.RecentActivity{
			ID:          fmt.Sprintf("payment-%d", p.PaymentID),
			Type:        domain.ActivityPaymentCompleted,
			Description: fmt.Sprintf("Payment completed for %q - %s", p.CourseTitle, format.VND(p.Amount)),
			Timestamp:   stamp(now, paid),
			User:        user,
			Course:      p.CourseTitle,
		})
	}

	feed = append(feed, local...)

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})
	if len(feed) > FeedLimit {
		feed = feed[:FeedLimit]
	}
	return feed
}

func stamp(now time.Time, raw string) time.Time {
	if t, ok := format.ParseTimestamp(raw); ok {
		return t
	}
	return now
}
