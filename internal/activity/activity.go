// Package activity keeps a short in-memory log of things users did through
// this front-end, fed by bus events and read by the admin dashboard.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/pubsub"
)

// DefaultCapacity is how many entries the log keeps.
const DefaultCapacity = 50

// Enrollment is published when a student enrolls through the front-end.
type Enrollment struct {
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	CourseID    int64     `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	At          time.Time `json:"at"`
}

// EnrollmentCreated is the topic enrollments are published on.
var EnrollmentCreated = pubsub.NewEvent[Enrollment]("enrollment.created")

// PublishEnrollment announces an enrollment on the bus.
func PublishEnrollment(ctx context.Context, p pubsub.Publisher, e Enrollment) error {
	return pubsub.Publish(ctx, p, EnrollmentCreated, strconv.FormatInt(e.UserID, 10), e)
}

// Log is a fixed size ring of activities, safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []domain.RecentActivity
	next    int
	full    bool
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{entries: make([]domain.RecentActivity, capacity)}
}

// Record appends an entry, overwriting the oldest one when full.
func (l *Log) Record(a domain.RecentActivity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[l.next] = a
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []domain.RecentActivity {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := l.next
	if l.full {
		size = len(l.entries)
	}
	if n > size {
		n = size
	}

	out := make([]domain.RecentActivity, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.next - i + len(l.entries)) % len(l.entries)
		out = append(out, l.entries[idx])
	}
	return out
}

// Subscribe records every published enrollment in log.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, log *Log) error {
	return pubsub.Subscribe(ctx, sub, EnrollmentCreated, func(ctx context.Context, e Enrollment) error {
		log.Record(FromEnrollment(e))
		slog.DebugContext(ctx, "Enrollment recorded", "user_id", e.UserID, "course_id", e.CourseID)
		return nil
	})
}

// FromEnrollment turns an enrollment event into a feed entry.
func FromEnrollment(e Enrollment) domain.RecentActivity {
	user := e.Username
	if user == "" {
		user = "A student"
	}
	return domain.RecentActivity{
		ID:          uuid.NewString(),
		Type:        domain.ActivityCourseEnrolled,
		Description: fmt.Sprintf("%s enrolled in %q", user, e.CourseTitle),
		Timestamp:   e.At,
		User:        user,
		Course:      e.CourseTitle,
	}
}
