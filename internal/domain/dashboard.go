package domain

import "time"

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	TotalUsers      int
	TotalCourses    int
	TotalPayments   int
	TotalCategories int
}

// ActivityType classifies an entry of the admin activity feed.
type ActivityType string

const (
	ActivityUserRegistration ActivityType = "user_registration"
	ActivityCourseCreated    ActivityType = "course_created"
	ActivityPaymentCompleted ActivityType = "payment_completed"
	ActivityCourseEnrolled   ActivityType = "course_enrolled"
)

// RecentActivity is one line of the admin activity feed.
type RecentActivity struct {
	ID          string
	Type        ActivityType
	Description string
	Timestamp   time.Time
	User        string
	Course      string
}

// Icon is the glyph shown next to the activity.
func (a RecentActivity) Icon() string {
	switch a.Type {
	case ActivityUserRegistration:
		return "👤"
	case ActivityCourseCreated:
		return "📚"
	case ActivityPaymentCompleted:
		return "💰"
	case ActivityCourseEnrolled:
		return "✅"
	}
	return "📝"
}
