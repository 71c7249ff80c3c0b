package catalog

import (
	"strings"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/notify"
)

// Action is what opening a course card leads to.
type Action int

const (
	ActionLoginRequired Action = iota
	ActionOpenCourse
	ActionPurchase
	ActionEnrollFree
)

// Decide resolves what happens when v opens course c.
func Decide(v domain.Viewer, c domain.Course) Action {
	if !v.LoggedIn() {
		return ActionLoginRequired
	}
	if v.IsStudent() && !c.Enrolled {
		if c.Paid() {
			return ActionPurchase
		}
		return ActionEnrollFree
	}
	return ActionOpenCourse
}

// EnrollmentFailure describes a failed enrollment to the user.
type EnrollmentFailure struct {
	notify.Notice
	// AlreadyEnrolled is set when the backend says the user is enrolled
	// already, so the card can flip to enrolled.
	AlreadyEnrolled bool
}

// DescribeEnrollmentError maps an enrollment error to what the user sees.
func DescribeEnrollmentError(err error) EnrollmentFailure {
	status := apiclient.StatusOf(err)
	message := apiclient.MessageOf(err)

	switch {
	case status == 400 && message != "":
		lower := strings.ToLower(message)
		return EnrollmentFailure{
			Notice:          notify.Notice{Kind: notify.Info, Message: message},
			AlreadyEnrolled: strings.Contains(lower, "already enrolled") || strings.Contains(lower, "đã đăng ký"),
		}
	case status == 401:
		return EnrollmentFailure{Notice: notify.Notice{
			Kind:            notify.Warning,
			Message:         "You need to log in to enroll in this course.",
			RedirectToLogin: true,
		}}
	case status == 403:
		return EnrollmentFailure{Notice: notify.Notice{
			Kind:    notify.Error,
			Message: "You are not allowed to enroll in this course.",
		}}
	}

	detail := message
	if detail == "" && err != nil {
		detail = err.Error()
	}
	if detail == "" {
		detail = "unknown error"
	}
	return EnrollmentFailure{Notice: notify.Notice{Kind: notify.Error, Message: "Enrollment failed: " + detail}}
}

// Stars returns five slots for a course rating. A fractional part of one
// half or more fills the next slot.
func Stars(rating float64) [5]bool {
	var stars [5]bool
	full := int(rating)
	half := rating-float64(full) >= 0.5
	for i := range stars {
		stars[i] = i < full || (i == full && half)
	}
	return stars
}
