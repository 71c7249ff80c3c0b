package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"ROLE_ADMIN":   RoleAdmin,
		"Instructor":   RoleInstructor,
		" student ":    RoleStudent,
		"":             RoleGuest,
		"ROLE_AUDITOR": Role("auditor"),
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseRole(in), "input %q", in)
	}
	assert.False(t, Role("auditor").Known())
	assert.True(t, RoleAdmin.Known())
}

func TestViewerLoggedIn(t *testing.T) {
	assert.False(t, Viewer{}.LoggedIn())
	assert.False(t, Viewer{Role: RoleStudent}.LoggedIn(), "a role without a user id is a guest")
	assert.False(t, Viewer{UserID: 3}.LoggedIn(), "a user id without a role is a guest")
	assert.True(t, Viewer{UserID: 3, Role: RoleStudent}.LoggedIn())
}

func TestCourseDisplayFallbacks(t *testing.T) {
	assert.Equal(t, "Go", Course{Title: "Go", CourseTitle: "x"}.DisplayTitle())
	assert.Equal(t, "Rust", Course{CourseTitle: "Rust"}.DisplayTitle())
	assert.Equal(t, "Zig", Course{CourseName: "Zig"}.DisplayTitle())
	assert.Equal(t, "Untitled course", Course{}.DisplayTitle())
	assert.Equal(t, "No description", Course{}.DisplayDescription())
	assert.Equal(t, "2024-03-01", Course{EnrolledAt: "2024-03-01"}.DisplayDate())
	assert.False(t, Course{Price: 0}.Paid())
	assert.True(t, Course{Price: 1}.Paid())
}
