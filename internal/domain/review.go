package domain

// CourseReview is a single student review of a course. Rating is 1..5.
type CourseReview struct {
	ReviewID  int64  `json:"reviewId"`
	CourseID  int64  `json:"courseId"`
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

// Author prefers the full name over the login name.
func (r CourseReview) Author() string {
	if r.FullName != "" {
		return r.FullName
	}
	if r.UserName != "" {
		return r.UserName
	}
	return "Anonymous"
}
