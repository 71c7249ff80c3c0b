package domain

// Course is a catalog entry as returned by the course and enrollment
// endpoints. The enrollment endpoints name the title field differently, so
// the Display helpers fall back across the variants.
type Course struct {
	CourseID       int64   `json:"courseId"`
	Title          string  `json:"title"`
	CourseTitle    string  `json:"courseTitle,omitempty"`
	CourseName     string  `json:"courseName,omitempty"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	ThumbnailURL   string  `json:"thumbnailUrl"`
	CategoryName   string  `json:"categoryName"`
	InstructorName string  `json:"instructorName"`
	Enrolled       bool    `json:"enrolled"`
	AverageRating  float64 `json:"averageRating"`
	ReviewCount    int     `json:"reviewCount"`
	CreatedAt      string  `json:"createdAt"`
	EnrolledAt     string  `json:"enrolledAt,omitempty"`
}

// DisplayTitle returns the first non-empty title variant.
func (c Course) DisplayTitle() string {
	switch {
	case c.Title != "":
		return c.Title
	case c.CourseTitle != "":
		return c.CourseTitle
	case c.CourseName != "":
		return c.CourseName
	}
	return "Untitled course"
}

func (c Course) DisplayDescription() string {
	if c.Description == "" {
		return "No description"
	}
	return c.Description
}

// DisplayDate is the creation date, or the enrollment date for entries that
// come from the enrollment endpoints.
func (c Course) DisplayDate() string {
	if c.CreatedAt != "" {
		return c.CreatedAt
	}
	return c.EnrolledAt
}

// Paid reports whether enrolling requires a payment.
func (c Course) Paid() bool {
	return c.Price > 0
}

// Category is only counted by the admin dashboard.
type Category struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
}

// EnrollmentResult is the body of a successful enrollment registration.
type EnrollmentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
