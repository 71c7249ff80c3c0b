package layouts

// CalculateTitle builds the document title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - LearnHub"
	}
	return "LearnHub"
}
