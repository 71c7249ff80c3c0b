package view

import (
	"strings"

	"github.com/nfrund/learnhub/internal/domain"
)

// courseRoutes all highlight the "Courses" sidebar entry.
var courseRoutes = []string{"/courses", "/course-home"}

// NavItem is one sidebar entry.
type NavItem struct {
	Label string
	Href  string
	Icon  string
}

// IsActiveRoute reports whether the sidebar entry for route should be
// highlighted on the page at current. The query string is ignored.
func IsActiveRoute(current, route string) bool {
	if i := strings.IndexAny(current, "?#"); i >= 0 {
		current = current[:i]
	}
	if route == "/courses" {
		for _, r := range courseRoutes {
			if current == r || strings.HasPrefix(current, r+"/") {
				return true
			}
		}
		return false
	}
	return current == route || strings.HasPrefix(current, route+"/")
}

// Sidebar returns the entries the viewer can see.
func Sidebar(v domain.Viewer) []NavItem {
	items := []NavItem{{Label: "Courses", Href: "/courses", Icon: "📚"}}
	if !v.LoggedIn() {
		return items
	}
	if v.IsStudent() {
		items = append(items, NavItem{Label: "Payment history", Href: "/payments/history", Icon: "💳"})
	}
	if v.IsAdmin() {
		items = append(items,
			NavItem{Label: "Dashboard", Href: "/admin/dashboard", Icon: "📊"},
			NavItem{Label: "Payments", Href: "/payments/history", Icon: "💳"},
			NavItem{Label: "Gateway", Href: "/payments/manage", Icon: "🔧"},
		)
	}
	return items
}
