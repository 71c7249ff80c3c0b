package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Stars renders five star slots.
func Stars(filled [5]bool) cmp.Node {
	nodes := make([]cmp.Node, 0, len(filled)+1)
	nodes = append(nodes, g.Class("stars"))
	for _, on := range filled {
		if on {
			nodes = append(nodes, g.Span(g.Class("on"), cmp.Text("★")))
		} else {
			nodes = append(nodes, g.Span(g.Class("off"), cmp.Text("☆")))
		}
	}
	return g.Span(nodes...)
}

// Pager describes pagination links.
type Pager struct {
	Current    int
	TotalPages int
	Numbers    []int
	// Href builds the link of a page.
	Href func(page int) string
	// Target, when set, makes the links htmx requests swapping that element.
	Target string
}

// Pagination renders previous/next and the page window. Nothing is rendered
// for a single page.
func Pagination(p Pager) cmp.Node {
	if p.TotalPages <= 1 {
		return nil
	}
	link := func(page int, label string) cmp.Node {
		return g.A(
			g.Href(p.Href(page)),
			cmp.If(p.Target != "", cmp.Group{hx.Get(p.Href(page)), hx.Target(p.Target), hx.Swap("innerHTML")}),
			cmp.Text(label),
		)
	}

	nodes := []cmp.Node{g.Class("pagination")}
	if p.Current > 1 {
		nodes = append(nodes, link(p.Current-1, "‹"))
	}
	for _, n := range p.Numbers {
		if n == p.Current {
			nodes = append(nodes, g.Span(g.Class("current"), cmp.Text(strconv.Itoa(n))))
			continue
		}
		nodes = append(nodes, link(n, strconv.Itoa(n)))
	}
	if p.Current < p.TotalPages {
		nodes = append(nodes, link(p.Current+1, "›"))
	}
	return g.Nav(nodes...)
}

// Modal wraps content in a backdrop; it is swapped into #modal.
func Modal(title string, content ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("modal-backdrop"),
		g.Div(
			g.Class("modal"),
			g.Div(
				g.H2(cmp.Text(title)),
				g.Button(g.Type("button"), g.Class("btn btn-secondary"),
					cmp.Attr("onclick", "document.getElementById('modal').innerHTML=''"),
					cmp.Text("Close")),
			),
			cmp.Group(content),
		),
	)
}

// ModalMessage is a modal with a single line of text.
func ModalMessage(title, message string) cmp.Node {
	return Modal(title, g.P(cmp.Text(message)))
}
