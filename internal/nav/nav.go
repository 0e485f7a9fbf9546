package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/services"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition, in header order.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/services", Label: "Services"},
	{Path: "/testimonials", Label: "Testimonials"},
	{Path: "/faqs", Label: "FAQs"},
	{Path: "/contact", Label: "Contact"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

// Label returns the navigation label for a top-level path, or "".
func Label(p string) string {
	for _, it := range Main {
		if it.Path == p {
			return it.Label
		}
	}
	return ""
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// exact or prefix boundary: "/faqs" or "/faqs/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. The trail
// always starts with Home; known sections use their nav label and deeper
// segments a prettified segment.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: Label("/"), Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return crumbs
	}

	href := ""
	for i, part := range parts {
		href += "/" + part
		label := ""
		if i == 0 {
			label = Label(href)
		}
		if label == "" {
			label = titleFromSegment(part)
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	// ASCII is enough for slugs
	if s[0] >= 'a' && s[0] <= 'z' {
		s = string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}
