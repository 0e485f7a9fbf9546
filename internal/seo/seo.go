package seo

import (
	"html/template"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is the head metadata rendered by the base layout.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []template.JS
}

// Build fills a Meta for a page at path. title is suffixed with the site
// name unless it already contains it.
func Build(siteName, baseURL, path, title, description, image string) Meta {
	full := siteName
	if title != "" && !strings.Contains(title, siteName) {
		full = title + " | " + siteName
	} else if title != "" {
		full = title
	}
	canonical := strings.TrimRight(baseURL, "/") + path
	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}
	return Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       full,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    siteName,
		},
		Twitter: Twitter{Card: card, Image: image},
	}
}

// Add appends a JSON-LD document.
func (m *Meta) Add(doc map[string]any) {
	if js := JSON(doc); js != "" {
		m.JSONLD = append(m.JSONLD, js)
	}
}
