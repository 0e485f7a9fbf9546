package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON script body. It returns an empty value
// on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// Business describes the LocalBusiness entity behind the site.
type Business struct {
	Name      string
	URL       string
	Email     string
	Telephone string
	Cities    []string
}

// LocalBusiness returns a schema.org LocalBusiness with the served cities as
// areaServed.
func LocalBusiness(b Business) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     b.Name,
	}
	if b.URL != "" {
		m["url"] = b.URL
	}
	if b.Email != "" {
		m["email"] = b.Email
	}
	if b.Telephone != "" {
		m["telephone"] = b.Telephone
	}
	if len(b.Cities) > 0 {
		areas := make([]map[string]any, 0, len(b.Cities))
		for _, c := range b.Cities {
			areas = append(areas, map[string]any{"@type": "City", "name": c})
		}
		m["areaServed"] = areas
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// QA is one question/answer pair for FAQPage.
type QA struct {
	Question string
	Answer   string
}

// FAQPage builds a schema.org FAQPage. Answers should be plain text.
func FAQPage(items []QA) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for _, it := range items {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}
