package chat

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText flattens reply markup for terminals and logs. <br> becomes a
// newline and link targets are appended after the link text.
func PlainText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	var href string
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read.
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "br":
				b.WriteByte('\n')
			case "a":
				href = attr(tok, "href")
			}
		case html.EndTagToken:
			tok := z.Token()
			if tok.Data == "a" && href != "" {
				b.WriteString(" <" + href + ">")
				href = ""
			}
		}
	}
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
