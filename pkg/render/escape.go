package render

import "strings"

// EscapeText escapes s for inclusion in HTML text content.
func EscapeText(s string) string {
	return escapeHTML(s)
}

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes text for inclusion in a double-quoted attribute
// value. Beyond the HTML entities it also escapes whitespace control
// characters that could break attribute parsing.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"'\n\r\t") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
