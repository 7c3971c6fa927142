package render

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// attrEscaper also escapes whitespace that would otherwise be
	// normalised away by attribute parsing.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)

	commentEscaper = strings.NewReplacer(
		"-->", "--&gt;",
		"--!>", "--!&gt;",
		"<!--", "&lt;!--",
	)
)

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes text for inclusion in a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// escapeComment rewrites only the sequences that would close or nest a
// comment; other comment text is kept as is.
func escapeComment(s string) string {
	s = commentEscaper.Replace(s)
	if strings.HasPrefix(s, ">") || strings.HasPrefix(s, "->") {
		s = strings.Replace(s, ">", "&gt;", 1)
	}
	if strings.HasSuffix(s, "<!-") {
		s = strings.TrimSuffix(s, "<!-") + "&lt;!-"
	}
	return s
}
