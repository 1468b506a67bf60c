package ui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminatedBlock is returned by ParseCSS when a "{" has no matching "}".
var ErrUnterminatedBlock = errors.New("ui: unterminated css block")

// ParseCSS parses the panel's CSS subset: selectors .class, #id or a bare node type
// (e.g. "slider"), comma-separated selector groups, and blocks of "key: value;".
// No combinators, no @rules. Later rules override earlier for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripCSSComments(content)
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return sheet, nil
		}
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			return sheet, nil
		}
		close := strings.IndexByte(rest[open:], '}')
		if close == -1 {
			return sheet, fmt.Errorf("%w after %q", ErrUnterminatedBlock, strings.TrimSpace(rest[:open]))
		}
		close += open
		props := parseDeclarations(rest[open+1 : close])
		for _, sel := range strings.Split(rest[:open], ",") {
			sel = strings.TrimSpace(sel)
			if !validSelector(sel) {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
		rest = rest[close+1:]
	}
}

func validSelector(sel string) bool {
	if sel == "" {
		return false
	}
	if sel[0] == '.' || sel[0] == '#' {
		return len(sel) > 1
	}
	return !strings.ContainsAny(sel, " >+~:[")
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}

// matches reports whether sel applies to n.
func matches(sel string, n *Node) bool {
	switch sel[0] {
	case '.':
		return n.Class == sel[1:]
	case '#':
		return n.ID == sel[1:]
	}
	return n.Type == sel
}
