package convert

import (
	"regexp"
	"strconv"
	"strings"
)

// headingRe matches ATX headings. The body needs at least two characters and
// must not start with '#'.
var headingRe = regexp.MustCompile(`^(#+)\s+([^#].+)$`)

func matchHeading(line string) (Heading, bool) {
	m := headingRe.FindStringSubmatch(line)
	if len(m) != 3 {
		return Heading{}, false
	}
	return Heading{Level: len(m[1]), Text: m[2]}, true
}

func anchorID(n int) string {
	return "a" + strconv.Itoa(n)
}

// tocPrefix returns the list bullet for a heading level.
// Levels 1 to 4 rotate bullets; deeper levels always use "-".
func tocPrefix(level int) string {
	switch level {
	case 1:
		return "-"
	case 2:
		return "  *"
	case 3:
		return "    +"
	case 4:
		return "      -"
	}
	if level < 1 {
		level = 1
	}
	return strings.Repeat("  ", level-1) + "-"
}

func titleMark(level int) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level)
}

func tocLine(h Heading, id string) string {
	return tocPrefix(h.Level) + " [" + h.Text + "](#" + id + ")"
}

func anchoredHeading(h Heading, id string) string {
	return titleMark(h.Level) + ` <a name="` + id + `"></a>` + h.Text
}

// BuildToC returns one entry per heading, in document order, followed by an
// empty entry. The i-th entry links to anchor a<i>.
func BuildToC(headings []Heading) []string {
	toc := make([]string, 0, len(headings)+1)
	for n, h := range headings {
		toc = append(toc, tocLine(h, anchorID(n)))
	}
	return append(toc, "")
}

// Rewrite replaces every heading line of doc with its anchored form.
func Rewrite(doc *Document) {
	for n, h := range doc.Headings {
		if h.Position < 0 || h.Position >= len(doc.Lines) {
			continue
		}
		doc.Lines[h.Position] = anchoredHeading(h, anchorID(n))
	}
}
