package frontmatter

import (
	"regexp"
	"strings"
)

var (
	metaLineRe  = regexp.MustCompile(`^[ ]{0,3}([A-Za-z0-9_-]+):\s*(.*)$`)
	metaMoreRe  = regexp.MustCompile(`^[ ]{4,}(.*)$`)
	metaBeginRe = regexp.MustCompile(`^-{3}(\s.*)?$`)
	metaEndRe   = regexp.MustCompile(`^(-{3}|\.{3})(\s.*)?$`)
)

// ParseMeta consumes Markdown-meta header lines from the top of text.
//
// Each `Key: value` line starts a field (keys are lower-cased); lines
// indented by four or more spaces add another value to the previous key.
// The block ends at the first blank line or `---`/`...` line. If the first
// line is not a header line nothing is consumed.
func ParseMeta(text string) (Fields, string) {
	lines := strings.Split(text, "\n")
	values := map[string][]string{}
	order := []string{}
	key := ""

	i := 0
	if len(lines) > 0 && metaBeginRe.MatchString(strings.TrimRight(lines[0], "\r")) {
		i++
	}
	for ; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if strings.TrimSpace(line) == "" {
			i++
			break
		}
		if metaEndRe.MatchString(line) {
			i++
			break
		}
		if m := metaLineRe.FindStringSubmatch(line); m != nil {
			key = strings.ToLower(strings.TrimSpace(m[1]))
			if _, seen := values[key]; !seen {
				order = append(order, key)
			}
			values[key] = append(values[key], strings.TrimSpace(m[2]))
			continue
		}
		if m := metaMoreRe.FindStringSubmatch(line); m != nil && key != "" {
			values[key] = append(values[key], strings.TrimSpace(m[1]))
			continue
		}
		break
	}

	if len(order) == 0 {
		return Fields{}, text
	}

	fields := make(Fields, len(order))
	for _, k := range order {
		fields[k] = strings.Join(values[k], "\n")
	}
	return fields, strings.Join(lines[i:], "\n")
}
