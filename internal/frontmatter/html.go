package frontmatter

import "regexp"

// htmlHeaderRe matches one `<!-- key : value -->` header together with the
// whitespace around it, so the body starts at the first non-blank content.
var htmlHeaderRe = regexp.MustCompile(`^\s*<!--\s*(.+?)\s*:\s*(.+?)\s*-->\s*`)

// ParseHTMLComments consumes the leading comment headers of an HTML content
// file and returns them with the remaining body, verbatim.
func ParseHTMLComments(text string) (Fields, string) {
	fields := Fields{}
	offset := 0
	for {
		m := htmlHeaderRe.FindStringSubmatchIndex(text[offset:])
		if m == nil {
			break
		}
		fields[text[offset+m[2]:offset+m[3]]] = text[offset+m[4] : offset+m[5]]
		offset += m[1]
		if m[1] == 0 {
			break
		}
	}
	return fields, text[offset:]
}
