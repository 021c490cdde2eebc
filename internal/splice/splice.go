// Package splice replaces the contents of a marker element in an existing
// HTML page.
//
// The marker is the first element whose class list contains a given class.
// The replacement works on whole lines: the block is appended after the
// marker's start line and every line strictly between the start line and
// the line of the matching close tag is removed.
package splice

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
)

// Region locates a marker element by 0-based line numbers.
type Region struct {
	Start int
	End   int
	Tag   string
}

// FindRegion scans page for the first start tag carrying class and the end
// tag that closes it. Nested elements with the same tag name are counted so
// the matching close is found; self-closing tags are ignored.
func FindRegion(page, class string) (Region, error) {
	z := html.NewTokenizer(strings.NewReader(page))

	var (
		region Region
		found  bool
		nest   int
		line   int
	)
	for {
		tt := z.Next()
		tokenLine := line
		line += bytes.Count(z.Raw(), []byte("\n"))

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return Region{}, errors.WrapError(err, errors.CategoryMarker, "cannot tokenize page").
					Fatal().WithContext("class", class).Build()
			}
			if !found {
				return Region{}, errors.MarkerNotFoundError("no element carries the marker class").
					WithContext("class", class).Build()
			}
			return Region{}, errors.MarkerNotFoundError("marker element is never closed").
				WithContext("class", class).WithContext("tag", region.Tag).
				WithContext("line", region.Start).Build()

		case html.StartTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if !found {
				if hasClass(z, hasAttr, class) {
					region.Start = tokenLine
					region.Tag = tag
					found = true
				}
				continue
			}
			if tag == region.Tag {
				nest++
			}

		case html.EndTagToken:
			if !found {
				continue
			}
			name, _ := z.TagName()
			if string(name) != region.Tag {
				continue
			}
			if nest == 0 {
				region.End = tokenLine
				return region, nil
			}
			nest--
		}
	}
}

func hasClass(z *html.Tokenizer, more bool, class string) bool {
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		if string(key) != "class" {
			continue
		}
		for _, c := range strings.Fields(string(val)) {
			if c == class {
				return true
			}
		}
		// Only the first class attribute counts.
		return false
	}
	return false
}

// Splice inserts block after the start line of r and drops the lines
// between the start and end lines.
func Splice(page string, r Region, block string) string {
	lines := strings.Split(page, "\n")
	lines[r.Start] += "\n" + block
	if r.End > r.Start+1 {
		lines = append(lines[:r.Start+1], lines[r.End:]...)
	}
	return strings.Join(lines, "\n")
}
