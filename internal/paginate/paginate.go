// Package paginate splits record lists into fixed-size pages and groups
// records by tag.
package paginate

import (
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"git.home.luguber.info/inful/trakai/internal/content"
)

// Page is one page of a paginated list. Files are slash-separated and
// relative to the output directory.
type Page struct {
	Records []*content.Record
	// Number is 1-based.
	Number int
	File   string
	// Files lists every page of the sequence in order.
	Files []string
}

// Count is the number of pages in the sequence.
func (p Page) Count() int { return len(p.Files) }

// PageCount returns ceil(n/limit), never less than one.
func PageCount(n, limit int) int {
	if limit < 1 {
		limit = 1
	}
	if n <= 0 {
		return 1
	}
	return (n + limit - 1) / limit
}

// PageFile is the file of page number n under dir: dir/index.html for the
// first page and dir/pages/<n>.html for the rest.
func PageFile(dir string, n int) string {
	if n <= 1 {
		return path.Join(dir, "index.html")
	}
	return path.Join(dir, "pages", strconv.Itoa(n)+".html")
}

// Paginate splits records into pages of at most limit records. An empty
// list still yields a single, empty first page.
func Paginate(records []*content.Record, limit int, dir string) []Page {
	if limit < 1 {
		limit = 1
	}
	count := PageCount(len(records), limit)

	files := make([]string, count)
	for i := range files {
		files[i] = PageFile(dir, i+1)
	}

	pages := make([]Page, count)
	for i := range pages {
		lo := min(i*limit, len(records))
		hi := min(lo+limit, len(records))
		pages[i] = Page{
			Records: records[lo:hi],
			Number:  i + 1,
			File:    files[i],
			Files:   files,
		}
	}
	return pages
}

// TagIndex maps a tag label to the records carrying it, newest first.
type TagIndex map[string][]*content.Record

// BuildTagIndex groups records by label. Every label in tags gets an entry,
// even when no record carries it. Record order is preserved.
func BuildTagIndex(records []*content.Record, tags []string) TagIndex {
	idx := make(TagIndex, len(tags))
	for _, t := range tags {
		idx[t] = []*content.Record{}
	}
	for _, rec := range records {
		for _, t := range rec.Tags {
			if _, known := idx[t]; !known {
				continue
			}
			idx[t] = append(idx[t], rec)
		}
	}
	return idx
}

// Labels returns the tag labels in sorted order.
func (idx TagIndex) Labels() []string {
	labels := make([]string, 0, len(idx))
	for t := range idx {
		labels = append(labels, t)
	}
	sort.Strings(labels)
	return labels
}

// Slug is the path segment of a tag's pages: the label lower-cased, with
// anything other than letters, digits, '-', '_' and '.' replaced by '-' and
// leading dots removed. It never contains a separator or names a parent.
func Slug(tag string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			return r
		default:
			return '-'
		}
	}, strings.ToLower(tag))
	s = strings.TrimLeft(s, ".")
	if s == "" {
		return "_"
	}
	return s
}
