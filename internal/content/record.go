package content

import "time"

// PageModePost is the page mode of every rendered post.
const PageModePost = "post"

// PreviewSentinel separates the excerpt of a post from the rest of its body.
const PreviewSentinel = "<!-- nvpr -->"

// Record is one parsed content file.
type Record struct {
	// Name is the file name without extension and the output stem.
	Name  string
	Body  string
	Title string

	Date        time.Time
	DateString  string
	NeatDate    string
	RFC822Date  string
	RFC3339Date string

	// Tags is empty unless tags are enabled and the file sets them.
	Tags    []string
	Preview string

	// Meta holds every metadata field, including the ones mapped above.
	Meta map[string]string

	Source   string
	Path     string
	PageMode string
}

// Field returns a metadata value, or "" when the file does not set it.
func (r *Record) Field(key string) string {
	return r.Meta[key]
}

// HasTag reports whether the record carries tag.
func (r *Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
