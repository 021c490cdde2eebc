package frontmatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Fields is a flattened metadata block. Multi-valued entries are joined
// with newlines.
type Fields map[string]string

// Extract reads the metadata block of a Markdown document. YAML front
// matter wins when the document opens with `---`; otherwise Markdown-meta
// header lines are consumed. An opening `---` that is never closed is read
// as a Markdown-meta block, whose end marker may be `...`. The returned body
// has the block removed.
func Extract(content []byte) (Fields, []byte, error) {
	fm, body, had, err := Split(content)
	if err != nil && !errors.Is(err, ErrMissingClosingDelimiter) {
		return nil, nil, err
	}
	if had {
		raw, err := ParseYAML(fm)
		if err != nil {
			return nil, nil, fmt.Errorf("parse yaml frontmatter: %w", err)
		}
		return Flatten(raw), body, nil
	}

	fields, rest := ParseMeta(string(content))
	return fields, []byte(rest), nil
}

// Flatten converts decoded YAML values into strings. Sequences become
// newline-joined strings, dates without a clock component are written as
// YYYY-MM-DD.
func Flatten(raw map[string]any) Fields {
	out := make(Fields, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = flattenValue(v)
	}
	return out
}

func flattenValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.RFC3339)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, flattenValue(item))
		}
		return strings.Join(parts, "\n")
	case map[string]any:
		b, err := yaml.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimRight(string(b), "\n")
	default:
		return fmt.Sprint(val)
	}
}
