package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHTMLComments_ConsumesLeadingHeaders(t *testing.T) {
	input := "<!-- title : Hello -->\n<!-- date : 2020-01-01 -->\n<!-- tags : a, b -->\n<p>Hi</p>\n<!-- nvpr -->rest"

	fields, body := ParseHTMLComments(input)
	require.Equal(t, Fields{"title": "Hello", "date": "2020-01-01", "tags": "a, b"}, fields)
	require.Equal(t, "<p>Hi</p>\n<!-- nvpr -->rest", body)
}

func TestParseHTMLComments_NoHeaders(t *testing.T) {
	fields, body := ParseHTMLComments("<p>Hi</p>\n")
	require.Empty(t, fields)
	require.Equal(t, "<p>Hi</p>\n", body)
}

func TestParseHTMLComments_StopsAtFirstNonHeader(t *testing.T) {
	input := "<!-- title : A -->\n<p>x</p>\n<!-- date : 2020-01-01 -->\n"

	fields, body := ParseHTMLComments(input)
	require.Equal(t, Fields{"title": "A"}, fields)
	require.Equal(t, "<p>x</p>\n<!-- date : 2020-01-01 -->\n", body)
}

func TestParseHTMLComments_ValueMayContainColon(t *testing.T) {
	fields, _ := ParseHTMLComments("<!-- title : Go: a tour -->\nbody")
	require.Equal(t, "Go: a tour", fields["title"])
}
