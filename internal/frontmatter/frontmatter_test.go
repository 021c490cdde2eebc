package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\nkey: value\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\nkey: value\r\n---\r\n# Title\r\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock_SplitsAsHadWithEmptyFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\nBody\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("Body\n"), body)
}

func TestParseYAML_ValidYAML_ReturnsMap(t *testing.T) {
	fields, err := ParseYAML([]byte("title: Hello\ntags: [a, b]\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, []any{"a", "b"}, fields["tags"])
}

func TestParseYAML_Empty_ReturnsEmptyMap(t *testing.T) {
	fields, err := ParseYAML(nil)
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestParseYAML_InvalidYAML_ReturnsError(t *testing.T) {
	_, err := ParseYAML([]byte("title: [unterminated\n"))
	require.Error(t, err)
}

func TestExtract_YAMLFrontmatterIsFlattened(t *testing.T) {
	input := []byte("---\nTitle: Hello\ndate: '2020-01-02'\ntags:\n  - go\n  - web\n---\nBody\n")

	fields, body, err := Extract(input)
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, "2020-01-02", fields["date"])
	require.Equal(t, "go\nweb", fields["tags"])
	require.Equal(t, "Body\n", string(body))
}

func TestExtract_FallsBackToMetaHeader(t *testing.T) {
	fields, body, err := Extract([]byte("Title: Hello\nDate: 2020-01-02\n\n# Heading\n"))
	require.NoError(t, err)
	require.Equal(t, Fields{"title": "Hello", "date": "2020-01-02"}, fields)
	require.Equal(t, "# Heading\n", string(body))
}

func TestExtract_InvalidYAMLReturnsError(t *testing.T) {
	_, _, err := Extract([]byte("---\ntitle: [oops\n---\nBody\n"))
	require.Error(t, err)
}
