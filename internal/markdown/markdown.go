// Package markdown converts Markdown content bodies to HTML with goldmark.
//
// Extension names follow the Python-Markdown vocabulary used in site
// configuration files ("def_list", "tables", "footnotes", ...). Each name is
// mapped to the goldmark extension or option that provides the same syntax.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/trakai/internal/frontmatter"
)

// ErrExtensionUnavailable reports a configured extension name with no
// goldmark equivalent.
var ErrExtensionUnavailable = errors.New("markdown extension unavailable")

// ErrFrontMatter reports a metadata block that cannot be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

type feature struct {
	extenders []goldmark.Extender
	parser    []parser.Option
	renderer  []renderer.Option
}

var registry = map[string]feature{
	// Metadata is always extracted by the frontmatter package.
	"meta":          {},
	"fenced_code":   {},
	"sane_lists":    {},
	"def_list":      {extenders: []goldmark.Extender{extension.DefinitionList}},
	"admonition":    {extenders: []goldmark.Extender{AdmonitionExtension}},
	"tables":        {extenders: []goldmark.Extender{extension.Table}},
	"footnotes":     {extenders: []goldmark.Extender{extension.Footnote}},
	"strikethrough": {extenders: []goldmark.Extender{extension.Strikethrough}},
	"tasklist":      {extenders: []goldmark.Extender{extension.TaskList}},
	"linkify":       {extenders: []goldmark.Extender{extension.Linkify}},
	"gfm":           {extenders: []goldmark.Extender{extension.GFM}},
	"smarty":        {extenders: []goldmark.Extender{extension.Typographer}},
	"extra": {extenders: []goldmark.Extender{
		extension.DefinitionList,
		extension.Table,
		extension.Footnote,
	}, parser: []parser.Option{parser.WithAttribute()}},
	"attr_list": {parser: []parser.Option{parser.WithAttribute()}},
	"toc":       {parser: []parser.Option{parser.WithAutoHeadingID()}},
	"nl2br":     {renderer: []renderer.Option{html.WithHardWraps()}},
}

// Supported reports whether name maps to a goldmark feature.
func Supported(name string) bool {
	_, ok := registry[normalize(name)]
	return ok
}

// Converter renders Markdown with a fixed set of extensions.
type Converter struct {
	engine     goldmark.Markdown
	extensions []string
}

// New builds a converter for the named extensions. Unknown names yield an
// error wrapping ErrExtensionUnavailable.
func New(extensions []string) (*Converter, error) {
	var (
		exts      []goldmark.Extender
		parserOpt []parser.Option
		unknown   []string
	)
	// Content files are authored by the site owner; raw HTML passes through.
	rendererOpt := []renderer.Option{html.WithUnsafe()}
	seen := map[string]struct{}{}

	for _, name := range extensions {
		key := normalize(name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		f, ok := registry[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		exts = append(exts, f.extenders...)
		parserOpt = append(parserOpt, f.parser...)
		rendererOpt = append(rendererOpt, f.renderer...)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrExtensionUnavailable, strings.Join(unknown, ", "))
	}

	engine := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpt...),
		goldmark.WithRendererOptions(rendererOpt...),
	)
	return &Converter{engine: engine, extensions: extensions}, nil
}

// Extensions returns the names the converter was built with.
func (c *Converter) Extensions() []string { return c.extensions }

// Convert extracts the metadata block from src and renders the remaining
// body to HTML.
func (c *Converter) Convert(src []byte) (string, frontmatter.Fields, error) {
	fields, body, err := frontmatter.Extract(src)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrFrontMatter, err)
	}

	var buf bytes.Buffer
	if err := c.engine.Convert(body, &buf); err != nil {
		return "", nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), fields, nil
}

func normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	// Python-Markdown accepts dotted module paths such as markdown.extensions.tables.
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	return key
}
