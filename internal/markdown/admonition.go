package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// An Admonition is a titled call-out box:
//
//	!!! warning "Mind the gap"
//	    Indented body, any block content.
type Admonition struct {
	gast.BaseBlock
	Classes []string
	// Title is empty when the header carried an explicit "".
	Title string
}

// KindAdmonition is the NodeKind of Admonition.
var KindAdmonition = gast.NewNodeKind("Admonition")

func (n *Admonition) Kind() gast.NodeKind { return KindAdmonition }

func (n *Admonition) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Classes": strings.Join(n.Classes, " "),
		"Title":   n.Title,
	}, nil)
}

var admonitionHeader = regexp.MustCompile(`^!!! ?([\w\-]+(?: +[\w\-]+)*)(?: +"(.*?)")? *$`)

// parseAdmonitionHeader reads `!!! type [type...] ["title"]`. Without a
// quoted title the first class, capitalised, is used.
func parseAdmonitionHeader(line []byte) (*Admonition, bool) {
	trimmed := util.TrimRightSpace(line)
	m := admonitionHeader.FindSubmatchIndex(trimmed)
	if m == nil {
		return nil, false
	}
	n := &Admonition{Classes: strings.Fields(string(trimmed[m[2]:m[3]]))}
	if m[4] >= 0 {
		n.Title = string(trimmed[m[4]:m[5]])
	} else {
		first := n.Classes[0]
		n.Title = strings.ToUpper(first[:1]) + strings.ToLower(first[1:])
	}
	return n, true
}

type admonitionParser struct{}

func (p *admonitionParser) Trigger() []byte { return []byte{'!'} }

func (p *admonitionParser) Open(_ gast.Node, reader text.Reader, _ parser.Context) (gast.Node, parser.State) {
	line, _ := reader.PeekLine()
	w, pos := util.IndentWidth(line, reader.LineOffset())
	if w > 3 {
		return nil, parser.NoChildren
	}
	node, ok := parseAdmonitionHeader(line[pos:])
	if !ok {
		return nil, parser.NoChildren
	}
	reader.AdvanceToEOL()
	return node, parser.HasChildren
}

// Continue keeps lines indented by four columns or blank; the body is the
// text after that indentation.
func (p *admonitionParser) Continue(_ gast.Node, reader text.Reader, _ parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		reader.AdvanceToEOL()
		return parser.Continue | parser.HasChildren
	}
	if w, _ := util.IndentWidth(line, reader.LineOffset()); w < 4 {
		return parser.Close
	}
	pos, padding := util.IndentPosition(line, reader.LineOffset(), 4)
	reader.AdvanceAndSetPadding(pos, padding)
	return parser.Continue | parser.HasChildren
}

func (p *admonitionParser) Close(gast.Node, text.Reader, parser.Context) {}

// A header must start a block, as in Python-Markdown.
func (p *admonitionParser) CanInterruptParagraph() bool { return false }
func (p *admonitionParser) CanAcceptIndentedLine() bool { return false }

type admonitionRenderer struct{}

func (r *admonitionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAdmonition, r.render)
}

func (r *admonitionRenderer) render(w util.BufWriter, _ []byte, node gast.Node, entering bool) (gast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return gast.WalkContinue, nil
	}
	n := node.(*Admonition)
	_, _ = w.WriteString(`<div class="admonition `)
	_, _ = w.Write(util.EscapeHTML([]byte(strings.Join(n.Classes, " "))))
	_, _ = w.WriteString("\">\n")
	if n.Title != "" {
		_, _ = w.WriteString(`<p class="admonition-title">`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("</p>\n")
	}
	return gast.WalkContinue, nil
}

type admonitionExtension struct{}

// AdmonitionExtension adds Python-Markdown style `!!!` admonitions.
var AdmonitionExtension goldmark.Extender = &admonitionExtension{}

func (e *admonitionExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&admonitionParser{}, 750),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&admonitionRenderer{}, 500),
	))
}
