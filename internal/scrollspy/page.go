package scrollspy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ErrNoSections is returned for a page without any level-2 heading.
var ErrNoSections = errors.New("portfolio page has no sections")

// Block is one fade-in element of the page.
type Block struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Text string `json:"text"`

	node ast.Node
}

// Section is a navigable part of the page, introduced by a level-2 heading.
type Section struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Page is a portfolio page parsed from Markdown. The first level-1 heading
// is the title; content before the first section is the intro.
type Page struct {
	Title    string    `json:"title"`
	Intro    []Block   `json:"intro"`
	Sections []Section `json:"sections"`

	source []byte
}

func newMarkdown(opts ...goldmark.Option) goldmark.Markdown {
	opts = append([]goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}, opts...)
	return goldmark.New(opts...)
}

// LoadPage reads and parses a Markdown file.
func LoadPage(path string) (*Page, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading portfolio %s: %w", path, err)
	}
	p, err := ParsePage(src)
	if err != nil {
		return nil, fmt.Errorf("parsing portfolio %s: %w", path, err)
	}
	return p, nil
}

// ParsePage builds a page from Markdown source.
func ParsePage(src []byte) (*Page, error) {
	md := newMarkdown()
	doc := md.Parser().Parse(text.NewReader(src))

	p := &Page{source: src}
	var cur *Section
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			if h.Level == 1 && p.Title == "" && cur == nil {
				p.Title = inlineText(h, src)
				continue
			}
			if h.Level <= 2 {
				p.Sections = append(p.Sections, Section{
					ID:    headingID(h, src),
					Title: inlineText(h, src),
				})
				cur = &p.Sections[len(p.Sections)-1]
				continue
			}
		}

		if cur == nil {
			p.Intro = append(p.Intro, newBlock(fmt.Sprintf("intro-block-%d", len(p.Intro)+1), n, src))
			continue
		}
		cur.Blocks = append(cur.Blocks, newBlock(fmt.Sprintf("%s-block-%d", cur.ID, len(cur.Blocks)+1), n, src))
	}

	if len(p.Sections) == 0 {
		return nil, ErrNoSections
	}
	return p, nil
}

// Section returns the section with the given id.
func (p *Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// NavLinks returns one link per section, all inactive.
func (p *Page) NavLinks() []NavLink {
	links := make([]NavLink, 0, len(p.Sections))
	for _, s := range p.Sections {
		links = append(links, NavLink{Href: "#" + s.ID, Label: s.Title})
	}
	return links
}

// BlockIDs returns the ids of every fade-in block in document order.
func (p *Page) BlockIDs() []string {
	var ids []string
	for _, b := range p.Intro {
		ids = append(ids, b.ID)
	}
	for _, s := range p.Sections {
		for _, b := range s.Blocks {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func headingID(h *ast.Heading, src []byte) string {
	if v, ok := h.AttributeString("id"); ok {
		switch id := v.(type) {
		case []byte:
			return string(id)
		case string:
			return id
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(inlineText(h, src)), "-"))
}

func newBlock(id string, n ast.Node, src []byte) Block {
	return Block{ID: id, Kind: blockKind(n), Text: blockText(n, src), node: n}
}

func blockKind(n ast.Node) string {
	switch n.(type) {
	case *ast.Heading:
		return "heading"
	case *ast.List:
		return "list"
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return "code"
	case *ast.Blockquote:
		return "quote"
	case *ast.ThematicBreak:
		return "rule"
	case *ast.HTMLBlock:
		return "html"
	case *extast.Table:
		return "table"
	default:
		return "paragraph"
	}
}

// blockText renders a block as plain text for terminal display.
func blockText(n ast.Node, src []byte) string {
	switch n := n.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		return strings.ReplaceAll(strings.TrimRight(rawLines(n, src), "\n"), "\t", "    ")
	case *ast.ThematicBreak:
		return "───"
	case *ast.List:
		var items []string
		i := n.Start
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			bullet := "•"
			if n.IsOrdered() {
				bullet = fmt.Sprintf("%d.", i)
				i++
			}
			items = append(items, bullet+" "+childrenText(c, src))
		}
		return strings.Join(items, "\n")
	case *ast.Blockquote:
		lines := strings.Split(childrenText(n, src), "\n")
		for i, l := range lines {
			lines[i] = "│ " + l
		}
		return strings.Join(lines, "\n")
	case *extast.Table:
		var rows []string
		for r := n.FirstChild(); r != nil; r = r.NextSibling() {
			var cells []string
			for c := r.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, inlineText(c, src))
			}
			rows = append(rows, strings.Join(cells, " │ "))
		}
		return strings.Join(rows, "\n")
	}
	if n.Type() == ast.TypeBlock && n.FirstChild() != nil && n.FirstChild().Type() == ast.TypeBlock {
		return childrenText(n, src)
	}
	return inlineText(n, src)
}

// childrenText joins the text of a container's child blocks.
func childrenText(n ast.Node, src []byte) string {
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		parts = append(parts, blockText(c, src))
	}
	return strings.Join(parts, "\n")
}

// inlineText flattens the inline content of a leaf block.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
			if c.HardLineBreak() {
				b.WriteByte('\n')
			} else if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.AutoLink:
			b.Write(c.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func rawLines(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}
