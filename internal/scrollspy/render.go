package scrollspy

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultTheme is the chroma style used for code blocks.
const DefaultTheme = "monokai"

// RenderOptions controls HTML output.
type RenderOptions struct {
	// Theme is the chroma style for code blocks.
	Theme string
	// SessionsURL, when set, embeds a script that reports scrolling to the
	// portfolio API and applies the returned reveals and nav state. Without
	// it every block is rendered already shown.
	SessionsURL string
}

type renderedBlock struct {
	ID   string
	HTML template.HTML
}

type renderedSection struct {
	ID     string
	Title  string
	Blocks []renderedBlock
}

type pageData struct {
	Title       string
	Links       []NavLink
	Intro       []renderedBlock
	Sections    []renderedSection
	SessionsURL string
}

var pageTmpl = template.Must(template.New("portfolio").Parse(pageTemplate))

// RenderHTML writes the page as a standalone HTML document.
func (p *Page) RenderHTML(w io.Writer, opts RenderOptions) error {
	if opts.Theme == "" {
		opts.Theme = DefaultTheme
	}
	md := newMarkdown(
		goldmark.WithExtensions(highlighting.NewHighlighting(highlighting.WithStyle(opts.Theme))),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	data := pageData{Title: p.Title, Links: p.NavLinks(), SessionsURL: opts.SessionsURL}
	var err error
	if data.Intro, err = p.renderBlocks(md, p.Intro); err != nil {
		return err
	}
	for _, s := range p.Sections {
		blocks, err := p.renderBlocks(md, s.Blocks)
		if err != nil {
			return fmt.Errorf("rendering section %s: %w", s.ID, err)
		}
		data.Sections = append(data.Sections, renderedSection{ID: s.ID, Title: s.Title, Blocks: blocks})
	}

	return pageTmpl.Execute(w, data)
}

func (p *Page) renderBlocks(md goldmark.Markdown, blocks []Block) ([]renderedBlock, error) {
	out := make([]renderedBlock, 0, len(blocks))
	for _, b := range blocks {
		h, err := p.renderNode(md, b.node)
		if err != nil {
			return nil, fmt.Errorf("rendering block %s: %w", b.ID, err)
		}
		out = append(out, renderedBlock{ID: b.ID, HTML: h})
	}
	return out, nil
}

func (p *Page) renderNode(md goldmark.Markdown, n ast.Node) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, p.source, n); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; line-height: 1.6; color: #222; }
nav { position: sticky; top: 0; background: #fff; border-bottom: 1px solid #eee; padding: 0.75rem 2rem; }
.nav-links { list-style: none; display: flex; gap: 1.5rem; margin: 0; padding: 0; }
.nav-links a { color: #555; text-decoration: none; }
.nav-links a.active { color: #0070f3; font-weight: 600; }
main { max-width: 48rem; margin: 0 auto; padding: 2rem; }
section { min-height: 60vh; padding-top: 2rem; }
pre { padding: 1rem; overflow-x: auto; border-radius: 6px; }
.hidden { opacity: 0; transform: translateY(20px); transition: opacity 0.6s ease, transform 0.6s ease; }
.hidden.show { opacity: 1; transform: none; }
</style>
</head>
<body>
<nav><ul class="nav-links">{{range .Links}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}</ul></nav>
<main>
{{if .Title}}<h1>{{.Title}}</h1>{{end}}
{{range .Intro}}<div id="{{.ID}}" class="hidden{{if not $.SessionsURL}} show{{end}}">{{.HTML}}</div>
{{end}}
{{range .Sections}}<section id="{{.ID}}">
<h2>{{.Title}}</h2>
{{range .Blocks}}<div id="{{.ID}}" class="hidden{{if not $.SessionsURL}} show{{end}}">{{.HTML}}</div>
{{end}}</section>
{{end}}
</main>
{{if .SessionsURL}}<script>
(function () {
  const base = {{.SessionsURL}};
  const measure = (el) => { const r = el.getBoundingClientRect(); return { top: r.top + scrollY, bottom: r.bottom + scrollY }; };
  const body = {
    blocks: [...document.querySelectorAll(".hidden")].map(el => ({ id: el.id, rect: measure(el) })),
    sections: [...document.querySelectorAll("section[id]")].map(el => ({ id: el.id, rect: measure(el) })),
  };
  let session = null, pending = false;
  const apply = (u) => {
    (u.revealed || []).forEach(id => document.getElementById(id)?.classList.add("show"));
    if (u.changed) {
      document.querySelectorAll(".nav-links a").forEach(a => a.classList.toggle("active", a.getAttribute("href") === "#" + u.active));
    }
  };
  const report = () => {
    pending = false;
    fetch(base + "/" + session + "/scroll", { method: "POST", body: JSON.stringify({ top: scrollY, height: innerHeight }) })
      .then(r => r.json()).then(apply);
  };
  fetch(base, { method: "POST", body: JSON.stringify(body) }).then(r => r.json()).then(s => {
    session = s.id;
    report();
    addEventListener("scroll", () => { if (!pending) { pending = true; requestAnimationFrame(report); } });
  });
})();
</script>{{end}}
</body>
</html>
`
