package site

import (
	"emuscan/internal/catalog"
	"emuscan/internal/i18n"
	"emuscan/internal/lettergroup"
	"emuscan/resources"
	"fmt"
	"html/template"
	"io"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/samber/lo"
)

const (
	IndexPage      = "index.html"
	StylesheetFile = "style.css"
)

// Renderer turns catalog values into HTML documents. It does no file I/O.
type Renderer struct {
	system    *template.Template
	index     *template.Template
	localizer *i18n.Localizer
	generator string
}

type systemPageData struct {
	Lang       string
	Generator  string
	Title      string
	DataSystem string
	CountLine  string
	Nav        []string
	Entries    []lettergroup.Entry
	BackLabel  string
}

type indexLink struct {
	Href  template.URL
	Name  string
	Count int
}

type indexPageData struct {
	Lang      string
	Generator string
	Title     string
	Heading   string
	Links     []indexLink
	QRCode    string
	QRAlt     string
	MadeWith  string
}

func NewRenderer(localizer *i18n.Localizer, generator string) (*Renderer, error) {
	system, err := parsePageTemplate("system.html")
	if err != nil {
		return nil, err
	}

	index, err := parsePageTemplate("index.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		system:    system,
		index:     index,
		localizer: localizer,
		generator: generator,
	}, nil
}

func parsePageTemplate(name string) (*template.Template, error) {
	src, err := resources.GetPageTemplate(name)
	if err != nil {
		return nil, err
	}

	t, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t, nil
}

// RenderSystemPage writes the page for one system: title, game count, the
// A-Z navigation bar and the games grouped under letter headers.
func (r *Renderer) RenderSystemPage(w io.Writer, system catalog.System) error {
	title := r.localizer.Localize(&goi18n.Message{ID: "system_page_title", Other: "{{.System}} ROMs"}, map[string]interface{}{"System": system.Name})

	data := systemPageData{
		Lang:       r.localizer.Language(),
		Generator:  r.generator,
		Title:      title,
		DataSystem: strings.ToLower(system.Name),
		CountLine: r.localizer.LocalizeCount(&goi18n.Message{
			ID:    "system_page_count",
			One:   "{{.Count}} games listed",
			Other: "{{.Count}} games listed",
		}, len(system.Games), nil),
		Nav:       lettergroup.NavLetters(),
		Entries:   lettergroup.Group(system.Games),
		BackLabel: r.localizer.Localize(&goi18n.Message{ID: "system_page_back", Other: "← Back to home"}, nil),
	}

	if err := r.system.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page for %s: %w", system.Name, err)
	}
	return nil
}

// RenderIndexPage writes the landing page linking every system. qrCode is the
// relative path of the QR image, or empty to leave it out.
func (r *Renderer) RenderIndexPage(w io.Writer, cat *catalog.Catalog, qrCode string) error {
	data := indexPageData{
		Lang:      r.localizer.Language(),
		Generator: r.generator,
		Title:     r.localizer.Localize(&goi18n.Message{ID: "index_page_title", Other: "EmuScan"}, nil),
		Heading:   r.localizer.Localize(&goi18n.Message{ID: "index_page_heading", Other: "Your ROM Library"}, nil),
		Links: lo.Map(cat.Names(), func(name string, _ int) indexLink {
			games, _ := cat.Games(name)
			return indexLink{Href: pageHref(catalog.System{Name: name}.PageName()), Name: name, Count: len(games)}
		}),
		QRCode:   qrCode,
		QRAlt:    r.localizer.Localize(&goi18n.Message{ID: "index_page_qr_alt", Other: "Scan to open this library"}, nil),
		MadeWith: r.localizer.Localize(&goi18n.Message{ID: "index_page_made_with", Other: "Made with ❤️ by"}, nil),
	}

	if err := r.index.Execute(w, data); err != nil {
		return fmt.Errorf("rendering index page: %w", err)
	}
	return nil
}

// pageHref marks a page name as a trusted relative URL. A colon before the
// first slash would read as a scheme, so such names get a ./ prefix.
func pageHref(page string) template.URL {
	if i := strings.IndexByte(page, ':'); i >= 0 && !strings.Contains(page[:i], "/") {
		return template.URL("./" + page)
	}
	return template.URL(page)
}
