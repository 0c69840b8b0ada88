package sitemap

import (
	"github.com/beevik/etree"
)

const (
	Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

	URLSetElement = "urlset"
	URLElement    = "url"
	LocElement    = "loc"
)

type Sitemap struct {
	document *etree.Document
}

func New() *Sitemap {
	return &Sitemap{
		document: emptySitemap(),
	}
}

func emptySitemap() *etree.Document {
	document := etree.NewDocument()
	document.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	document.CreateElement(URLSetElement).CreateAttr("xmlns", Namespace)
	return document
}

func (s *Sitemap) Contains(loc string) bool {
	for _, u := range s.urls() {
		element := u.FindElement(LocElement)
		if element != nil && element.Text() == loc {
			return true
		}
	}
	return false
}

// AddURL appends loc unless it is already listed.
func (s *Sitemap) AddURL(loc string) {
	if s.Contains(loc) {
		return
	}
	root := s.document.SelectElement(URLSetElement)
	root.CreateElement(URLElement).CreateElement(LocElement).SetText(loc)
}

func (s *Sitemap) Bytes() ([]byte, error) {
	s.document.Indent(2)
	return s.document.WriteToBytes()
}

func (s *Sitemap) urls() []*etree.Element {
	return s.document.SelectElement(URLSetElement).SelectElements(URLElement)
}
