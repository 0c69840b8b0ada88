package site

import (
	"emuscan/internal/catalog"
	"emuscan/internal/sitemap"
	"fmt"
	"net/url"
)

const (
	SitemapFile = "sitemap.xml"
	QRCodeFile  = "qr.png"

	qrCodeScale  = 8
	qrCodeBorder = 4
)

// RenderSitemap lists the index page and every system page under baseURL.
func RenderSitemap(baseURL string, systems []catalog.System) ([]byte, error) {
	pages := []string{IndexPage}
	for _, s := range systems {
		pages = append(pages, s.PageName())
	}

	sm := sitemap.New()
	for _, page := range pages {
		loc, err := url.JoinPath(baseURL, page)
		if err != nil {
			return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
		}
		sm.AddURL(loc)
	}

	return sm.Bytes()
}
