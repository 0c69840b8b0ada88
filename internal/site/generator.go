package site

import (
	"bytes"
	"emuscan/internal"
	"emuscan/internal/catalog"
	"emuscan/internal/fileutil"
	"emuscan/internal/i18n"
	"emuscan/internal/imageutil"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/atomic"
)

type Report struct {
	OutputDirectory string
	Systems         int
	Games           int
	FilesWritten    int64
	BytesWritten    int64
}

// Generator runs the whole build: stylesheet, scan, one page per system,
// index page, and the sitemap/QR extras when a base URL is configured.
// Every file is overwritten; nothing from a previous run is read back.
type Generator struct {
	fs       afero.Fs
	config   *internal.Config
	renderer *Renderer
	logger   *slog.Logger

	filesWritten *atomic.Int64
	bytesWritten *atomic.Int64
}

func NewGenerator(fs afero.Fs, config *internal.Config, localizer *i18n.Localizer, generatorName string, logger *slog.Logger) (*Generator, error) {
	renderer, err := NewRenderer(localizer, generatorName)
	if err != nil {
		return nil, err
	}

	return &Generator{
		fs:           fs,
		config:       config,
		renderer:     renderer,
		logger:       logger,
		filesWritten: atomic.NewInt64(0),
		bytesWritten: atomic.NewInt64(0),
	}, nil
}

func (g *Generator) Run() (*Report, error) {
	if err := g.WriteStylesheet(); err != nil {
		return nil, err
	}

	g.logger.Debug("Scanning ROM directory", "path", g.config.RomDirectory)
	cat, err := catalog.Scan(g.fs, g.config.RomDirectory, g.logger)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Scanned ROM directory", "systems", cat.Names(), "games", cat.TotalGames())

	for _, system := range cat.Systems() {
		if err := g.WriteSystemPage(system); err != nil {
			return nil, err
		}
	}

	qrCode := ""
	if g.config.BaseURL != "" {
		if err := g.WriteQRCode(); err != nil {
			return nil, err
		}
		qrCode = QRCodeFile
	}

	if err := g.WriteIndexPage(cat, qrCode); err != nil {
		return nil, err
	}

	if g.config.BaseURL != "" {
		if err := g.WriteSitemap(cat); err != nil {
			return nil, err
		}
	}

	return &Report{
		OutputDirectory: g.config.OutputDirectory,
		Systems:         cat.Len(),
		Games:           cat.TotalGames(),
		FilesWritten:    g.filesWritten.Load(),
		BytesWritten:    g.bytesWritten.Load(),
	}, nil
}

func (g *Generator) WriteStylesheet() error {
	css, err := RenderStylesheet(g.config.FontFamily)
	if err != nil {
		return err
	}
	return g.write(StylesheetFile, css)
}

func (g *Generator) WriteSystemPage(system catalog.System) error {
	var buf bytes.Buffer
	if err := g.renderer.RenderSystemPage(&buf, system); err != nil {
		return err
	}
	return g.write(system.PageName(), buf.Bytes())
}

func (g *Generator) WriteIndexPage(cat *catalog.Catalog, qrCode string) error {
	var buf bytes.Buffer
	if err := g.renderer.RenderIndexPage(&buf, cat, qrCode); err != nil {
		return err
	}
	return g.write(IndexPage, buf.Bytes())
}

func (g *Generator) WriteSitemap(cat *catalog.Catalog) error {
	data, err := RenderSitemap(g.config.BaseURL, cat.Systems())
	if err != nil {
		return err
	}
	return g.write(SitemapFile, data)
}

// WriteQRCode encodes the base URL. The QR library only writes to host
// paths, so the image goes through a temp file before landing in the output
// filesystem.
func (g *Generator) WriteQRCode() error {
	tmp, err := imageutil.CreateTempQRCode(g.config.BaseURL, qrCodeScale, qrCodeBorder)
	if err != nil {
		return fmt.Errorf("failed to create QR code: %w", err)
	}
	defer os.Remove(tmp)

	dest := filepath.Join(g.config.OutputDirectory, QRCodeFile)
	n, err := fileutil.CopyFromOS(g.fs, tmp, dest)
	if err != nil {
		return err
	}

	g.record(dest, n)
	return nil
}

func (g *Generator) write(name string, data []byte) error {
	path := filepath.Join(g.config.OutputDirectory, name)
	if err := fileutil.WriteFile(g.fs, path, data); err != nil {
		return err
	}

	g.record(path, int64(len(data)))
	return nil
}

func (g *Generator) record(path string, size int64) {
	g.filesWritten.Inc()
	g.bytesWritten.Add(size)
	g.logger.Debug("Wrote file", "path", path, "bytes", size)
}
