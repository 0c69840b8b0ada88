package site

import (
	"bytes"
	"emuscan/internal/catalog"
	"emuscan/internal/i18n"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gameEntryRegex  = regexp.MustCompile(`<div class="game">([^<]*)</div>`)
	letterHeadRegex = regexp.MustCompile(`<h2 id="([^"]*)">([^<]*)</h2>`)
	navLinkRegex    = regexp.MustCompile(`<a href="#([^"]*)">`)
	indexEntryRegex = regexp.MustCompile(`<li><a href="([^"]*)">([^<]*)</a> \((\d+)\)</li>`)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	localizer, err := i18n.NewDefault("en", discardLogger())
	require.NoError(t, err)
	r, err := NewRenderer(localizer, "EmuScan test")
	require.NoError(t, err)
	return r
}

func renderSystem(t *testing.T, system catalog.System) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).RenderSystemPage(&buf, system))
	return buf.String()
}

func submatches(re *regexp.Regexp, s string, group int) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out = append(out, m[group])
	}
	return out
}

func TestRenderSystemPage(t *testing.T) {
	games := []string{"7th Guest", "asteroids", "Adventure", "Battlezone", "berzerk", "Combat"}
	page := renderSystem(t, catalog.System{Name: "Atari 2600", Games: games})

	assert.Contains(t, page, "<title>Atari 2600 ROMs</title>")
	assert.Contains(t, page, "<h1>Atari 2600 ROMs</h1>")
	assert.Contains(t, page, "<p>6 games listed</p>")
	assert.Contains(t, page, `data-system="atari 2600"`)
	assert.Contains(t, page, `<a href="index.html">← Back to home</a>`)
	assert.Contains(t, page, `<meta name="generator" content="EmuScan test">`)

	assert.Equal(t, games, submatches(gameEntryRegex, page, 1))
	assert.Equal(t, []string{"7", "A", "B", "C"}, submatches(letterHeadRegex, page, 1))
	assert.Equal(t, []string{"7", "A", "B", "C"}, submatches(letterHeadRegex, page, 2))
}

func TestRenderSystemPageHeaderPrecedesItsRun(t *testing.T) {
	page := renderSystem(t, catalog.System{Name: "NES", Games: []string{"mario", "Metroid", "Zelda"}})

	m := strings.Index(page, `<h2 id="M">M</h2>`)
	mario := strings.Index(page, `<div class="game">mario</div>`)
	metroid := strings.Index(page, `<div class="game">Metroid</div>`)
	z := strings.Index(page, `<h2 id="Z">Z</h2>`)
	zelda := strings.Index(page, `<div class="game">Zelda</div>`)

	require.True(t, m >= 0 && z >= 0)
	assert.Less(t, m, mario)
	assert.Less(t, mario, metroid)
	assert.Less(t, metroid, z)
	assert.Less(t, z, zelda)
	assert.Equal(t, 1, strings.Count(page, `<h2 id="M">`))
}

func TestRenderSystemPageNavBarIsAlwaysAToZ(t *testing.T) {
	tests := []struct {
		desc  string
		games []string
	}{
		{"empty system", nil},
		{"one letter", []string{"Tetris"}},
		{"digit only", []string{"1942"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			page := renderSystem(t, catalog.System{Name: "Game Boy", Games: tt.games})

			nav := submatches(navLinkRegex, page, 1)
			require.Len(t, nav, 26)
			assert.Equal(t, "A", nav[0])
			assert.Equal(t, "Z", nav[25])
		})
	}
}

func TestRenderSystemPageNonLetterGroup(t *testing.T) {
	page := renderSystem(t, catalog.System{Name: "PC", Games: []string{"7th Guest"}})

	assert.Contains(t, page, `<h2 id="7">7</h2>`)
	assert.NotContains(t, page, `href="#7"`)
}

func TestRenderSystemPageEmpty(t *testing.T) {
	page := renderSystem(t, catalog.System{Name: "Virtual Boy", Games: []string{}})

	assert.Contains(t, page, "<p>0 games listed</p>")
	assert.Empty(t, submatches(gameEntryRegex, page, 1))
	assert.Empty(t, submatches(letterHeadRegex, page, 1))
}

func TestRenderSystemPageEscapesNames(t *testing.T) {
	page := renderSystem(t, catalog.System{Name: "Tom & Jerry", Games: []string{"<script>alert(1)</script>"}})

	assert.Contains(t, page, "Tom &amp; Jerry ROMs")
	assert.NotContains(t, page, "<script>")
}

func TestRenderIndexPage(t *testing.T) {
	systems := []catalog.System{
		{Name: "Game Boy", Games: []string{"Kirby's Dream Land", "Tetris"}},
		{Name: "NES", Games: []string{"Contra"}},
		{Name: "Virtual Boy", Games: []string{}},
	}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).RenderIndexPage(&buf, catalog.New(systems), ""))
	page := buf.String()

	assert.Contains(t, page, `<a href="game-boy.html">Game Boy</a> (2)`)
	assert.Contains(t, page, "<title>EmuScan</title>")
	assert.Contains(t, page, "<h1>Your ROM Library</h1>")
	assert.Contains(t, page, `Made with ❤️ by <a href="https://github.com/Zakk-Fast" target="_blank">Zakk Fast</a>`)
	assert.NotContains(t, page, `class="qr"`)

	entries := indexEntryRegex.FindAllStringSubmatch(page, -1)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"game-boy.html", "Game Boy", "2"}, entries[0][1:])
	assert.Equal(t, []string{"nes.html", "NES", "1"}, entries[1][1:])
	assert.Equal(t, []string{"virtual-boy.html", "Virtual Boy", "0"}, entries[2][1:])
}

func TestRenderIndexPageNonASCIIHrefDecodesToPageName(t *testing.T) {
	system := catalog.System{Name: "Pokémon Mini", Games: []string{"Pokémon Pinball Mini"}}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).RenderIndexPage(&buf, catalog.New([]catalog.System{system}), ""))

	entries := indexEntryRegex.FindAllStringSubmatch(buf.String(), -1)
	require.Len(t, entries, 1)

	href := entries[0][1]
	assert.Equal(t, "pok%c3%a9mon-mini.html", href)

	decoded, err := url.PathUnescape(href)
	require.NoError(t, err)
	assert.Equal(t, system.PageName(), decoded)
	assert.Equal(t, "Pokémon Mini", entries[0][2])
}

func TestRenderIndexPageWithQRCode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).RenderIndexPage(&buf, catalog.New(nil), QRCodeFile))

	assert.Contains(t, buf.String(), `<img class="qr" src="qr.png" alt="Scan to open this library">`)
}

func TestRenderLocalizedPages(t *testing.T) {
	localizer, err := i18n.NewDefault("fr", discardLogger())
	require.NoError(t, err)
	r, err := NewRenderer(localizer, "EmuScan test")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderSystemPage(&buf, catalog.System{Name: "NES", Games: []string{"Contra", "Zelda"}}))

	assert.Contains(t, buf.String(), `<html lang="fr">`)
	assert.Contains(t, buf.String(), "<p>2 jeux</p>")
}

func TestPageHref(t *testing.T) {
	assert.Equal(t, "game-boy.html", string(pageHref("game-boy.html")))
	assert.Equal(t, "./sega:-cd.html", string(pageHref("sega:-cd.html")))
}
