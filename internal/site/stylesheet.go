package site

import (
	"bytes"
	"emuscan/resources"
	"fmt"
	"strings"
	"text/template"

	"github.com/sonh/qs"
)

type fontQuery struct {
	Family  string `qs:"family"`
	Display string `qs:"display"`
}

type stylesheetData struct {
	FontQuery  string
	FontFamily string
}

var cssStringReplacer = strings.NewReplacer(`'`, ``, `\`, ``, "\n", " ")

// RenderStylesheet fills the font import and font family into the embedded
// stylesheet.
func RenderStylesheet(fontFamily string) ([]byte, error) {
	src, err := resources.GetStylesheetTemplate()
	if err != nil {
		return nil, err
	}

	t, err := template.New(StylesheetFile).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet template: %w", err)
	}

	values, err := qs.NewEncoder().Values(fontQuery{Family: fontFamily, Display: "swap"})
	if err != nil {
		return nil, fmt.Errorf("failed to encode font query: %w", err)
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, stylesheetData{
		FontQuery:  values.Encode(),
		FontFamily: cssStringReplacer.Replace(fontFamily),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render stylesheet: %w", err)
	}

	return buf.Bytes(), nil
}
