package resources

import (
	"embed"
	"fmt"
)

//go:embed locales/*.toml templates/*.html style.css
var embeddedFiles embed.FS

type LocaleFile struct {
	Name string
	Path string
}

// MessageFile is the raw content of a locale file, keyed by the file name
// go-i18n uses to detect the language.
type MessageFile struct {
	Name    string
	Content []byte
}

var localeFiles = []LocaleFile{
	{Name: "active.en.toml", Path: "locales/active.en.toml"},
	{Name: "active.es.toml", Path: "locales/active.es.toml"},
	{Name: "active.fr.toml", Path: "locales/active.fr.toml"},
}

func GetLocaleMessageFiles() ([]MessageFile, error) {
	var messageFiles []MessageFile

	for _, localeFile := range localeFiles {
		content, err := embeddedFiles.ReadFile(localeFile.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded locale file %s: %w", localeFile.Path, err)
		}

		messageFiles = append(messageFiles, MessageFile{
			Name:    localeFile.Name,
			Content: content,
		})
	}

	return messageFiles, nil
}

// GetStylesheetTemplate returns the stylesheet source. The font import and
// font family are template fields filled in at write time.
func GetStylesheetTemplate() (string, error) {
	data, err := embeddedFiles.ReadFile("style.css")
	if err != nil {
		return "", fmt.Errorf("failed to read embedded stylesheet: %w", err)
	}
	return string(data), nil
}

func GetPageTemplate(name string) (string, error) {
	data, err := embeddedFiles.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %s: %w", name, err)
	}
	return string(data), nil
}
