package i18n

import (
	"emuscan/resources"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Localizer struct {
	localizer *goi18n.Localizer
	tag       language.Tag
	logger    *slog.Logger
}

// New builds a Localizer for lang from the given message files. Messages
// missing from every file fall back to the default text at the call site.
func New(lang string, files []resources.MessageFile, logger *slog.Logger) (*Localizer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, f := range files {
		if _, err := bundle.ParseMessageFileBytes(f.Content, f.Name); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", f.Name, err)
		}
	}

	return &Localizer{
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
		logger:    logger,
	}, nil
}

// NewDefault loads the embedded locale files.
func NewDefault(lang string, logger *slog.Logger) (*Localizer, error) {
	files, err := resources.GetLocaleMessageFiles()
	if err != nil {
		return nil, err
	}
	return New(lang, files, logger)
}

func (l *Localizer) Localize(msg *goi18n.Message, data map[string]interface{}) string {
	return l.localize(&goi18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
}

// LocalizeCount selects the plural form for count. count is also available to
// the template as .Count.
func (l *Localizer) LocalizeCount(msg *goi18n.Message, count int, data map[string]interface{}) string {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Count"] = count
	return l.localize(&goi18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data, PluralCount: count})
}

func (l *Localizer) localize(lc *goi18n.LocalizeConfig) string {
	text, err := l.localizer.Localize(lc)
	if err != nil {
		// go-i18n still returns the best match (usually the default message).
		l.logger.Debug("Localization fallback", "id", lc.DefaultMessage.ID, "language", l.tag.String(), "error", err)
	}
	return text
}

// Language is the BCP 47 tag used for the lang attribute of generated pages.
func (l *Localizer) Language() string {
	return l.tag.String()
}
