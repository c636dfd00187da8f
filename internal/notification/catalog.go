package notification

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog renders notification templates from the embedded message files
type Catalog struct {
	bundle   *i18n.Bundle
	language string
}

// NewCatalog loads every embedded locale. English is the fallback for
// languages or messages that are missing.
func NewCatalog(preferred string) (*Catalog, error) {
	if _, err := language.Parse(preferred); err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("invalid notification language %q: %v", preferred, err))
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, file := range files {
		data, err := localeFS.ReadFile(path.Join("locales", file.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", file.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, file.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", file.Name(), err)
		}
	}

	return &Catalog{bundle: bundle, language: preferred}, nil
}

// Rendered is a localized title and body
type Rendered struct {
	Title string
	Body  string
}

// Render localizes template with data in the catalog's language
func (c *Catalog) Render(template models.NotificationTemplate, data map[string]interface{}) (Rendered, error) {
	localizer := i18n.NewLocalizer(c.bundle, c.language, language.English.String())

	title, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(template) + "_title",
		TemplateData: data,
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("render %s title: %w", template, err)
	}

	body, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(template) + "_body",
		TemplateData: data,
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("render %s body: %w", template, err)
	}

	return Rendered{Title: title, Body: body}, nil
}
