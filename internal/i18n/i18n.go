package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations crea el catálogo de mensajes. Los mensajes en inglés y español
// van embebidos en el binario; localesPath permite sumar catálogos adicionales
// desde disco (vacío para usar solo los embebidos).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(spanishMessages), "active.es.toml")

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Interpret CI build logs with DeepSeek and publish the result on the pull request"

	[interpret_command_usage]
	other = "Interpret a build log and publish the interpretation"

	[log_file_flag_usage]
	other = "Read the log content from a file instead of the action input"

	[ui.interpreting_log]
	other = "Asking {{.Model}} to interpret the build log..."

	[ui.comment_posted]
	other = "Interpretation posted as a comment on PR #{{.Number}}"

	[ui.output_published]
	other = "Interpretation published as the '{{.Name}}' step output"

	[ui.log_truncated]
	other = "Log content exceeded {{.Limit}} characters, sending only the tail"

	[error.config_load]
	other = "Error resolving the action inputs"

	[error.translations_load]
	other = "Error loading translations"

	[error.run_context]
	other = "Error resolving the run context"

	[error.log_file_read]
	other = "Error reading the log file"
	`

var spanishMessages = `
	[app_usage]
	other = "Interpretá logs de CI con DeepSeek y publicá el resultado en el pull request"

	[interpret_command_usage]
	other = "Interpretá un log de build y publicá la interpretación"

	[log_file_flag_usage]
	other = "Leé el contenido del log desde un archivo en vez del input de la action"

	[ui.interpreting_log]
	other = "Pidiéndole a {{.Model}} que interprete el log del build..."

	[ui.comment_posted]
	other = "Interpretación publicada como comentario en el PR #{{.Number}}"

	[ui.output_published]
	other = "Interpretación publicada como output '{{.Name}}' del paso"

	[ui.log_truncated]
	other = "El log superó los {{.Limit}} caracteres, se envía solo la cola"

	[error.config_load]
	other = "Error al resolver los inputs de la action"

	[error.translations_load]
	other = "Error al cargar las traducciones"

	[error.run_context]
	other = "Error al resolver el contexto de ejecución"

	[error.log_file_read]
	other = "Error al leer el archivo de log"
	`
