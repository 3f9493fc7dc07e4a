package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
	"github.com/Tomas-vilte/MateLogs/internal/domain/ports"
	"github.com/Tomas-vilte/MateLogs/internal/i18n"
)

// Textos fijos del protocolo del paso. Los workflows y los tests de integración
// matchean sobre estas frases en inglés, no pasan por i18n.
const (
	noLogWarning    = "No log content was provided for analysis"
	defaultAnalysis = "No log content was provided. Please check the build logs manually."
	noPRMessage     = "No associated PR was found"

	// OutputName es el nombre del output del paso que consume el resto del workflow.
	OutputName = "interpretation"

	commentHeading = "## 🤖 Log Interpretation"

	// maxLogRunes limita lo que se manda al modelo; los logs de CI pueden ser
	// enormes y el servicio de completions corta mucho antes. Se conserva la
	// cola, que es donde suele estar el error.
	maxLogRunes = 120000
)

var _ ports.InterpretationService = (*InterpretationService)(nil)

type InterpretationService struct {
	interpreter ports.LogInterpreter
	vcsClient   ports.VCSClient
	reporter    ports.ActionReporter
	stdout      io.Writer
	trans       *i18n.Translations
}

func NewInterpretationService(
	interpreter ports.LogInterpreter,
	vcsClient ports.VCSClient,
	reporter ports.ActionReporter,
	stdout io.Writer,
	trans *i18n.Translations,
) *InterpretationService {
	return &InterpretationService{
		interpreter: interpreter,
		vcsClient:   vcsClient,
		reporter:    reporter,
		stdout:      stdout,
		trans:       trans,
	}
}

// Run ejecuta el flujo completo de una invocación: normaliza el log, lo
// interpreta y publica el resultado. Cualquier falla corta el run y el mensaje
// de error original viaja sin modificarse en el resultado.
func (s *InterpretationService) Run(ctx context.Context, logContent string, runCtx models.RunContext) models.RunResult {
	normalized := s.normalizeLog(logContent)

	interpretation, err := s.interpreter.InterpretLog(ctx, normalized)
	if err != nil {
		return models.Failed(err.Error())
	}

	if runCtx.HasPR() {
		body := fmt.Sprintf("%s\n\n%s", commentHeading, interpretation.Text)
		if err := s.vcsClient.CreateComment(ctx, *runCtx.PRNumber, body); err != nil {
			return models.Failed(err.Error())
		}
	} else {
		_, _ = fmt.Fprintf(s.stdout, "%s:\n%s\n", noPRMessage, interpretation.Text)
	}

	if err := s.reporter.SetOutput(OutputName, interpretation.Text); err != nil {
		return models.Failed(err.Error())
	}

	return models.Succeeded(interpretation.Text)
}

// normalizeLog garantiza que el mensaje de usuario nunca viaje vacío: un log en
// blanco se reemplaza por el análisis por defecto y dispara una única advertencia.
// El contenido no vacío pasa sin modificarse, salvo que exceda el límite de tamaño.
func (s *InterpretationService) normalizeLog(logContent string) string {
	if strings.TrimSpace(logContent) == "" {
		s.reporter.Warning(noLogWarning)
		return defaultAnalysis
	}

	if runes := []rune(logContent); len(runes) > maxLogRunes {
		s.reporter.Notice(s.trans.GetMessage("ui.log_truncated", 0, map[string]interface{}{
			"Limit": maxLogRunes,
		}))
		return string(runes[len(runes)-maxLogRunes:])
	}

	return logContent
}
