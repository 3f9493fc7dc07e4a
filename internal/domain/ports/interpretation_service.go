package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
)

// InterpretationService define la interfaz del servicio que ejecuta el flujo completo:
// normalizar el log, interpretarlo y publicar el resultado.
type InterpretationService interface {
	Run(ctx context.Context, logContent string, runCtx models.RunContext) models.RunResult
}
