package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
)

// LogInterpreter define la interfaz para el servicio que interpreta logs de CI
// mediante un modelo de lenguaje.
type LogInterpreter interface {
	// InterpretLog envía el contenido del log al modelo y retorna la interpretación generada.
	InterpretLog(ctx context.Context, logContent string) (models.Interpretation, error)
}
