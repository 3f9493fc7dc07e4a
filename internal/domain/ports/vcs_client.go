package ports

import "context"

// VCSClient define los métodos comunes para interactuar con las APIs de los sistemas de control de versiones.
type VCSClient interface {
	// CreateComment crea un comentario en el issue/PR indicado del repositorio configurado.
	CreateComment(ctx context.Context, prNumber int, body string) error
}
