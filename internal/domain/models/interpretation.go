package models

// Roles válidos para los mensajes enviados al servicio de completions.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type (
	// ChatMessage representa un mensaje del payload de chat enviado al servicio de completions.
	ChatMessage struct {
		Role    string
		Content string
	}

	// Interpretation es la interpretación generada por el modelo para un log de CI.
	Interpretation struct {
		Text string
	}

	// RunContext contiene el contexto de invocación provisto por la plataforma de CI.
	// PRNumber en nil significa que la ejecución no está asociada a ningún Pull Request.
	RunContext struct {
		Owner    string
		Repo     string
		PRNumber *int
	}
)

// HasPR indica si la ejecución está asociada a un Pull Request.
func (rc RunContext) HasPR() bool {
	return rc.PRNumber != nil
}
