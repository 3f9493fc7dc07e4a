package models

// RunStatus es el estado terminal de una ejecución.
type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// RunResult es el resultado explícito de una ejecución completa: o bien terminó
// con una interpretación publicada, o bien falló con el mensaje de error original.
type RunResult struct {
	Status         RunStatus
	Interpretation string
	FailureMessage string
}

// Succeeded construye un resultado exitoso con la interpretación publicada.
func Succeeded(interpretation string) RunResult {
	return RunResult{
		Status:         RunSucceeded,
		Interpretation: interpretation,
	}
}

// Failed construye un resultado fallido conservando el mensaje de error sin modificar.
func Failed(message string) RunResult {
	return RunResult{
		Status:         RunFailed,
		FailureMessage: message,
	}
}

// Succeeded indica si la ejecución terminó correctamente.
func (r RunResult) Succeeded() bool {
	return r.Status == RunSucceeded
}
