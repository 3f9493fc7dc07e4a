package ports

// ActionReporter define la señalización hacia el runner de CI que hospeda la ejecución.
type ActionReporter interface {
	// SetOutput publica un valor de salida con nombre, consumible por pasos posteriores del workflow.
	SetOutput(name, value string) error
	// Warning emite una advertencia visible en el log del workflow.
	Warning(message string)
	// Notice emite una nota informativa visible en el log del workflow.
	Notice(message string)
}
