package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// InterpretationError indica que el servicio de completions falló al interpretar el log
type InterpretationError struct {
	Provider string
	Err      error
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("el proveedor '%s' no pudo interpretar el log: %v", e.Provider, e.Err)
}

func (e *InterpretationError) Unwrap() error {
	return e.Err
}

// NewInterpretationError crea un nuevo error de interpretación
func NewInterpretationError(provider string, err error) *InterpretationError {
	return &InterpretationError{Provider: provider, Err: err}
}

// PublishError indica que no se pudo publicar la interpretación en el PR
type PublishError struct {
	PRNumber int
	Err      error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("no se pudo publicar el comentario en el PR %d: %v", e.PRNumber, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// NewPublishError crea un nuevo error de publicación
func NewPublishError(prNumber int, err error) *PublishError {
	return &PublishError{PRNumber: prNumber, Err: err}
}
