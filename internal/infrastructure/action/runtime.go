package action

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
	"github.com/Tomas-vilte/MateLogs/internal/domain/ports"
)

var _ ports.ActionReporter = (*Runtime)(nil)

// Runtime habla el protocolo del runner de GitHub Actions: inputs como variables
// INPUT_*, outputs anexados al archivo GITHUB_OUTPUT y señales como comandos
// ::warning:: / ::notice:: / ::error:: en la salida estándar.
type Runtime struct {
	lookupEnv func(string) (string, bool)
	out       io.Writer
}

func NewRuntime() *Runtime {
	return &Runtime{
		lookupEnv: os.LookupEnv,
		out:       os.Stdout,
	}
}

// NewRuntimeWithEnv permite inyectar el entorno y la salida en los tests.
func NewRuntimeWithEnv(lookupEnv func(string) (string, bool), out io.Writer) *Runtime {
	return &Runtime{
		lookupEnv: lookupEnv,
		out:       out,
	}
}

func (r *Runtime) getenv(key string) string {
	value, _ := r.lookupEnv(key)
	return value
}

// Lookup resuelve un input de la action. El runner expone el input "github_token"
// como INPUT_GITHUB_TOKEN; los espacios del nombre se reemplazan por guiones bajos.
// Una variable definida pero vacía cuenta como presente.
func (r *Runtime) Lookup(name string) (string, bool) {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return r.lookupEnv(key)
}

// SetOutput anexa name=value al archivo GITHUB_OUTPUT. Valores multilínea usan
// la sintaxis heredoc del runner. Sin GITHUB_OUTPUT (ejecución local) no hace nada.
func (r *Runtime) SetOutput(name, value string) error {
	path := r.getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("no se pudo abrir el archivo de outputs: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var line string
	if strings.ContainsAny(value, "\r\n") {
		delimiter := "ghadelimiter_" + name
		line = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	} else {
		line = fmt.Sprintf("%s=%s\n", name, value)
	}

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("no se pudo escribir el output '%s': %w", name, err)
	}
	return nil
}

func (r *Runtime) Warning(message string) {
	r.command("warning", message)
}

func (r *Runtime) Notice(message string) {
	r.command("notice", message)
}

func (r *Runtime) Error(message string) {
	r.command("error", message)
}

func (r *Runtime) command(name, message string) {
	_, _ = fmt.Fprintf(r.out, "::%s::%s\n", name, escapeData(message))
}

// escapeData escapa el mensaje según el formato de workflow commands del runner.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// eventPayload cubre las formas del evento que traen un número de PR:
// pull_request, issue_comment sobre un PR y workflow_dispatch con "number".
type eventPayload struct {
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue struct {
		Number      int `json:"number"`
		PullRequest *struct {
			URL string `json:"url"`
		} `json:"pull_request"`
	} `json:"issue"`
	Number int `json:"number"`
}

// RunContext arma el contexto de invocación a partir de GITHUB_REPOSITORY y del
// payload del evento en GITHUB_EVENT_PATH. Sin PR asociado, PRNumber queda en nil.
func (r *Runtime) RunContext() (models.RunContext, error) {
	runCtx := models.RunContext{}

	repository := r.getenv("GITHUB_REPOSITORY")
	if repository != "" {
		owner, repo, found := strings.Cut(repository, "/")
		if !found || owner == "" || repo == "" {
			return models.RunContext{}, fmt.Errorf("GITHUB_REPOSITORY inválido: %q", repository)
		}
		runCtx.Owner = owner
		runCtx.Repo = repo
	}

	eventPath := r.getenv("GITHUB_EVENT_PATH")
	if eventPath == "" {
		return runCtx, nil
	}

	data, err := os.ReadFile(eventPath)
	if err != nil {
		return models.RunContext{}, fmt.Errorf("no se pudo leer el payload del evento: %w", err)
	}

	var event eventPayload
	if err := json.Unmarshal(data, &event); err != nil {
		return models.RunContext{}, fmt.Errorf("no se pudo decodificar el payload del evento: %w", err)
	}

	if number := prNumberFrom(event); number > 0 {
		runCtx.PRNumber = &number
	}
	return runCtx, nil
}

func prNumberFrom(event eventPayload) int {
	if event.PullRequest.Number > 0 {
		return event.PullRequest.Number
	}
	if event.Issue.PullRequest != nil && event.Issue.Number > 0 {
		return event.Issue.Number
	}
	return event.Number
}
