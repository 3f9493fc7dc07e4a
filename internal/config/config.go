package config

// Nombres de los inputs que declara la action en su action.yml.
const (
	InputGitHubToken    = "github_token"
	InputDeepSeekAPIKey = "deepseek_api_key"
	InputLogContent     = "log_content"
	InputLanguage       = "lang"
)

const defaultLang = "en"

type Config struct {
	GitHubToken    string
	DeepSeekAPIKey string
	LogContent     string
	Language       string
}

// InputSource resuelve inputs de la action por nombre. El segundo valor en false
// significa input ausente, distinto de un input presente pero vacío.
type InputSource interface {
	Lookup(name string) (string, bool)
}

// Resolve lee los inputs de la action. Un input ausente se resuelve como cadena
// vacía (un token vacío recién falla contra el servicio que lo consume); la
// distinción ausente/vacío queda disponible para quien use Lookup directamente.
func Resolve(src InputSource) *Config {
	cfg := &Config{
		GitHubToken:    valueOrEmpty(src, InputGitHubToken),
		DeepSeekAPIKey: valueOrEmpty(src, InputDeepSeekAPIKey),
		LogContent:     valueOrEmpty(src, InputLogContent),
		Language:       defaultLang,
	}

	if lang, ok := src.Lookup(InputLanguage); ok && lang != "" {
		cfg.Language = lang
	}

	return cfg
}

func valueOrEmpty(src InputSource, name string) string {
	value, _ := src.Lookup(name)
	return value
}
