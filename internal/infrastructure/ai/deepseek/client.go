package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domainerrors "github.com/Tomas-vilte/MateLogs/internal/domain/errors"
	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
	"github.com/Tomas-vilte/MateLogs/internal/domain/ports"
	"github.com/Tomas-vilte/MateLogs/internal/infrastructure/httpclient"
)

const (
	// DefaultBaseURL es el endpoint fijo del servicio de completions de DeepSeek.
	DefaultBaseURL = "https://api.deepseek.com"
	// DefaultModel es el identificador fijo del modelo de chat.
	DefaultModel = "deepseek-chat"

	completionsPath = "/chat/completions"
	requestTimeout  = 120 * time.Second
)

// systemPrompt es la instrucción fija que define el rol del modelo. Los tests y
// los consumidores del output dependen del texto en inglés, no se traduce.
const systemPrompt = "You are an expert in interpreting computer system logs. " +
	"Analyze the provided CI build log, explain what happened, identify the most " +
	"likely cause of any failure, and suggest concrete next steps. Be concise and actionable."

var _ ports.LogInterpreter = (*Client)(nil)

// Client habla con la API de chat completions de DeepSeek. La API es compatible
// con el formato de OpenAI, así que el payload son structs locales al paquete.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient httpclient.HTTPClient
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithHTTP permite inyectar el transporte HTTP y el endpoint en los tests.
func NewClientWithHTTP(apiKey, baseURL string, httpClient httpclient.HTTPClient) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ModelName retorna el identificador del modelo configurado.
func (c *Client) ModelName() string {
	return c.model
}

// InterpretLog envía el payload de dos mensajes (system fijo + log del usuario)
// y retorna el contenido del primer choice de la respuesta.
func (c *Client) InterpretLog(ctx context.Context, logContent string) (models.Interpretation, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: models.RoleSystem, Content: systemPrompt},
			{Role: models.RoleUser, Content: logContent},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return models.Interpretation{}, fmt.Errorf("error al serializar el request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return models.Interpretation{}, fmt.Errorf("error al crear el request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Interpretation{}, fmt.Errorf("error al llamar a DeepSeek: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Interpretation{}, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Interpretation{}, apiErrorFrom(resp.StatusCode, respBody)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return models.Interpretation{}, domainerrors.NewInterpretationError("deepseek",
			fmt.Errorf("respuesta inválida: %w", err))
	}

	if len(result.Choices) == 0 {
		return models.Interpretation{}, domainerrors.NewInterpretationError("deepseek",
			fmt.Errorf("la respuesta no trajo choices"))
	}

	return models.Interpretation{Text: result.Choices[0].Message.Content}, nil
}

// apiErrorFrom conserva el mensaje de error que devuelve la API; el mensaje
// original viaja hasta el estado final del run sin modificarse.
func apiErrorFrom(statusCode int, body []byte) error {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return fmt.Errorf("%s", payload.Error.Message)
	}
	return fmt.Errorf("DeepSeek respondió %d: %s", statusCode, string(body))
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
