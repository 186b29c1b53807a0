package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/config"
	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/sony/gobreaker/v2"
)

var errServer = errors.New("ollama server error")

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Client - клиент Ollama /api/generate за circuit breaker.
type Client struct {
	logger  *slog.Logger
	baseURL string
	model   string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func New(logger *slog.Logger, cfg config.Ollama) *Client {
	logger = logger.With(slog.String("client", "ollama"))

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "ollama",
		MaxRequests: 1,
		Timeout:     cfg.OpenInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.MaxFailures)
		},
		// Ответы 4xx и отмена запроса клиентом не считаются отказом сервера.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || (!errors.Is(err, errServer) && !isTransport(err))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: breaker,
	}
}

func (c *Client) generate(ctx context.Context, prompt string, jsonFormat bool) (string, error) {
	req := generateRequest{Model: c.model, Prompt: prompt}
	if jsonFormat {
		req.Format = "json"
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.post(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %v", entities.ErrUnavailable, err)
	}
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}
	return strings.TrimSpace(resp.Response), nil
}

func (c *Client) post(ctx context.Context, payload generateRequest) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, &transportError{err: err}
	}

	switch {
	case res.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", errServer, res.StatusCode)
	case res.StatusCode >= 400:
		return nil, fmt.Errorf("ollama rejected request: status %d: %s", res.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return "ollama transport: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func isTransport(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}
