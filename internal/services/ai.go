package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/consultdesk/backend/internal/config"
	"github.com/consultdesk/backend/pkg/logger"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/sashabaranov/go-openai"
)

// User-safe messages for the dispatch error taxonomy. Raw upstream error
// text is logged, never returned to the caller.
const (
	msgRateLimited     = "Rate limit exceeded. Please try again later."
	msgPaymentRequired = "Payment required. Please add credits to your AI workspace."
	msgGatewayError    = "The analysis service returned an error. Please try again."
	msgTransportError  = "Could not reach the analysis service. Please try again."
)

// AIService performs single synchronous chat-completion calls against the
// hosted gateway: fixed model, no retry, no streaming.
type AIService struct {
	cfg    *config.AIConfig
	client *openai.Client
}

func NewAIService(cfg *config.AIConfig) *AIService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &AIService{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// Complete sends a system+user prompt pair to the gateway and returns the
// first choice's message content. An absent completion yields fallback
// rather than an error. The call carries an explicit timeout so an
// unresponsive gateway cannot pin the request forever.
func (s *AIService) Complete(ctx context.Context, systemPrompt, userPrompt, fallback string) (string, error) {
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Infof("[AI] Dispatching completion: model=%s, system=%d chars, user=%d chars",
		s.cfg.Model, len(systemPrompt), len(userPrompt))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("[AI] gateway call failed")
		return "", classifyDispatchError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Warn().Msg("[AI] gateway returned an empty completion")
		return fallback, nil
	}

	content := resp.Choices[0].Message.Content
	logger.Infof("[AI] Completion received: %d chars", len(content))
	return content, nil
}

// classifyDispatchError maps a gateway failure to the typed taxonomy:
// 429 → rate limited, 402 → payment required, any other upstream status →
// gateway error, everything else (network, parse, timeout) → transport error.
func classifyDispatchError(err error) *response.AppError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return dispatchErrorForStatus(apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return dispatchErrorForStatus(reqErr.HTTPStatusCode)
	}

	return response.NewTransportError(msgTransportError)
}

func dispatchErrorForStatus(status int) *response.AppError {
	switch status {
	case 0:
		// No HTTP status means the request never completed.
		return response.NewTransportError(msgTransportError)
	case http.StatusTooManyRequests:
		return response.NewRateLimited(msgRateLimited)
	case http.StatusPaymentRequired:
		return response.NewPaymentRequired(msgPaymentRequired)
	default:
		return response.NewGatewayError(msgGatewayError)
	}
}
