package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"airport-ops-service/pkg/logger"
)

// SystemPrompt frames every chat exchange
const SystemPrompt = `You are an AI assistant for an airport operations management system. You help users with:
1. Flight information and searches
2. Airport operations and runway status
3. Real-time alerts and notifications
4. General airport assistance

Be helpful, concise, and professional. If you don't have specific information, suggest where they can find it.`

// ErrNoCandidates is returned when the model produced no text
var ErrNoCandidates = errors.New("gemini returned no candidates")

// GeminiService answers chat messages through the Gemini generateContent API
type GeminiService struct {
	models  *generativelanguage.ModelsService
	model   string
	timeout time.Duration
	logger  logger.Logger
}

// NewGeminiService creates a new Gemini client. Credentials are passed as client options,
// usually option.WithAPIKey or option.WithTokenSource.
func NewGeminiService(
	ctx context.Context,
	model string,
	timeout time.Duration,
	logger logger.Logger,
	opts ...option.ClientOption,
) (*GeminiService, error) {
	service, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	return &GeminiService{
		models:  service.Models,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Reply sends the message with the optional dashboard context and returns the model text
func (s *GeminiService) Reply(ctx context.Context, message, chatContext string) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		SystemInstruction: &generativelanguage.Content{
			Parts: []*generativelanguage.Part{{Text: SystemPrompt}},
		},
		Contents: []*generativelanguage.Content{userContent(buildUserPrompt(message, chatContext))},
	}
	return s.generate(ctx, req)
}

// generate runs one generateContent call under the service timeout
func (s *GeminiService) generate(ctx context.Context, req *generativelanguage.GenerateContentRequest) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.models.GenerateContent(s.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gemini generateContent failed: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", ErrNoCandidates
	}

	s.logger.Debug("Gemini reply received",
		"model", s.model,
		"duration", time.Since(start),
		"length", len(text))

	return text, nil
}

func userContent(text string) *generativelanguage.Content {
	return &generativelanguage.Content{
		Role:  "user",
		Parts: []*generativelanguage.Part{{Text: text}},
	}
}

func buildUserPrompt(message, chatContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User message: %q\n", message)
	if chatContext != "" {
		fmt.Fprintf(&b, "Context: %s\n", chatContext)
	}
	b.WriteString("\nProvide a helpful response that addresses the user's query. If they're asking about flights, " +
		"runway status, or alerts, acknowledge their request and suggest they check the relevant dashboard sections.")
	return b.String()
}

// candidateText joins the text parts of the first candidate
func candidateText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			parts = append(parts, part.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
