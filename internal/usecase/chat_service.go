package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// Reply confidence per source
const (
	AssistantConfidence = 0.9
	CannedConfidence    = 0.5
)

var errEmptyReply = errors.New("assistant returned an empty reply")

// Assistant generates free-form replies, usually backed by an LLM
type Assistant interface {
	Reply(ctx context.Context, message, chatContext string) (string, error)
}

// ChatService answers chat messages with the assistant, falling back to canned replies
type ChatService struct {
	assistant   Assistant
	responder   Replier
	chatLogRepo repository.ChatLogRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewChatService creates a new chat service. assistant and chatLogRepo may be nil.
func NewChatService(
	assistant Assistant,
	responder Replier,
	chatLogRepo repository.ChatLogRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ChatService {
	return &ChatService{
		assistant:   assistant,
		responder:   responder,
		chatLogRepo: chatLogRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// SendMessage answers a single chat message
func (s *ChatService) SendMessage(ctx context.Context, msg entity.ChatMessage) (*entity.ChatResponse, error) {
	text := strings.TrimSpace(msg.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	sessionID := msg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	resp := &entity.ChatResponse{SessionID: sessionID}

	var assistantErr error
	if s.assistant != nil {
		reply, err := s.assistant.Reply(ctx, text, msg.Context)
		if err == nil && strings.TrimSpace(reply) == "" {
			err = errEmptyReply
		}

		if err != nil {
			assistantErr = err
			s.metrics.AssistantFailures.Inc()
			s.logger.Warn("Assistant failed, using canned response",
				"sessionID", sessionID,
				"error", err)
		} else {
			resp.Response = reply
			resp.Confidence = AssistantConfidence
			resp.Sources = []string{entity.SourceAssistant}
		}
	}

	if resp.Response == "" {
		resp.Response = s.responder.Reply(text)
		resp.Confidence = CannedConfidence
		resp.Sources = []string{entity.SourceCanned}
	}

	s.metrics.ChatReplies.WithLabelValues(resp.Sources[0]).Inc()
	s.saveLog(ctx, msg, resp, assistantErr)

	return resp, nil
}

// History returns the stored exchanges of a session, oldest first
func (s *ChatService) History(ctx context.Context, sessionID string, limit int) ([]*entity.ChatLog, error) {
	if s.chatLogRepo == nil {
		return []*entity.ChatLog{}, nil
	}
	return s.chatLogRepo.FindBySession(ctx, sessionID, clampLimit(limit))
}

func (s *ChatService) saveLog(ctx context.Context, msg entity.ChatMessage, resp *entity.ChatResponse, assistantErr error) {
	if s.chatLogRepo == nil {
		return
	}

	log := &entity.ChatLog{
		SessionID:  resp.SessionID,
		Message:    msg.Message,
		Context:    msg.Context,
		Response:   resp.Response,
		Source:     resp.Sources[0],
		Confidence: resp.Confidence,
		CreatedAt:  time.Now(),
	}
	if assistantErr != nil {
		log.ErrorDetail = assistantErr.Error()
	}

	if err := s.chatLogRepo.Save(ctx, log); err != nil {
		s.logger.Warn("Failed to save chat log", "sessionID", resp.SessionID, "error", err)
	}
}
