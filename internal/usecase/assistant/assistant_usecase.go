package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"go.uber.org/zap"
)

const maxHistoryTurns = 10

// TextGenerator is the external text-generation service
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type AssistantUseCase struct {
	text    TextGenerator
	timeout time.Duration
	logger  *zap.Logger
}

func NewAssistantUseCase(text TextGenerator, timeout time.Duration, logger *zap.Logger) *AssistantUseCase {
	return &AssistantUseCase{
		text:    text,
		timeout: timeout,
		logger:  logger,
	}
}

// ChatTurn is one earlier message of the conversation
type ChatTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required,max=4000"`
}

// ChatRequest represents a message to the assistant
type ChatRequest struct {
	Message string     `json:"message" binding:"required,min=1,max=4000"`
	History []ChatTurn `json:"history" binding:"omitempty,max=50,dive"`
}

// ChatResponse holds the assistant reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a message in the context of the earlier conversation
func (uc *AssistantUseCase) Chat(ctx context.Context, actor domain.Actor, req *ChatRequest) (*ChatResponse, error) {
	if uc.text == nil {
		return nil, domain.ErrAssistantUnavailable
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	reply, err := uc.text.GenerateText(ctx, BuildPrompt(actor.Role, req.History, req.Message))
	if err != nil {
		uc.logger.Warn("assistant generation failed", zap.Int("user_id", actor.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}

	return &ChatResponse{Reply: strings.TrimSpace(reply)}, nil
}

// BuildPrompt renders the conversation for the text generator. Only the
// most recent history turns are kept.
func BuildPrompt(role domain.Role, history []ChatTurn, message string) string {
	var sb strings.Builder

	sb.WriteString("You are a helpful assistant for a platform that connects video creators with marketing campaigns.\n")
	switch role {
	case domain.RoleCreator:
		sb.WriteString("The user is a video creator. Help them position their videos, pick genres and tone, and understand campaign matches.\n")
	case domain.RoleMarketer:
		sb.WriteString("The user is a marketer. Help them describe campaigns, choose categories, and evaluate creator matches.\n")
	}
	sb.WriteString("Keep answers concise and practical.\n\n")

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, turn := range history {
		speaker := "User"
		if turn.Role == "assistant" {
			speaker = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", speaker, turn.Content)
	}

	fmt.Fprintf(&sb, "User: %s\nAssistant:", message)
	return sb.String()
}
