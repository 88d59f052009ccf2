package domain

import (
	"strings"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
)

// Role is the speaker of one chat turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn of a visitor conversation.
type Message struct {
	Role    Role   `json:"role" binding:"required,oneof=user model"`
	Content string `json:"content" binding:"required"`
}

// MaxHistory bounds the turns forwarded to the model.
const MaxHistory = 20

// ValidateHistory checks roles and drops the oldest turns beyond MaxHistory.
func ValidateHistory(history []Message) ([]Message, error) {
	for i, m := range history {
		if m.Role != RoleUser && m.Role != RoleModel {
			return nil, apperr.Validationf("history[%d]: unknown role %q", i, m.Role)
		}
		if strings.TrimSpace(m.Content) == "" {
			return nil, apperr.Validationf("history[%d]: content is required", i)
		}
	}
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	return history, nil
}
