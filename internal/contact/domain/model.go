package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
)

// AutoReply is stored as the assistant side of every contact log entry.
const AutoReply = "Thank you for the message. This has been noted for the portfolio owner."

// Submission is one contact form post.
type Submission struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize trims every field.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)
}

// Validate reports every failing field as an ErrValidation.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Validationf("%v", err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return apperr.Validationf("%s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	default:
		return field + " is invalid"
	}
}

// ChatLogEntry is the owner-facing record of a submission.
type ChatLogEntry struct {
	AuthorProfileID    string
	UserMessage        string
	AIResponse         string
	RecommendedMessage bool
	SubmittedAt        time.Time
}

// NewChatLogEntry formats s for the owner's message log.
func NewChatLogEntry(authorID string, s Submission, now time.Time) ChatLogEntry {
	return ChatLogEntry{
		AuthorProfileID: authorID,
		UserMessage: fmt.Sprintf("New Contact Form Submission:\nName: %s\nEmail: %s\nMessage: %s",
			s.Name, s.Email, s.Message),
		AIResponse:  AutoReply,
		SubmittedAt: now,
	}
}
