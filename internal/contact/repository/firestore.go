package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/folio-lab/portfolio-backend/internal/contact/domain"
)

const (
	authorProfilesCollection = "authorProfiles"
	chatMessagesCollection   = "aiChatMessages"
)

// FirestoreSink appends contact entries to authorProfiles/{author}/aiChatMessages.
type FirestoreSink struct {
	client *firestore.Client
}

func NewFirestoreSink(client *firestore.Client) *FirestoreSink {
	return &FirestoreSink{client: client}
}

// Append writes one document and returns its generated ID.
func (s *FirestoreSink) Append(ctx context.Context, entry domain.ChatLogEntry) (string, error) {
	ref, _, err := s.client.
		Collection(authorProfilesCollection).
		Doc(entry.AuthorProfileID).
		Collection(chatMessagesCollection).
		Add(ctx, toDocument(entry))
	if err != nil {
		return "", fmt.Errorf("failed to add contact message: %w", err)
	}
	return ref.ID, nil
}

// toDocument uses the server clock for the timestamp.
func toDocument(e domain.ChatLogEntry) map[string]any {
	return map[string]any{
		"authorProfileId":    e.AuthorProfileID,
		"userMessage":        e.UserMessage,
		"aiResponse":         e.AIResponse,
		"timestamp":          firestore.ServerTimestamp,
		"recommendedMessage": e.RecommendedMessage,
	}
}
