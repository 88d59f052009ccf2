package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/contact/domain"
	"github.com/folio-lab/portfolio-backend/internal/logging"
)

const notifyTimeout = 15 * time.Second

// Sink stores contact log entries.
type Sink interface {
	Append(ctx context.Context, entry domain.ChatLogEntry) (string, error)
}

// Notifier tells the owner about a new submission.
type Notifier interface {
	Notify(ctx context.Context, s domain.Submission) error
}

// Receipt confirms a stored submission.
type Receipt struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ContactService struct {
	sink     Sink
	notifier Notifier
	authorID string
	now      func() time.Time
	wg       sync.WaitGroup
}

// NewContactService wires the sink and optional notifier. A nil sink makes
// Submit fail with apperr.ErrUnavailable.
func NewContactService(sink Sink, notifier Notifier, authorID string) *ContactService {
	return &ContactService{sink: sink, notifier: notifier, authorID: authorID, now: time.Now}
}

// Submit validates and stores s, then notifies the owner in the background.
func (s *ContactService) Submit(ctx context.Context, sub domain.Submission) (*Receipt, error) {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if s.sink == nil {
		return nil, fmt.Errorf("%w: contact store is not configured", apperr.ErrUnavailable)
	}

	entry := domain.NewChatLogEntry(s.authorID, sub, s.now().UTC())
	id, err := s.sink.Append(ctx, entry)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("Error saving contact message")
		return nil, err
	}

	if s.notifier != nil {
		s.wg.Add(1)
		go s.notify(logging.RequestID(ctx), sub)
	}

	return &Receipt{ID: id, Message: "Thank you for your message! I'll get back to you soon."}, nil
}

// notify runs detached from the request context.
func (s *ContactService) notify(requestID string, sub domain.Submission) {
	defer s.wg.Done()
	ctx, cancel := context.WithTimeout(logging.WithRequestID(context.Background(), requestID), notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, sub); err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Msg("Contact notification failed")
	}
}

// Wait blocks until pending notifications finish.
func (s *ContactService) Wait() {
	s.wg.Wait()
}
