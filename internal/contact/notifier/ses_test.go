package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-lab/portfolio-backend/config"
	"github.com/folio-lab/portfolio-backend/internal/contact/domain"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	return &sesv2.SendEmailOutput{}, f.err
}

func TestNewSESNotifier_RequiresConfig(t *testing.T) {
	_, err := NewSESNotifier(context.Background(), config.EmailConfig{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestNotify(t *testing.T) {
	fake := &fakeSES{}
	n := &SESNotifier{client: fake, sender: "site@example.com", recipient: "owner@example.com"}

	err := n.Notify(context.Background(), domain.Submission{Name: "Jo", Email: "jo@example.com", Message: "Hello there!"})
	require.NoError(t, err)

	in := fake.input
	require.NotNil(t, in)
	assert.Equal(t, []string{"owner@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, []string{"jo@example.com"}, in.ReplyToAddresses)
	assert.Equal(t, "site@example.com", aws.ToString(in.FromEmailAddress))
	assert.Equal(t, "New message from Jo via your portfolio", aws.ToString(in.Content.Simple.Subject.Data))
	assert.Contains(t, aws.ToString(in.Content.Simple.Body.Text.Data), "Hello there!")
}

func TestNotify_Error(t *testing.T) {
	n := &SESNotifier{client: &fakeSES{err: errors.New("throttled")}, sender: "a@b.c", recipient: "d@e.f"}
	err := n.Notify(context.Background(), domain.Submission{Name: "Jo", Email: "jo@example.com", Message: "Hello there!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
