package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"

	"github.com/folio-lab/portfolio-backend/config"
	"github.com/folio-lab/portfolio-backend/internal/contact/domain"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESNotifier emails the portfolio owner about new contact submissions.
type SESNotifier struct {
	client    sesAPI
	sender    string
	recipient string
}

// NewSESNotifier initializes an SES client using static credentials and region.
func NewSESNotifier(ctx context.Context, cfg config.EmailConfig) (*SESNotifier, error) {
	if !cfg.EmailEnabled() {
		return nil, fmt.Errorf("ses credentials, region, sender and recipient are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SESNotifier{
		client:    sesv2.NewFromConfig(awsCfg),
		sender:    cfg.Sender,
		recipient: cfg.NotifyAddress,
	}, nil
}

// Notify sends the owner a plain text copy of s, with Reply-To set to the visitor.
func (n *SESNotifier) Notify(ctx context.Context, s domain.Submission) error {
	subject := fmt.Sprintf("New message from %s via your portfolio", s.Name)
	body := fmt.Sprintf("You received a new message from your portfolio contact form.\n\nName: %s\nEmail: %s\n\n%s\n", s.Name, s.Email, s.Message)

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.recipient},
		},
		ReplyToAddresses: []string{s.Email},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
		FromEmailAddress: aws.String(n.sender),
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		log.Error().
			Err(err).
			Str("recipient", n.recipient).
			Time("timestamp", time.Now().UTC()).
			Msg("Failed to send contact notification")
		return fmt.Errorf("send ses email: %w", err)
	}
	return nil
}
