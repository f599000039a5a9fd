// Package mentorcontact delivers a user's message to a mentor by email and SMS.
package mentorcontact

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/common/metrics"
	"business-recommender/internal/enrichment"
	"business-recommender/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/google/uuid"
)

const defaultBusinessName = "a new business idea"

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Config struct {
	EmailEnabled bool
	FromEmail    string
	SMSEnabled   bool
	SenderID     string
}

type Service struct {
	config    Config
	sesClient SESService
	snsClient SNSService
	lookup    func(id string) (models.Mentor, bool)
	logger    logger.Logger
}

// NewService builds a Service. Either client may be nil when its channel is disabled.
func NewService(config Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Service {
	return &Service{
		config:    config,
		sesClient: sesClient,
		snsClient: snsClient,
		lookup:    enrichment.LookupMentor,
		logger:    log.WithFields(map[string]interface{}{"component": "mentorcontact"}),
	}
}

// Contact resolves the mentor and delivers req over every enabled channel.
func (s *Service) Contact(ctx context.Context, req models.ContactRequest) (*models.ContactResult, error) {
	mentor, ok := s.lookup(req.MentorID)
	if !ok {
		return nil, apperrors.NewMentorNotFoundError(req.MentorID)
	}

	subject := Subject(req.BusinessName)
	body := composeBody(mentor, req)
	result := &models.ContactResult{
		ContactID: uuid.NewString(),
		MentorID:  mentor.ID,
		MailtoURL: MailtoURL(mentor.Email, subject, body),
		SentAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if s.config.EmailEnabled && s.sesClient != nil {
		out, err := s.sesClient.SendEmail(ctx, &ses.SendEmailInput{
			Destination: &sestypes.Destination{ToAddresses: []string{mentor.Email}},
			Message: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body:    &sestypes.Body{Text: &sestypes.Content{Data: aws.String(body)}},
			},
			Source:           aws.String(s.config.FromEmail),
			ReplyToAddresses: []string{req.Email},
		})
		if err != nil {
			metrics.MentorContacts.WithLabelValues("email", "failed").Inc()
			s.logger.Error("mentor email failed", map[string]interface{}{
				"mentorId": mentor.ID,
				"error":    err,
			})
			return nil, apperrors.NewNotificationSendFailedError("email", err)
		}
		metrics.MentorContacts.WithLabelValues("email", "sent").Inc()
		result.EmailSent = true
		result.MessageID = aws.ToString(out.MessageId)
	}

	if s.config.SMSEnabled && s.snsClient != nil && mentor.Phone != "" {
		input := &sns.PublishInput{
			PhoneNumber: aws.String(mentor.Phone),
			Message:     aws.String(composeSMS(req)),
		}
		if s.config.SenderID != "" {
			input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
				"AWS.SNS.SMS.SenderID": {DataType: aws.String("String"), StringValue: aws.String(s.config.SenderID)},
			}
		}
		if _, err := s.snsClient.Publish(ctx, input); err != nil {
			metrics.MentorContacts.WithLabelValues("sms", "failed").Inc()
			s.logger.Error("mentor sms failed", map[string]interface{}{
				"mentorId": mentor.ID,
				"error":    err,
			})
			return nil, apperrors.NewNotificationSendFailedError("sms", err)
		}
		metrics.MentorContacts.WithLabelValues("sms", "sent").Inc()
		result.SMSSent = true
	}

	s.logger.Info("mentor contacted", map[string]interface{}{
		"contactId": result.ContactID,
		"mentorId":  mentor.ID,
		"emailSent": result.EmailSent,
		"smsSent":   result.SMSSent,
	})
	return result, nil
}

func Subject(businessName string) string {
	name := strings.TrimSpace(businessName)
	if name == "" {
		name = defaultBusinessName
	}
	return "Mentorship request: " + name
}

// MailtoURL percent-encodes subject and body with %20 for spaces, which
// mail clients expect instead of '+'.
func MailtoURL(to, subject, body string) string {
	q := func(s string) string { return strings.ReplaceAll(url.QueryEscape(s), "+", "%20") }
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, q(subject), q(body))
}

func composeBody(mentor models.Mentor, req models.ContactRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n%s\n\n", mentor.Name, strings.TrimSpace(req.Message))
	fmt.Fprintf(&b, "From: %s <%s>", req.Name, req.Email)
	if req.Phone != "" {
		fmt.Fprintf(&b, "\nPhone: %s", req.Phone)
	}
	return b.String()
}

func composeSMS(req models.ContactRequest) string {
	return fmt.Sprintf("New mentorship request from %s (%s). Check your email for details.", req.Name, req.Email)
}
