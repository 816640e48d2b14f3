package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// ErrInvalidToken marks a device endpoint the provider will never deliver to.
var ErrInvalidToken = errors.New("invalid device token")

// SNSAPI is the slice of the SNS client the sink uses.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSink publishes to SNS platform endpoints; device tokens are endpoint ARNs.
type SNSSink struct {
	client SNSAPI
	logger *slog.Logger
}

func NewSNSSink(client SNSAPI, logger *slog.Logger) *SNSSink {
	return &SNSSink{client: client, logger: logger.With("component", "sns_sink")}
}

// NewSNSClient loads the default AWS credential chain for region.
func NewSNSClient(ctx context.Context, region string) (*sns.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return sns.NewFromConfig(cfg), nil
}

// Send delivers msg to every token. Tokens the provider rejects for good are
// returned in invalid; other failures are joined into err.
func (s *SNSSink) Send(ctx context.Context, tokens []string, msg Message) (invalid []string, err error) {
	payload, err := snsPayload(msg)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, token := range tokens {
		_, err := s.client.Publish(ctx, &sns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(payload),
			TargetArn:        aws.String(token),
		})
		if err == nil {
			continue
		}
		if permanentFailure(err) {
			s.logger.Warn("device endpoint rejected", "token", token, "error", err)
			invalid = append(invalid, token)
			continue
		}
		errs = append(errs, fmt.Errorf("publish to %s: %w", token, err))
	}
	return invalid, errors.Join(errs...)
}

func permanentFailure(err error) bool {
	var disabled *types.EndpointDisabledException
	var notFound *types.NotFoundException
	var invalidParam *types.InvalidParameterException
	return errors.As(err, &disabled) || errors.As(err, &notFound) || errors.As(err, &invalidParam)
}

// snsPayload encodes a per-protocol message. SNS expects each protocol value
// to be a JSON string.
func snsPayload(msg Message) (string, error) {
	gcm, err := json.Marshal(map[string]any{
		"notification": map[string]string{
			"title": msg.Title,
			"body":  msg.Body,
			"sound": "default",
		},
		"data": msg.Data,
	})
	if err != nil {
		return "", fmt.Errorf("marshal gcm payload: %w", err)
	}

	apns, err := json.Marshal(map[string]any{
		"aps": map[string]any{
			"alert": map[string]string{"title": msg.Title, "body": msg.Body},
			"sound": "default",
		},
		"matches": msg.Data["matches"],
	})
	if err != nil {
		return "", fmt.Errorf("marshal apns payload: %w", err)
	}

	raw, err := json.Marshal(map[string]string{
		"default": msg.Body,
		"GCM":     string(gcm),
		"APNS":    string(apns),
	})
	if err != nil {
		return "", fmt.Errorf("marshal sns payload: %w", err)
	}
	return string(raw), nil
}
