// Package events publishes order payment events to downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/xenking/classics-showroom/internal/domain/payment"
)

var (
	_ payment.Publisher = (*SNSPublisher)(nil)
	_ payment.Publisher = Nop{}
)

// SNSConfig configures the SNS publisher.
type SNSConfig struct {
	TopicARN string
	Region   string
	// Endpoint overrides the SNS endpoint, e.g. for LocalStack.
	Endpoint string
}

type snsAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes OrderEvent JSON to an SNS topic.
type SNSPublisher struct {
	client   snsAPI
	topicARN string
}

// NewSNSPublisher loads AWS configuration from the environment and returns a
// publisher for cfg.TopicARN.
func NewSNSPublisher(ctx context.Context, cfg SNSConfig) (*SNSPublisher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &SNSPublisher{client: client, topicARN: cfg.TopicARN}, nil
}

// Publish implements payment.Publisher. The event type is also set as a
// message attribute so subscribers can filter on it.
func (p *SNSPublisher) Publish(ctx context.Context, ev payment.OrderEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", ev.Type, err)
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {DataType: aws.String("String"), StringValue: aws.String(ev.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish to %s: %w", p.topicARN, err)
	}
	return nil
}

// Nop discards events. Used when no topic is configured.
type Nop struct{}

// Publish implements payment.Publisher.
func (Nop) Publish(context.Context, payment.OrderEvent) error { return nil }
