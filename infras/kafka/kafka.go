package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"carehub/config"
	"carehub/infras/otel"
	"carehub/shared/constant"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout = 10 * time.Second

	otelAttrTopic = "topic"
	otelAttrCount = "count"
)

type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m Message) toKafkaMessage(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value: %w", err)
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for key, val := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(val)})
	}

	return kafkaGo.Message{
		Topic:   topic,
		Key:     []byte(m.Key),
		Value:   value,
		Headers: headers,
	}, nil
}

// Producer publishes JSON encoded messages.
type Producer interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type producerImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Producer {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Warn().Msg("Kafka disabled, events will only be logged")

		return &discardProducer{}
	}

	transport := &kafkaGo.Transport{}
	if cfg.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka producer initialized")

	return &producerImpl{
		writer: writer,
		otel:   otel,
	}
}

func (p *producerImpl) Publish(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrTopic: topic,
		otelAttrCount: len(messages),
	})

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.toKafkaMessage(topic)
		if err != nil {
			return err
		}

		msgs = append(msgs, msg)
	}

	if err = p.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to publish to Kafka")

		return fmt.Errorf("failed to publish to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Published to Kafka")

	return nil
}

func (p *producerImpl) Close() error {
	return p.writer.Close() //nolint:wrapcheck
}

type discardProducer struct{}

func (discardProducer) Publish(_ context.Context, topic string, messages ...Message) error {
	for _, message := range messages {
		log.Info().Str("topic", topic).Str("key", message.Key).Msg("Kafka disabled, event dropped")
	}

	return nil
}

func (discardProducer) Close() error {
	return nil
}
