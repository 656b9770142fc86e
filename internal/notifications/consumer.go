package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Consumer pulls alert notifications from Kafka and delivers them
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConsumerConfig contains configuration for the notification consumer
type ConsumerConfig struct {
	Brokers        []string
	GroupID        string
	Topics         []string
	SessionTimeout time.Duration
	OffsetOldest   bool
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig(brokers []string, groupID, topic string) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topics:         []string{topic},
		SessionTimeout: 30 * time.Second,
		OffsetOldest:   false,
	}
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	sender        EmailSender
	cancel        context.CancelFunc
}

// NewKafkaConsumer creates a new Kafka notification consumer
func NewKafkaConsumer(config *ConsumerConfig, sender EmailSender) (Consumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		sender:        sender,
	}, nil
}

func (kc *kafkaConsumer) Start(ctx context.Context) error {
	ctx, kc.cancel = context.WithCancel(ctx)

	go func() {
		for err := range kc.consumerGroup.Errors() {
			log.Printf("Notification consumer error: %v", err)
		}
	}()

	go func() {
		handler := &consumerGroupHandler{sender: kc.sender}
		for {
			if err := kc.consumerGroup.Consume(ctx, kc.config.Topics, handler); err != nil {
				log.Printf("Notification consume error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	log.Printf("Notification consumer started for topics: %v", kc.config.Topics)
	return nil
}

func (kc *kafkaConsumer) Stop() error {
	if kc.cancel != nil {
		kc.cancel()
	}
	return kc.consumerGroup.Close()
}

type consumerGroupHandler struct {
	sender EmailSender
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		notification, err := FromJSON(message.Value)
		if err != nil {
			log.Printf("Skipping malformed notification at offset %d: %v", message.Offset, err)
			session.MarkMessage(message, "")
			continue
		}

		if err := h.sender.SendAlertEmail(session.Context(), notification); err != nil {
			// delivery is best effort; the message is committed either way
			log.Printf("Failed to deliver alert notification %s: %v", notification.ID, err)
		}

		session.MarkMessage(message, "")
	}
	return nil
}
