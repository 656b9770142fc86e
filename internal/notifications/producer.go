package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Producer publishes alert notifications to Kafka
type Producer interface {
	Publish(ctx context.Context, notification *AlertNotification) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka notification producer
type ProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:          brokers,
		Topic:            topic,
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
	}
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

// NewKafkaProducer creates a new Kafka notification producer
func NewKafkaProducer(config *ProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps one recipient's notifications ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		config:   config,
	}, nil
}

func (kp *kafkaProducer) Publish(ctx context.Context, notification *AlertNotification) error {
	notification.Status = NotificationStatusQueued
	notification.UpdatedAt = time.Now()

	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.config.Topic,
		Key:       sarama.StringEncoder(notification.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: notification.CreatedAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		notification.Status = NotificationStatusFailed
		errorStr := err.Error()
		notification.LastError = &errorStr
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}

	log.Printf("Alert notification published - Topic: %s, Partition: %d, Offset: %d, Recipient: %s",
		kp.config.Topic, partition, offset, notification.RecipientEmail)

	return nil
}

func (kp *kafkaProducer) Close() error {
	return kp.producer.Close()
}
