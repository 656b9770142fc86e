package alerts

import (
	"context"
	"log"
	"time"
)

// JobProcessor periodically evaluates active alerts against current prices
type JobProcessor struct {
	service Service
	config  *JobConfig
	done    chan struct{}
}

// JobConfig contains configuration for the evaluation job
type JobConfig struct {
	EvaluationInterval time.Duration
	BatchSize          int
}

// DefaultJobConfig returns default job configuration
func DefaultJobConfig() *JobConfig {
	return &JobConfig{
		EvaluationInterval: 30 * time.Second,
		BatchSize:          100,
	}
}

// NewJobProcessor creates a new job processor
func NewJobProcessor(service Service, config *JobConfig) *JobProcessor {
	if config == nil {
		config = DefaultJobConfig()
	}

	return &JobProcessor{
		service: service,
		config:  config,
		done:    make(chan struct{}),
	}
}

// Start starts the background evaluation loop
func (jp *JobProcessor) Start(ctx context.Context) {
	go jp.startEvaluationLoop(ctx)
	log.Printf("Started alert evaluation job with %v interval", jp.config.EvaluationInterval)
}

// Stop stops the background evaluation loop
func (jp *JobProcessor) Stop() {
	close(jp.done)
	log.Println("Stopped alert evaluation job")
}

func (jp *JobProcessor) startEvaluationLoop(ctx context.Context) {
	ticker := time.NewTicker(jp.config.EvaluationInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			jp.evaluateOnce(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (jp *JobProcessor) evaluateOnce(ctx context.Context) {
	triggered, err := jp.service.EvaluateAlerts(ctx, jp.config.BatchSize)
	if err != nil {
		log.Printf("Error evaluating alerts: %v", err)
		return
	}

	if triggered > 0 {
		log.Printf("Triggered %d price alerts", triggered)
	}
}
