package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	config "github.com/integra/explorer/configs"
	elog "github.com/integra/explorer/internal/log"
	"github.com/integra/explorer/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

const DefaultTopic = "explorer.events"

// Publisher forwards structured events to kafka. A disabled publisher accepts
// and drops every event.
type Publisher struct {
	client *kgo.Client
	topic  string
	mu     sync.RWMutex
}

func NewPublisher(cfg *config.PublisherConfig) (*Publisher, error) {
	p := &Publisher{topic: cfg.Topic}
	if p.topic == "" {
		p.topic = DefaultTopic
	}
	if !cfg.Enabled {
		log.Debug().Msg("Publisher is disabled, skipping initialization")
		return p, nil
	}
	if cfg.Brokers == "" {
		log.Info().Msg("No Kafka brokers configured, skipping publisher initialization")
		return p, nil
	}

	brokers := strings.Split(cfg.Brokers, ",")
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ClientID("integra-explorer"),
		kgo.MaxBufferedRecords(100_000),
		kgo.ProducerLinger(50 * time.Millisecond),
		kgo.MetadataMaxAge(60 * time.Second),
		kgo.DialTimeout(10 * time.Second),
	}

	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: cfg.Username,
			Pass: cfg.Password,
		}.AsMechanism()))
	}
	if cfg.EnableTLS || (cfg.Username != "" && cfg.Password != "") {
		tlsDialer := &tls.Dialer{NetDialer: &net.Dialer{Timeout: 10 * time.Second}}
		opts = append(opts, kgo.Dialer(tlsDialer.DialContext))
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	p.client = client
	return p, nil
}

func (p *Publisher) Enabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client != nil
}

// PublishEvent enqueues the event without waiting for the broker; delivery
// failures are logged and counted.
func (p *Publisher) PublishEvent(ctx context.Context, event elog.Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.client == nil {
		return nil
	}
	record, err := p.newRecord(event)
	if err != nil {
		metrics.PublisherErrors.Inc()
		return err
	}
	// the request context ends with the request; delivery must outlive it
	p.client.Produce(context.WithoutCancel(ctx), record, func(_ *kgo.Record, err error) {
		if err != nil {
			metrics.PublisherErrors.Inc()
			log.Error().Err(err).Str("event", event.Type).Msg("Failed to publish event to Kafka")
			return
		}
		metrics.PublisherEventsPublished.Inc()
	})
	return nil
}

func (p *Publisher) newRecord(event elog.Event) (*kgo.Record, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.Type),
		Value:     value,
		Timestamp: event.Timestamp,
		Headers: []kgo.RecordHeader{
			{Key: "level", Value: []byte(event.Level)},
		},
	}, nil
}

// Close flushes buffered events and closes the client.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.client.Flush(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush publisher before close")
	}
	p.client.Close()
	p.client = nil
	log.Debug().Msg("Publisher client closed")
	return nil
}
