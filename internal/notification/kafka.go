package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes changes to a topic keyed by event id so that
// every change of one event lands on the same partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           5 * time.Second,
			// Publish runs inside the request; flush each change immediately
			// instead of waiting out the writer's default 1s batch window.
			BatchSize:    1,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, change SetlistChange) error {
	msg, err := changeMessage(change)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// changeMessage encodes change keyed by its event id with a "type" header.
func changeMessage(change SetlistChange) (kafka.Message, error) {
	value, err := json.Marshal(change)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s: %w", change.Type, err)
	}
	return kafka.Message{
		Key:   []byte(change.EventID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(change.Type)},
		},
	}, nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Consumer reads the setlist topic and hands each change to a handler.
type Consumer struct {
	reader *kafka.Reader
	handle func(context.Context, SetlistChange) error
}

func NewConsumer(brokers []string, groupID, topic string, handle func(context.Context, SetlistChange) error) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		handle: handle,
	}
}

// Run blocks until ctx is cancelled. Undecodable messages are skipped.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		if !c.process(ctx, msg) {
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error("commit failed", "offset", msg.Offset, "err", err)
		}
	}
}

// process hands one message to the handler and reports whether its offset
// may be committed. Malformed messages are committed so they are not retried.
func (c *Consumer) process(ctx context.Context, msg kafka.Message) bool {
	var change SetlistChange
	if err := json.Unmarshal(msg.Value, &change); err != nil {
		log.Warn("skipping malformed setlist message", "offset", msg.Offset, "partition", msg.Partition, "err", err)
		return true
	}
	if err := c.handle(ctx, change); err != nil {
		log.Error("setlist change handler failed", "type", change.Type, "event_id", change.EventID, "err", err)
		return false
	}
	return true
}

// LogChange is the default consumer handler.
func LogChange(_ context.Context, change SetlistChange) error {
	log.Info("setlist change", "type", change.Type, "event_id", change.EventID, "song_id", change.SongID, "order", change.Order)
	return nil
}
