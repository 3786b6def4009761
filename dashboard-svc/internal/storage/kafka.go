package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"foodplate-dashboard/dashboard-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.FoodEvent) error {
	msg, err := EventMessage(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, msg)
}

// EventMessage keys events by food id so one food's history stays on one partition.
func EventMessage(event domain.FoodEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.Itoa(event.FoodID)),
		Value: payload,
	}, nil
}
