package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

const (
	TopicDeliveryJobs = "delivery-jobs"
	TopicOrderEvents  = "order-events"
)

// OrderEvent mirrors a lifecycle transition for downstream consumers
// (reporting, seller dashboards). Published after commit, best effort.
type OrderEvent struct {
	OrderID     int64              `json:"order_id"`
	BuyerID     int64              `json:"buyer_id"`
	Status      domain.OrderStatus `json:"status"`
	TotalAmount string             `json:"total_amount"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

type DefaultPublisher struct {
	writer *kafka.Writer
}

func NewDefaultPublisher(brokers []string) *DefaultPublisher {
	return &DefaultPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *DefaultPublisher) publish(ctx context.Context, topic string, key []byte, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}

// BroadcastJobAvailable publishes a claimable job to the deliverer pool.
// Keyed by delivery id so updates for one job stay ordered.
func (p *DefaultPublisher) BroadcastJobAvailable(ctx context.Context, event domain.JobEvent) error {
	return p.publish(ctx, TopicDeliveryJobs, []byte(strconv.FormatInt(event.DeliveryID, 10)), event)
}

func (p *DefaultPublisher) BroadcastJobStatus(ctx context.Context, event domain.JobEvent) error {
	return p.publish(ctx, TopicDeliveryJobs, []byte(strconv.FormatInt(event.DeliveryID, 10)), event)
}

func (p *DefaultPublisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	return p.publish(ctx, TopicOrderEvents, []byte(strconv.FormatInt(event.OrderID, 10)), event)
}

func (p *DefaultPublisher) Close() error {
	return p.writer.Close()
}
