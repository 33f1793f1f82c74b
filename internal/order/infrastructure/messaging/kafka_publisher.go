// Package messaging 提供订单事件的 Kafka 发布实现
package messaging

import (
	"context"

	"github.com/autofixx/storefront/internal/order/domain"
	"github.com/autofixx/storefront/pkg/mq"
)

// KafkaEventPublisher 实现 EventPublisher，直接投递到 Kafka
type KafkaEventPublisher struct {
	producer *mq.KafkaProducer
	topic    string
}

// NewKafkaEventPublisher 创建 Kafka 事件发布器
func NewKafkaEventPublisher(producer *mq.KafkaProducer, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

// PublishOrderPlaced 发布下单成功事件，以订单号作为分区键
func (p *KafkaEventPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error {
	return p.producer.SendMessage(ctx, p.topic, event.OrderNumber, event)
}
