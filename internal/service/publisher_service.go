package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"fitbite-be/internal/dto"
)

const (
	TopicPurchasePaid      = "purchase_paid"
	TopicPurchaseCancelled = "purchase_cancelled"
	TopicSurveyCompleted   = "survey_completed"
)

type IPublisherService interface {
	PublishPurchasePaid(ctx context.Context, msg dto.PurchasePaidMessage) error
	PublishPurchaseCancelled(ctx context.Context, msg dto.PurchaseCancelledMessage) error
	PublishSurveyCompleted(ctx context.Context, msg dto.SurveyCompletedMessage) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{pubSub: pubSub}
}

func (s *publisherService) PublishPurchasePaid(ctx context.Context, msg dto.PurchasePaidMessage) error {
	return s.publish(TopicPurchasePaid, msg)
}

func (s *publisherService) PublishPurchaseCancelled(ctx context.Context, msg dto.PurchaseCancelledMessage) error {
	return s.publish(TopicPurchaseCancelled, msg)
}

func (s *publisherService) PublishSurveyCompleted(ctx context.Context, msg dto.SurveyCompletedMessage) error {
	return s.publish(TopicSurveyCompleted, msg)
}

func (s *publisherService) publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), data))
}
