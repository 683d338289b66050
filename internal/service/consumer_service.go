package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/pkg/mailer"
	"fitbite-be/internal/repository/specification"
	"fitbite-be/internal/repository/unitofwork"
	"fitbite-be/pkg/events"
	natsbus "fitbite-be/pkg/nats"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains in-process purchase events: it emails the receipt
// confirmation and mirrors the event onto the NATS bus for other systems.
// Both side effects are best-effort; the purchase itself is already committed.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	uowFactory    unitofwork.RepositoryFactory
	emailService  mailer.IEmailService
	natsPublisher *natsbus.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	natsPublisher *natsbus.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		uowFactory:    uowFactory,
		emailService:  emailService,
		natsPublisher: natsPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	paidMessages, err := cs.pubSub.Subscribe(ctx, TopicPurchasePaid)
	if err != nil {
		return err
	}
	cancelledMessages, err := cs.pubSub.Subscribe(ctx, TopicPurchaseCancelled)
	if err != nil {
		return err
	}
	surveyMessages, err := cs.pubSub.Subscribe(ctx, TopicSurveyCompleted)
	if err != nil {
		return err
	}

	go func() {
		for msg := range paidMessages {
			cs.processPaid(ctx, msg)
		}
	}()
	go func() {
		for msg := range cancelledMessages {
			cs.processCancelled(ctx, msg)
		}
	}()
	go func() {
		for msg := range surveyMessages {
			cs.processSurveyCompleted(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processPaid(ctx context.Context, msg *message.Message) {
	var payload dto.PurchasePaidMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal purchase paid message: %v", err)
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	purchase, err := uow.PurchaseRepository().FindOne(ctx, specification.ByID{ID: payload.PurchaseId})
	if err != nil {
		log.Printf("[ERROR] Failed to load purchase %s: %v", payload.PurchaseId, err)
		msg.Nack()
		return
	}
	if purchase == nil {
		log.Printf("[WARN] Purchase not found: %s", payload.PurchaseId)
		msg.Ack()
		return
	}

	if cs.emailService != nil {
		reference := ""
		if purchase.TransactionReference != nil {
			reference = *purchase.TransactionReference
		}
		if err := cs.emailService.SendPurchaseReceipt(
			purchase.BuyerEmail,
			purchase.BuyerFullName,
			purchase.PlanNameSnapshot,
			purchase.PriceCents,
			purchase.Currency,
			reference,
		); err != nil {
			log.Printf("[WARN] Failed to send receipt email for %s: %v", purchase.Id, err)
		}
	}

	if cs.natsPublisher != nil {
		event := events.NewPurchasePaid(
			purchase.Id.String(),
			purchase.UserId.String(),
			purchase.PlanId.String(),
			purchase.PriceCents,
		)
		if err := cs.natsPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish NATS event for %s: %v", purchase.Id, err)
		}
	}

	msg.Ack()
}

func (cs *consumerService) processCancelled(ctx context.Context, msg *message.Message) {
	var payload dto.PurchaseCancelledMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal cancellation message: %v", err)
		msg.Ack()
		return
	}

	if cs.natsPublisher != nil {
		event := events.NewPurchaseCancelled(payload.PurchaseId.String(), payload.UserId.String())
		if err := cs.natsPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish NATS event for %s: %v", payload.PurchaseId, err)
		}
	}

	msg.Ack()
}

func (cs *consumerService) processSurveyCompleted(ctx context.Context, msg *message.Message) {
	var payload dto.SurveyCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal survey completed message: %v", err)
		msg.Ack()
		return
	}

	if cs.natsPublisher != nil {
		event := events.NewSurveyCompleted(payload.SurveyId.String(), payload.UserId.String(), payload.SurveyType)
		if err := cs.natsPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish NATS event for %s: %v", payload.SurveyId, err)
		}
	}

	msg.Ack()
}
