package events

import "time"

const (
	TypePurchasePaid      = "PURCHASE_PAID"
	TypePurchaseCancelled = "PURCHASE_CANCELLED"
	TypeSurveyCompleted   = "SURVEY_COMPLETED"
)

func NewPurchasePaid(purchaseId, userId, planId string, priceCents int) Event {
	return BaseEvent{
		Type: TypePurchasePaid,
		Data: map[string]interface{}{
			"purchase_id": purchaseId,
			"user_id":     userId,
			"plan_id":     planId,
			"price_cents": priceCents,
		},
		OccurredAt: time.Now(),
	}
}

func NewPurchaseCancelled(purchaseId, userId string) Event {
	return BaseEvent{
		Type: TypePurchaseCancelled,
		Data: map[string]interface{}{
			"purchase_id": purchaseId,
			"user_id":     userId,
		},
		OccurredAt: time.Now(),
	}
}

func NewSurveyCompleted(surveyId, userId string, surveyType string) Event {
	return BaseEvent{
		Type: TypeSurveyCompleted,
		Data: map[string]interface{}{
			"survey_id":   surveyId,
			"user_id":     userId,
			"survey_type": surveyType,
		},
		OccurredAt: time.Now(),
	}
}
