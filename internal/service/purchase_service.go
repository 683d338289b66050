package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/entity"
	"fitbite-be/internal/pkg/apperror"
	"fitbite-be/internal/pkg/logger"
	"fitbite-be/internal/repository/specification"
	"fitbite-be/internal/repository/unitofwork"
	"fitbite-be/pkg/receipt"
	"fitbite-be/pkg/survey"
)

type IPurchaseService interface {
	GetPurchases(ctx context.Context, userId uuid.UUID) ([]dto.PurchaseSummaryResponse, error)
	GetPurchase(ctx context.Context, userId, purchaseId uuid.UUID) (*dto.PurchaseDetailResponse, error)
	GetReceiptFile(ctx context.Context, userId, purchaseId uuid.UUID) (string, string, error)
	CancelPurchase(ctx context.Context, userId, purchaseId uuid.UUID) (*dto.PurchaseSummaryResponse, error)
}

type purchaseService struct {
	uowFactory      unitofwork.RepositoryFactory
	receiptRenderer receipt.Renderer
	mediaRoot       string
	publisher       IPublisherService
	logger          logger.ILogger
}

func NewPurchaseService(uowFactory unitofwork.RepositoryFactory, receiptRenderer receipt.Renderer, mediaRoot string, publisher IPublisherService, logger logger.ILogger) IPurchaseService {
	return &purchaseService{
		uowFactory:      uowFactory,
		receiptRenderer: receiptRenderer,
		mediaRoot:       mediaRoot,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *purchaseService) GetPurchases(ctx context.Context, userId uuid.UUID) ([]dto.PurchaseSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchases, err := uow.PurchaseRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	responses := make([]dto.PurchaseSummaryResponse, 0, len(purchases))
	for _, purchase := range purchases {
		responses = append(responses, toPurchaseSummary(purchase))
	}
	return responses, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, userId, purchaseId uuid.UUID) (*dto.PurchaseDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchase, err := s.fetchOwnedPurchase(ctx, uow, userId, purchaseId)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PurchaseItemResponse, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		items = append(items, dto.PurchaseItemResponse{
			DayOfWeek:       item.DayOfWeek,
			MealType:        item.MealType,
			MealTitle:       item.MealTitle,
			MealDescription: item.MealDescription,
			Calories:        item.Calories,
			ProteinGrams:    item.ProteinGrams,
			CarbsGrams:      item.CarbsGrams,
			FatsGrams:       item.FatsGrams,
		})
	}

	return &dto.PurchaseDetailResponse{
		PurchaseSummaryResponse: toPurchaseSummary(purchase),
		BuyerFullName:           purchase.BuyerFullName,
		BuyerEmail:              purchase.BuyerEmail,
		BuyerPhone:              purchase.BuyerPhone,
		InvoiceNeeded:           purchase.InvoiceNeeded,
		CompanyName:             purchase.CompanyName,
		CompanyCode:             purchase.CompanyCode,
		VatCode:                 purchase.VatCode,
		ExtraNotes:              purchase.ExtraNotes,
		Items:                   items,
	}, nil
}

// GetReceiptFile returns the receipt's filesystem path and download name.
func (s *purchaseService) GetReceiptFile(ctx context.Context, userId, purchaseId uuid.UUID) (string, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchase, err := s.fetchOwnedPurchase(ctx, uow, userId, purchaseId)
	if err != nil {
		return "", "", err
	}

	if purchase.Status != entity.PurchaseStatusPaid || purchase.ReceiptPath == nil {
		return "", "", apperror.NotFound("receipt not available yet")
	}

	path := filepath.Join(s.mediaRoot, *purchase.ReceiptPath)
	filename := "FitBite_planas_" + purchase.PlanNameSnapshot + "_" + purchase.Id.String() + ".txt"
	return path, filename, nil
}

// CancelPurchase voids a paid purchase: the payment stamps are cleared, the
// receipt document is purged, the plan is unset as current if it was, and the
// final survey is armed immediately so the exit feedback fires at cancellation
// time rather than at period end.
func (s *purchaseService) CancelPurchase(ctx context.Context, userId, purchaseId uuid.UUID) (*dto.PurchaseSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	purchase, err := s.fetchOwnedPurchase(ctx, uow, userId, purchaseId)
	if err != nil {
		return nil, err
	}

	if purchase.Status == entity.PurchaseStatusCanceled {
		return nil, apperror.Conflict("purchase already canceled")
	}

	start := purchase.StartTime()
	now := time.Now().UTC()

	// Arm the final survey before the paid stamps are cleared, so the
	// elapsed-days computation still has its clock origin.
	if start != nil {
		if err := s.armFinalSurvey(ctx, uow, purchase, *start, now); err != nil {
			return nil, err
		}
	}

	receiptPath := purchase.ReceiptPath
	purchase.Status = entity.PurchaseStatusCanceled
	purchase.PaidAt = nil
	purchase.TransactionReference = nil
	purchase.ReceiptPath = nil

	if err := uow.PurchaseRepository().Update(ctx, purchase); err != nil {
		return nil, apperror.Internal(err)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user != nil && user.CurrentPlanId != nil && *user.CurrentPlanId == purchase.PlanId {
		if err := uow.UserRepository().UpdateCurrentPlan(ctx, userId, nil); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	if receiptPath != nil {
		if err := s.receiptRenderer.Remove(*receiptPath); err != nil {
			s.logger.Warn("purchase", "failed to remove receipt file", map[string]interface{}{
				"purchase_id": purchase.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	s.logger.Info("purchase", "purchase canceled", map[string]interface{}{
		"purchase_id": purchase.Id.String(),
		"user_id":     userId.String(),
	})

	if s.publisher != nil {
		if err := s.publisher.PublishPurchaseCancelled(ctx, dto.PurchaseCancelledMessage{
			PurchaseId: purchase.Id,
			UserId:     userId,
		}); err != nil {
			s.logger.Warn("purchase", "failed to publish cancellation event", map[string]interface{}{
				"purchase_id": purchase.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	response := toPurchaseSummary(purchase)
	return &response, nil
}

func (s *purchaseService) armFinalSurvey(ctx context.Context, uow unitofwork.UnitOfWork, purchase *entity.PlanPurchase, start, trigger time.Time) error {
	final, err := uow.SurveyRepository().FindOne(ctx,
		specification.Filter("purchase_id", purchase.Id),
		specification.Filter("survey_type", string(entity.SurveyTypeFinal)),
	)
	if err != nil {
		return apperror.Internal(err)
	}

	if final == nil {
		return uowCreateSurvey(ctx, uow, survey.NewFinal(purchase, start, trigger))
	}

	survey.ArmFinal(final, start, purchase.PeriodDays, trigger)
	if err := uow.SurveyRepository().Update(ctx, final); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func uowCreateSurvey(ctx context.Context, uow unitofwork.UnitOfWork, s *entity.ProgressSurvey) error {
	if err := uow.SurveyRepository().Create(ctx, s); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *purchaseService) fetchOwnedPurchase(ctx context.Context, uow unitofwork.UnitOfWork, userId, purchaseId uuid.UUID) (*entity.PlanPurchase, error) {
	purchase, err := uow.PurchaseRepository().FindOne(ctx,
		specification.ByID{ID: purchaseId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if purchase == nil {
		return nil, apperror.NotFound("purchase not found")
	}
	return purchase, nil
}

func toPurchaseSummary(purchase *entity.PlanPurchase) dto.PurchaseSummaryResponse {
	return dto.PurchaseSummaryResponse{
		Id:                   purchase.Id,
		PlanId:               purchase.PlanId,
		PlanNameSnapshot:     purchase.PlanNameSnapshot,
		PeriodDays:           purchase.PeriodDays,
		BasePriceCents:       purchase.BasePriceCents,
		PriceCents:           purchase.PriceCents,
		DiscountAmountCents:  purchase.DiscountAmountCents,
		DiscountLabel:        purchase.DiscountLabel,
		DiscountCode:         purchase.DiscountCode,
		DiscountPercent:      purchase.DiscountPercent(),
		Currency:             purchase.Currency,
		Status:               string(purchase.Status),
		PaymentMethod:        string(purchase.PaymentMethod),
		CreatedAt:            purchase.CreatedAt,
		PaidAt:               purchase.PaidAt,
		TransactionReference: purchase.TransactionReference,
		ReceiptAvailable:     purchase.ReceiptPath != nil,
	}
}
