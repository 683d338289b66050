package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitbite-be/internal/dto"
	"fitbite-be/internal/entity"
	"fitbite-be/internal/pkg/apperror"
	"fitbite-be/internal/pkg/locker"
	"fitbite-be/internal/pkg/logger"
	"fitbite-be/internal/repository/specification"
	"fitbite-be/internal/repository/unitofwork"
	"fitbite-be/pkg/discount"
	"fitbite-be/pkg/pricing"
	"fitbite-be/pkg/receipt"
	"fitbite-be/pkg/survey"
)

const checkoutLockTTL = 10 * time.Second

type ICheckoutService interface {
	Checkout(ctx context.Context, userId, planId uuid.UUID, req *dto.CheckoutRequest) (*dto.PurchaseSummaryResponse, error)
}

type checkoutService struct {
	uowFactory      unitofwork.RepositoryFactory
	discountEngine  *discount.Engine
	receiptRenderer receipt.Renderer
	locker          locker.Locker
	publisher       IPublisherService
	logger          logger.ILogger
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	discountEngine *discount.Engine,
	receiptRenderer receipt.Renderer,
	lock locker.Locker,
	publisher IPublisherService,
	logger logger.ILogger,
) ICheckoutService {
	return &checkoutService{
		uowFactory:      uowFactory,
		discountEngine:  discountEngine,
		receiptRenderer: receiptRenderer,
		locker:          lock,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, userId, planId uuid.UUID, req *dto.CheckoutRequest) (*dto.PurchaseSummaryResponse, error) {
	lockKey := fmt.Sprintf("checkout:%s:%s:%d", userId, planId, req.PeriodDays)
	acquired, err := s.locker.Acquire(ctx, lockKey, checkoutLockTTL)
	if err == nil && !acquired {
		return nil, apperror.Conflict("checkout already in progress for this plan")
	}
	defer s.locker.Release(ctx, lockKey)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if plan == nil || !plan.VisibleTo(userId) {
		return nil, apperror.NotFound("plan not found")
	}

	// Step 1: resolve pricing for the requested period.
	option, err := pricing.Resolve(plan, req.PeriodDays)
	if err != nil {
		return nil, apperror.Validation("pasirinktas periodo variantas nerastas")
	}

	// Step 2: payment-method specific validation.
	if err := validatePaymentDetails(req); err != nil {
		return nil, err
	}

	// Step 3: compute the discount; its validation errors fail the checkout.
	priorPurchases, err := uow.PurchaseRepository().Count(ctx, specification.OwnedBy{UserId: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	computation, err := s.discountEngine.Compute(user, option.PriceCents, req.DiscountCode, priorPurchases, time.Now().UTC())
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	// Step 4: create the pending purchase with snapshotted plan data.
	purchase := &entity.PlanPurchase{
		UserId:              userId,
		PlanId:              plan.Id,
		PlanNameSnapshot:    plan.Name,
		PeriodDays:          option.PeriodDays,
		BasePriceCents:      computation.BasePriceCents,
		PriceCents:          computation.FinalPriceCents,
		DiscountAmountCents: computation.DiscountAmountCents,
		Currency:            option.Currency,
		PaymentMethod:       entity.PaymentMethod(req.PaymentMethod),
		Status:              entity.PurchaseStatusPending,
		BuyerFullName:       req.BuyerFullName,
		BuyerEmail:          req.BuyerEmail,
		BuyerPhone:          req.BuyerPhone,
		InvoiceNeeded:       req.InvoiceNeeded,
		CompanyName:         req.CompanyName,
		CompanyCode:         req.CompanyCode,
		VatCode:             req.VatCode,
		ExtraNotes:          req.ExtraNotes,
	}
	if computation.Applied != nil {
		purchase.DiscountLabel = &computation.Applied.Label
		purchase.DiscountCode = computation.Applied.Code
	}

	// Step 5: freeze the plan's current meals as immutable purchase items.
	purchase.Items = snapshotMeals(plan.Meals)

	if err := uow.PurchaseRepository().Create(ctx, purchase); err != nil {
		return nil, apperror.Internal(err)
	}

	// Step 6: simulated payment always succeeds once validated.
	paidAt := time.Now().UTC()
	reference := transactionReference(purchase.Id, paidAt)
	purchase.Status = entity.PurchaseStatusPaid
	purchase.PaidAt = &paidAt
	purchase.TransactionReference = &reference

	// Step 7: render and attach the receipt document.
	receiptPath, err := s.receiptRenderer.Render(purchase, purchase.Items)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	purchase.ReceiptPath = &receiptPath

	if err := uow.PurchaseRepository().Update(ctx, purchase); err != nil {
		return nil, apperror.Internal(err)
	}

	// Step 8: create the survey schedule for the paid purchase.
	surveys := survey.BuildSchedule(purchase, paidAt)
	if err := uow.SurveyRepository().CreateBatch(ctx, surveys); err != nil {
		return nil, apperror.Internal(err)
	}

	// Step 9: make this the user's current plan if it is not already.
	if user.CurrentPlanId == nil || *user.CurrentPlanId != plan.Id {
		if err := uow.UserRepository().UpdateCurrentPlan(ctx, userId, &plan.Id); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("checkout", "purchase completed", map[string]interface{}{
		"purchase_id": purchase.Id.String(),
		"user_id":     userId.String(),
		"plan_id":     plan.Id.String(),
		"price_cents": purchase.PriceCents,
	})

	if s.publisher != nil {
		if err := s.publisher.PublishPurchasePaid(ctx, dto.PurchasePaidMessage{
			PurchaseId: purchase.Id,
			UserId:     userId,
		}); err != nil {
			s.logger.Warn("checkout", "failed to publish purchase event", map[string]interface{}{
				"purchase_id": purchase.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	response := toPurchaseSummary(purchase)
	return &response, nil
}

func validatePaymentDetails(req *dto.CheckoutRequest) error {
	if entity.PaymentMethod(req.PaymentMethod) != entity.PaymentMethodCard {
		return nil
	}

	if req.CardNumber == nil || req.CardExpMonth == nil || req.CardExpYear == nil || req.CardCvc == nil {
		return apperror.Validation("kortelės mokėjimui būtina pateikti visus kortelės duomenis")
	}

	digits := 0
	for _, ch := range *req.CardNumber {
		if ch >= '0' && ch <= '9' {
			digits++
		}
	}
	if digits != 15 && digits != 16 {
		return apperror.Validation("kortelės numeris turi būti 15 arba 16 skaitmenų")
	}

	if cvcLen := len(*req.CardCvc); cvcLen != 3 && cvcLen != 4 {
		return apperror.Validation("CVC kodas turi būti 3 arba 4 skaitmenų")
	}

	return nil
}

// snapshotMeals copies the plan's meals ordered by day-of-week, meal type,
// then id so receipts render deterministically.
func snapshotMeals(meals []entity.PlanMeal) []entity.PurchaseItem {
	ordered := make([]entity.PlanMeal, len(meals))
	copy(ordered, meals)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].DayOfWeek != ordered[j].DayOfWeek {
			return ordered[i].DayOfWeek < ordered[j].DayOfWeek
		}
		if ordered[i].MealType != ordered[j].MealType {
			return ordered[i].MealType < ordered[j].MealType
		}
		return ordered[i].Id.String() < ordered[j].Id.String()
	})

	items := make([]entity.PurchaseItem, 0, len(ordered))
	for _, meal := range ordered {
		items = append(items, entity.PurchaseItem{
			DayOfWeek:       meal.DayOfWeek,
			MealType:        meal.MealType,
			MealTitle:       meal.Title,
			MealDescription: meal.Description,
			Calories:        meal.Calories,
			ProteinGrams:    meal.ProteinGrams,
			CarbsGrams:      meal.CarbsGrams,
			FatsGrams:       meal.FatsGrams,
		})
	}
	return items
}

// transactionReference derives a synthetic payment reference from the
// purchase id digits and the paid time, e.g. SIM-493021-153045.
func transactionReference(id uuid.UUID, paidAt time.Time) string {
	var digits strings.Builder
	for _, ch := range id.String() {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
			if digits.Len() == 6 {
				break
			}
		}
	}
	padded := digits.String()
	for len(padded) < 6 {
		padded += "0"
	}
	return fmt.Sprintf("SIM-%s-%s", padded, paidAt.Format("150405"))
}
