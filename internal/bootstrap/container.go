package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fitbite-be/internal/config"
	"fitbite-be/internal/controller"
	"fitbite-be/internal/pkg/locker"
	"fitbite-be/internal/pkg/logger"
	"fitbite-be/internal/pkg/mailer"
	"fitbite-be/internal/repository/unitofwork"
	"fitbite-be/internal/service"
	"fitbite-be/pkg/discount"
	pkgNats "fitbite-be/pkg/nats"
	"fitbite-be/pkg/receipt"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	PlanController     controller.IPlanController
	PurchaseController controller.IPurchaseController
	SurveyController   controller.ISurveyController
	DiscountController controller.IDiscountController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	planCache := gocache.New(5*time.Minute, 10*time.Minute)
	checkoutLocker := locker.NewRedisLocker(rdb)
	receiptRenderer := receipt.NewFileRenderer(cfg.Media.Root)

	discountEngine := discount.NewEngine(
		cfg.Discounts.GenericCodes,
		cfg.Discounts.BirthdayCode,
		cfg.Discounts.BirthdayPercent,
		cfg.Discounts.FirstPurchasePercent,
	)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub)
	authService := service.NewAuthService(uowFactory, cfg.App.JWTSecret, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	planService := service.NewPlanService(uowFactory, planCache, sysLogger)
	checkoutService := service.NewCheckoutService(uowFactory, discountEngine, receiptRenderer, checkoutLocker, publisherService, sysLogger)
	purchaseService := service.NewPurchaseService(uowFactory, receiptRenderer, cfg.Media.Root, publisherService, sysLogger)
	surveyService := service.NewSurveyService(uowFactory, publisherService, sysLogger)
	discountService := service.NewDiscountService(cfg.Discounts)

	consumerService := service.NewConsumerService(pubSub, uowFactory, emailService, natsPub)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService),
		PlanController:     controller.NewPlanController(planService, checkoutService),
		PurchaseController: controller.NewPurchaseController(purchaseService),
		SurveyController:   controller.NewSurveyController(surveyService),
		DiscountController: controller.NewDiscountController(discountService),
		ConsumerService:    consumerService,
	}
}
