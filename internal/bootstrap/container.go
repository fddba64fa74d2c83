package bootstrap

import (
	"log"

	"drivetube-be/internal/config"
	"drivetube-be/internal/controller"
	"drivetube-be/internal/pkg/logger"
	"drivetube-be/internal/pkg/mailer"
	"drivetube-be/internal/repository/unitofwork"
	"drivetube-be/internal/service"
	"drivetube-be/pkg/payment/card"
	"drivetube-be/pkg/payment/crypto"

	pktNats "drivetube-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const accessDecisionTopic = "ACCESS_DECISION_MAIL"

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	UserController          controller.IUserController
	PlanController          controller.IPlanController
	SubscriptionController  controller.ISubscriptionController
	CourseController        controller.ICourseController
	AccessRequestController controller.IAccessRequestController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
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

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Payment Rails
	cryptoService := crypto.NewService(crypto.Config{
		WalletAddress:  cfg.Crypto.WalletAddress,
		Network:        cfg.Crypto.Network,
		TanosAPIURL:    cfg.Crypto.TanosAPIURL,
		ExplorerAPIURL: cfg.Crypto.ExplorerAPIURL,
		ExplorerAPIKey: cfg.Crypto.ExplorerAPIKey,
	}, sysLogger)

	cardService := card.NewService(card.Config{
		ServerKey: cfg.Midtrans.ServerKey,
		IsProd:    cfg.Midtrans.IsProd,
		FinishURL: cfg.App.ClientURL,
	})

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, accessDecisionTopic)
	consumerService := service.NewConsumerService(pubSub, accessDecisionTopic, emailService)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	planService := service.NewPlanService(uowFactory)
	subscriptionService := service.NewSubscriptionService(uowFactory, cryptoService, cardService, natsPub)
	courseService := service.NewCourseService(uowFactory)
	accessRequestService := service.NewAccessRequestService(uowFactory, publisherService, natsPub)

	// 5. Controllers
	return &Container{
		AuthController:          controller.NewAuthController(authService, oauthService),
		UserController:          controller.NewUserController(userService),
		PlanController:          controller.NewPlanController(planService),
		SubscriptionController:  controller.NewSubscriptionController(subscriptionService),
		CourseController:        controller.NewCourseController(courseService),
		AccessRequestController: controller.NewAccessRequestController(accessRequestService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
