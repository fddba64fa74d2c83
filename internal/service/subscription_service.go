// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"drivetube-be/internal/dto"
	"drivetube-be/internal/entity"
	"drivetube-be/internal/pkg/apperr"
	"drivetube-be/internal/repository/specification"
	"drivetube-be/internal/repository/unitofwork"
	"drivetube-be/pkg/events"
	pktNats "drivetube-be/pkg/nats"
	"drivetube-be/pkg/payment/card"
	"drivetube-be/pkg/payment/crypto"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.CreateSubscriptionResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MySubscriptionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID) error
	ProcessPayment(ctx context.Context, userId uuid.UUID, paymentId uuid.UUID) (*dto.PaymentResponse, error)
	PaymentStatus(ctx context.Context, userId uuid.UUID, paymentId uuid.UUID) (*dto.PaymentStatusResponse, error)
	CheckAccess(ctx context.Context, userId uuid.UUID) (*dto.CheckAccessResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	cryptoService  crypto.IService
	cardService    card.IService
	eventPublisher *pktNats.Publisher
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	cryptoService crypto.IService,
	cardService card.IService,
	eventPublisher *pktNats.Publisher,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		cryptoService:  cryptoService,
		cardService:    cardService,
		eventPublisher: eventPublisher,
	}
}

func (s *subscriptionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.CreateSubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, apperr.NotFound(apperr.MsgPlanNotFound)
	}

	existing, err := uow.SubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(apperr.MsgSubscriptionExists)
	}

	method := entity.PaymentMethod(req.Method)
	if method == "" {
		method = entity.PaymentMethodCrypto
	}

	subscription := &entity.Subscription{
		Id:        uuid.New(),
		UserId:    userId,
		PlanId:    plan.Id,
		Status:    entity.SubscriptionStatusPending,
		StartDate: req.StartDate,
		EndDate:   plan.PeriodEnd(req.StartDate),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	payment := &entity.Payment{
		Id:             uuid.New(),
		SubscriptionId: subscription.Id,
		Amount:         plan.Price,
		Method:         method,
		Status:         entity.PaymentStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	resp := &dto.CreateSubscriptionResponse{}

	// Adapter intent first so the wallet fields land in the payment row.
	switch method {
	case entity.PaymentMethodCard:
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperr.Unauthorized(apperr.MsgUnauthorized)
		}
		intent, err := s.cardService.CreateTransaction(card.PaymentRequest{
			OrderId:       payment.Id.String(),
			Amount:        plan.Price,
			CustomerName:  user.Name,
			CustomerEmail: user.Email,
			ItemId:        plan.Id.String(),
			ItemName:      plan.Name,
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, apperr.MsgPaymentProcessFailed, err)
		}
		resp.RedirectURL = intent.RedirectURL
	default:
		intent, err := s.cryptoService.GeneratePayment(ctx, crypto.PaymentRequest{
			Amount:      plan.Price,
			Description: fmt.Sprintf("Assinatura %s", plan.Name),
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, apperr.MsgPaymentProcessFailed, err)
		}
		payment.WalletAddress = &intent.WalletAddress
		payment.WalletExpires = &intent.ExpiresAt
		payment.TxId = &intent.TxId
		resp.QRCode = intent.QRCode
		resp.ExpectedAmount = intent.ExpectedAmount
		resp.Currency = intent.Currency
		resp.Network = intent.Network
		resp.Simulated = intent.Simulated
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().Create(ctx, subscription); err != nil {
		return nil, err
	}
	if err := uow.SubscriptionRepository().CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "SUBSCRIPTION_CREATED", map[string]interface{}{
		"subscription_id": subscription.Id,
		"user_id":         userId,
		"plan_id":         plan.Id,
		"plan_name":       plan.Name,
		"amount":          plan.Price,
		"method":          string(method),
	})

	resp.Subscription = toSubscriptionResponse(subscription)
	resp.Payment = toPaymentResponse(payment)
	return resp, nil
}

func (s *subscriptionService) Me(ctx context.Context, userId uuid.UUID) (*dto.MySubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, apperr.NotFound(apperr.MsgSubscriptionNotFound)
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: subscription.PlanId})
	if err != nil {
		return nil, err
	}

	payments, err := uow.SubscriptionRepository().FindAllPayments(ctx,
		specification.Filter("subscription_id", subscription.Id),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 5, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.MySubscriptionResponse{
		Subscription: toSubscriptionResponse(subscription),
		Payments:     make([]dto.PaymentResponse, len(payments)),
	}
	if plan != nil {
		resp.Plan = dto.PlanResponse{
			Id:       plan.Id,
			Name:     plan.Name,
			Price:    plan.Price,
			Interval: string(plan.Interval),
			Features: plan.Features,
		}
	}
	for i, payment := range payments {
		resp.Payments[i] = toPaymentResponse(payment)
	}
	return resp, nil
}

func (s *subscriptionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, apperr.NotFound(apperr.MsgSubscriptionNotFound)
	}

	if req.PlanId != nil {
		plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: *req.PlanId})
		if err != nil {
			return nil, err
		}
		if plan == nil || !plan.IsActive {
			return nil, apperr.NotFound(apperr.MsgPlanNotFound)
		}
		subscription.PlanId = plan.Id
	}
	subscription.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().Update(ctx, subscription); err != nil {
		return nil, err
	}

	resp := toSubscriptionResponse(subscription)
	return &resp, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if subscription == nil {
		return apperr.NotFound(apperr.MsgSubscriptionNotFound)
	}

	// Deliberately unconditional: canceling an already-canceled subscription
	// re-applies the same update.
	subscription.Status = entity.SubscriptionStatusCanceled
	subscription.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().Update(ctx, subscription); err != nil {
		return err
	}

	s.publishEvent(ctx, "SUBSCRIPTION_CANCELED", map[string]interface{}{
		"subscription_id": subscription.Id,
		"user_id":         userId,
	})

	return nil
}

func (s *subscriptionService) ProcessPayment(ctx context.Context, userId uuid.UUID, paymentId uuid.UUID) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.SubscriptionRepository().FindOnePayment(ctx, specification.ByID{ID: paymentId})
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperr.NotFound(apperr.MsgPaymentNotFound)
	}

	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: payment.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, apperr.NotFound(apperr.MsgSubscriptionNotFound)
	}

	// Ownership is checked before any state changes.
	if err := authorizeOwner(subscription.UserId, userId); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	payment.Status = entity.PaymentStatusCompleted
	payment.UpdatedAt = time.Now()
	if err := uow.SubscriptionRepository().UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}

	// Activation does not re-derive endDate from the payment time.
	subscription.Status = entity.SubscriptionStatusActive
	subscription.LastPaymentId = &payment.Id
	subscription.UpdatedAt = time.Now()
	if err := uow.SubscriptionRepository().Update(ctx, subscription); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "PAYMENT_COMPLETED", map[string]interface{}{
		"payment_id":      payment.Id,
		"subscription_id": subscription.Id,
		"user_id":         userId,
		"amount":          payment.Amount,
	})

	resp := toPaymentResponse(payment)
	return &resp, nil
}

func (s *subscriptionService) PaymentStatus(ctx context.Context, userId uuid.UUID, paymentId uuid.UUID) (*dto.PaymentStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.SubscriptionRepository().FindOnePayment(ctx, specification.ByID{ID: paymentId})
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperr.NotFound(apperr.MsgPaymentNotFound)
	}

	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: payment.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, apperr.NotFound(apperr.MsgSubscriptionNotFound)
	}
	if err := authorizeOwner(subscription.UserId, userId); err != nil {
		return nil, err
	}

	// Card payments are settled by the gateway callback; report the stored
	// status. Crypto payments get a live adapter check.
	if payment.Method != entity.PaymentMethodCrypto || payment.TxId == nil {
		return &dto.PaymentStatusResponse{Status: string(payment.Status)}, nil
	}

	status, err := s.cryptoService.CheckStatus(ctx, *payment.TxId, "")
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, apperr.MsgPaymentCheckFailed, err)
	}
	return &dto.PaymentStatusResponse{Status: string(status)}, nil
}

func (s *subscriptionService) CheckAccess(ctx context.Context, userId uuid.UUID) (*dto.CheckAccessResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return &dto.CheckAccessResponse{HasAccess: false}, nil
	}

	// Derived on every call; never persisted or cached.
	return &dto.CheckAccessResponse{HasAccess: subscription.HasAccess(time.Now())}, nil
}

func (s *subscriptionService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	// Events are auxiliary; a publish failure never fails the request.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toSubscriptionResponse(s *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		Id:            s.Id,
		UserId:        s.UserId,
		PlanId:        s.PlanId,
		Status:        string(s.Status),
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		LastPaymentId: s.LastPaymentId,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		Id:             p.Id,
		SubscriptionId: p.SubscriptionId,
		Amount:         p.Amount,
		Method:         string(p.Method),
		Status:         string(p.Status),
		WalletAddress:  p.WalletAddress,
		WalletExpires:  p.WalletExpires,
		TxId:           p.TxId,
	}
}
