package mapper

import (
	"drivetube-be/internal/entity"
	"drivetube-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) PlanToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:        p.Id,
		Name:      p.Name,
		Price:     p.Price,
		Interval:  entity.PlanInterval(p.Interval),
		Features:  p.Features,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:        p.Id,
		Name:      p.Name,
		Price:     p.Price,
		Interval:  string(p.Interval),
		Features:  p.Features,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:            s.Id,
		UserId:        s.UserId,
		PlanId:        s.PlanId,
		Status:        entity.SubscriptionStatus(s.Status),
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		LastPaymentId: s.LastPaymentId,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:            s.Id,
		UserId:        s.UserId,
		PlanId:        s.PlanId,
		Status:        string(s.Status),
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		LastPaymentId: s.LastPaymentId,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) PaymentToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:             p.Id,
		SubscriptionId: p.SubscriptionId,
		Amount:         p.Amount,
		Method:         entity.PaymentMethod(p.Method),
		Status:         entity.PaymentStatus(p.Status),
		WalletAddress:  p.WalletAddress,
		WalletExpires:  p.WalletExpires,
		TxId:           p.TxId,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) PaymentToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:             p.Id,
		SubscriptionId: p.SubscriptionId,
		Amount:         p.Amount,
		Method:         string(p.Method),
		Status:         string(p.Status),
		WalletAddress:  p.WalletAddress,
		WalletExpires:  p.WalletExpires,
		TxId:           p.TxId,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
