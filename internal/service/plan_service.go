package service

import (
	"context"
	"time"

	"drivetube-be/internal/dto"
	"drivetube-be/internal/repository/specification"
	"drivetube-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const planCacheKey = "plans:active"

type IPlanService interface {
	List(ctx context.Context) ([]*dto.PlanResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		// Plans are reference data; a short TTL keeps seed changes visible
		// without hitting the database on every storefront load.
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *planService) List(ctx context.Context) ([]*dto.PlanResponse, error) {
	if cached, found := s.cache.Get(planCacheKey); found {
		return cached.([]*dto.PlanResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "price", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlanResponse, len(plans))
	for i, plan := range plans {
		result[i] = &dto.PlanResponse{
			Id:       plan.Id,
			Name:     plan.Name,
			Price:    plan.Price,
			Interval: string(plan.Interval),
			Features: plan.Features,
		}
	}

	s.cache.Set(planCacheKey, result, gocache.DefaultExpiration)
	return result, nil
}
