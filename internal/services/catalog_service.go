package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"repair-app/internal/models"
	"repair-app/internal/utils"
)

type CatalogRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Service, error)
}

// CatalogService — каталог услуг: список открыт всем, правки только админу.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	services, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sortServices(services)
	return services, nil
}

func (s *CatalogService) Create(ctx context.Context, actor Actor, input models.Service) (*models.Service, error) {
	if !Can(actor.Role, CatalogManage) {
		return nil, models.ErrForbidden
	}

	now := time.Now().UTC()
	service := &models.Service{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := utils.ValidateStruct(service); err != nil {
		return nil, models.ErrValidation
	}

	if err := s.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) Update(ctx context.Context, actor Actor, id string, upd models.ServiceUpdate) (*models.Service, error) {
	if !Can(actor.Role, CatalogManage) {
		return nil, models.ErrForbidden
	}

	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil && *upd.Name != "" {
		service.Name = *upd.Name
	}
	if upd.Description != nil {
		service.Description = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, models.ErrValidation
		}
		service.Price = *upd.Price
	}
	if upd.Category != nil {
		service.Category = *upd.Category
	}
	service.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) Delete(ctx context.Context, actor Actor, id string) error {
	if !Can(actor.Role, CatalogManage) {
		return models.ErrForbidden
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func sortServices(services []models.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].CreatedAt.Before(services[j].CreatedAt)
	})
}
