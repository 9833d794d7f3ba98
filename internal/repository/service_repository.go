package repository

import (
	"context"
	"encoding/json"

	"repair-app/internal/models"
)

type ServiceRepository struct {
	store Store
}

func NewServiceRepository(store Store) *ServiceRepository {
	return &ServiceRepository{store: store}
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.store.Set(ctx, ServicePrefix+service.ID, service, 0)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	if err := r.store.Get(ctx, ServicePrefix+id, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.store.Set(ctx, ServicePrefix+service.ID, service, 0)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ServicePrefix+id)
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	raw, err := r.store.GetByPrefix(ctx, ServicePrefix)
	if err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(raw))
	for _, data := range raw {
		var service models.Service
		if err := json.Unmarshal(data, &service); err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}
