package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// CustomerService implements port.CustomerUseCase.
type CustomerService struct {
	repo port.CustomerRepository
}

func NewCustomerService(repo port.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(ctx context.Context, archived bool) ([]domain.Customer, error) {
	return s.repo.List(ctx, archived)
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) error {
	if c.Name == "" {
		return errors.New("customer name is required")
	}
	if c.Email == "" {
		return errors.New("customer email is required")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return s.repo.Create(ctx, c)
}

func (s *CustomerService) Update(ctx context.Context, c *domain.Customer) error {
	return s.repo.Update(ctx, c)
}

// Delete removes the customer and, through ownership, all of its
// installments, hosting records and campaigns.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *CustomerService) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	return s.repo.SetArchived(ctx, id, archived)
}
