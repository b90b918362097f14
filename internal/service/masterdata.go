package service

import (
	"context"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
)

type masterDataService struct {
	clientRepo repository.ClientRepository
	prodRepo   repository.ProductRepository
}

func NewMasterDataService(
	clientRepo repository.ClientRepository,
	prodRepo repository.ProductRepository,
) MasterDataService {
	return &masterDataService{clientRepo: clientRepo, prodRepo: prodRepo}
}

func (s *masterDataService) CreateClient(ctx context.Context, in NewClientInput) (*domain.Client, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c := &domain.Client{Name: in.Name, StoreName: in.StoreName, Phone: in.Phone, Address: in.Address}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateClient rewrites client metadata. Ledger rows reference the client by
// its surrogate id, so a rename touches exactly one row.
func (s *masterDataService) UpdateClient(ctx context.Context, id int32, in NewClientInput) (*domain.Client, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c := &domain.Client{ID: id, Name: in.Name, StoreName: in.StoreName, Phone: in.Phone, Address: in.Address}
	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *masterDataService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *masterDataService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *masterDataService) CreateProduct(ctx context.Context, in NewProductInput) (*domain.Product, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.BasePrice.IsNegative() {
		return nil, &domain.ValidationError{Field: "base_price", Reason: "must not be negative"}
	}
	category := in.Category
	if category == "" {
		category = "Otros"
	}
	p := &domain.Product{Name: in.Name, Category: category, BasePrice: in.BasePrice}
	if err := s.prodRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *masterDataService) UpdateProduct(ctx context.Context, id int32, in NewProductInput) (*domain.Product, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.BasePrice.IsNegative() {
		return nil, &domain.ValidationError{Field: "base_price", Reason: "must not be negative"}
	}
	p := &domain.Product{ID: id, Name: in.Name, Category: in.Category, BasePrice: in.BasePrice}
	if err := s.prodRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *masterDataService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.prodRepo.List(ctx)
}

func (s *masterDataService) GetProduct(ctx context.Context, id int32) (*domain.Product, error) {
	return s.prodRepo.GetByID(ctx, id)
}
