package service

import (
	"context"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/logger"
	"koriel-backend/internal/repository"

	"github.com/google/uuid"
)

type stockService struct {
	stockRepo repository.StockRepository
}

func NewStockService(stockRepo repository.StockRepository) StockService {
	return &stockService{stockRepo: stockRepo}
}

func (s *stockService) ApplyMovement(ctx context.Context, in ApplyMovementInput) (*domain.StockMovement, error) {
	if in.WarehouseID == 0 {
		return nil, &domain.ValidationError{Field: "warehouse_id", Reason: "must not be empty"}
	}
	if in.ProductID == 0 {
		return nil, &domain.ValidationError{Field: "product_id", Reason: "must not be empty"}
	}
	if in.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be greater than zero"}
	}
	if in.Kind != domain.MovementKindIn && in.Kind != domain.MovementKindOut {
		return nil, &domain.ValidationError{Field: "kind", Reason: "must be IN or OUT"}
	}
	if in.Actor == "" {
		return nil, &domain.ValidationError{Field: "actor", Reason: "must not be empty"}
	}

	key := in.IdempotencyKey
	if key == "" {
		key = uuid.New().String()
	}

	mv := &domain.StockMovement{
		WarehouseID:    in.WarehouseID,
		ProductID:      in.ProductID,
		Kind:           in.Kind,
		Quantity:       in.Quantity,
		Reason:         in.Reason,
		Actor:          in.Actor,
		IdempotencyKey: key,
	}
	if err := s.stockRepo.ApplyMovement(ctx, mv); err != nil {
		return nil, err
	}

	logger.Info("Stock movement applied", "movement_id", mv.ID, "warehouse_id", mv.WarehouseID,
		"product_id", mv.ProductID, "kind", mv.Kind, "quantity", mv.Quantity, "actor", mv.Actor)
	return mv, nil
}

func (s *stockService) GetBalance(ctx context.Context, warehouseID, productID int32) (int32, error) {
	return s.stockRepo.GetBalance(ctx, warehouseID, productID)
}

func (s *stockService) ListBalances(ctx context.Context, warehouseID int32) ([]domain.StockBalance, error) {
	return s.stockRepo.ListBalances(ctx, warehouseID)
}

func (s *stockService) ListMovements(ctx context.Context, f repository.MovementFilter) ([]domain.StockMovement, error) {
	return s.stockRepo.ListMovements(ctx, f)
}

func (s *stockService) CreateWarehouse(ctx context.Context, name, location string) (*domain.Warehouse, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	w := &domain.Warehouse{Name: name, Location: location}
	if err := s.stockRepo.CreateWarehouse(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *stockService) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	return s.stockRepo.ListWarehouses(ctx)
}
