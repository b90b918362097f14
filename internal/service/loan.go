package service

import (
	"context"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/logger"
	"koriel-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type loanService struct {
	loanRepo   repository.LoanRepository
	clientRepo repository.ClientRepository
	prodRepo   repository.ProductRepository
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	clientRepo repository.ClientRepository,
	prodRepo repository.ProductRepository,
) LoanService {
	return &loanService{
		loanRepo:   loanRepo,
		clientRepo: clientRepo,
		prodRepo:   prodRepo,
	}
}

func (s *loanService) CreateLoan(ctx context.Context, in CreateLoanInput) (*domain.Loan, error) {
	if in.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be greater than zero"}
	}
	if in.UnitPrice.IsNegative() {
		return nil, &domain.ValidationError{Field: "unit_price", Reason: "must not be negative"}
	}
	if in.Actor == "" {
		return nil, &domain.ValidationError{Field: "actor", Reason: "must not be empty"}
	}
	if in.ClientID == 0 && in.NewClient == nil {
		return nil, &domain.ValidationError{Field: "client", Reason: "must not be empty"}
	}
	if in.ProductID == 0 && in.NewProduct == nil {
		return nil, &domain.ValidationError{Field: "product", Reason: "must not be empty"}
	}

	clientID := in.ClientID
	if in.NewClient != nil {
		if in.NewClient.Name == "" {
			return nil, &domain.ValidationError{Field: "client", Reason: "name must not be empty"}
		}
		client := &domain.Client{
			Name:      in.NewClient.Name,
			StoreName: in.NewClient.StoreName,
			Phone:     in.NewClient.Phone,
			Address:   in.NewClient.Address,
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return nil, err
		}
		clientID = client.ID
		logger.Info("Quick-created client during loan capture", "client_id", client.ID, "name", client.Name)
	} else if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	productID := in.ProductID
	if in.NewProduct != nil {
		if in.NewProduct.Name == "" {
			return nil, &domain.ValidationError{Field: "product", Reason: "name must not be empty"}
		}
		category := in.NewProduct.Category
		if category == "" {
			category = "Otros"
		}
		// A product created on the spot takes the loan's unit price as its
		// future base price, matching the quick-capture flow.
		basePrice := in.NewProduct.BasePrice
		if basePrice.IsZero() {
			basePrice = in.UnitPrice
		}
		product := &domain.Product{Name: in.NewProduct.Name, Category: category, BasePrice: basePrice}
		if err := s.prodRepo.Create(ctx, product); err != nil {
			return nil, err
		}
		productID = product.ID
		logger.Info("Quick-created product during loan capture", "product_id", product.ID, "name", product.Name)
	} else if _, err := s.prodRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	key := in.IdempotencyKey
	if key == "" {
		key = uuid.New().String()
	}

	loan := &domain.Loan{
		ClientID:        clientID,
		ProductID:       productID,
		Quantity:        in.Quantity,
		PendingQuantity: in.Quantity,
		UnitPrice:       in.UnitPrice,
		PendingTotal:    in.UnitPrice.Mul(decimal.NewFromInt32(in.Quantity)),
		Note:            in.Note,
		IdempotencyKey:  key,
		CreatedBy:       in.Actor,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	logger.Info("Loan created", "loan_id", loan.ID, "client_id", clientID, "product_id", productID,
		"quantity", loan.Quantity, "pending_total", loan.PendingTotal.String(), "actor", in.Actor)
	return loan, nil
}

func (s *loanService) GetLoan(ctx context.Context, id int32) (*domain.Loan, error) {
	return s.loanRepo.GetByID(ctx, id)
}

func (s *loanService) ListLoans(ctx context.Context, clientID int32, openOnly bool) ([]domain.Loan, error) {
	return s.loanRepo.ListByClient(ctx, clientID, openOnly)
}

func (s *loanService) ClientExposure(ctx context.Context, clientID int32) (*ClientExposureSummary, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.ListByClient(ctx, clientID, true)
	if err != nil {
		return nil, err
	}

	exposure := decimal.Zero
	for _, loan := range loans {
		exposure = exposure.Add(loan.PendingTotal)
	}
	return &ClientExposureSummary{Client: client, OpenLoans: loans, Exposure: exposure}, nil
}
