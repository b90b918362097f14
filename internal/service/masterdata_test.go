package service

import (
	"context"
	"testing"

	"koriel-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMasterDataService_Clients(t *testing.T) {
	ctx := context.Background()

	t.Run("Create requires a name", func(t *testing.T) {
		svc := NewMasterDataService(new(MockClientRepo), new(MockProductRepo))

		_, err := svc.CreateClient(ctx, NewClientInput{})
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Rename keeps the same id", func(t *testing.T) {
		clientRepo := new(MockClientRepo)
		svc := NewMasterDataService(clientRepo, new(MockProductRepo))

		clientRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Client) bool {
			return c.ID == 1 && c.Name == "Rosa Nueva"
		})).Return(nil)

		client, err := svc.UpdateClient(ctx, 1, NewClientInput{Name: "Rosa Nueva"})
		assert.NoError(t, err)
		assert.Equal(t, int32(1), client.ID)
		clientRepo.AssertExpectations(t)
	})

	t.Run("Update of unknown client surfaces not found", func(t *testing.T) {
		clientRepo := new(MockClientRepo)
		svc := NewMasterDataService(clientRepo, new(MockProductRepo))

		clientRepo.On("Update", ctx, mock.Anything).Return(domain.ErrNotFound)

		_, err := svc.UpdateClient(ctx, 99, NewClientInput{Name: "Nadie"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMasterDataService_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("Category defaults to Otros", func(t *testing.T) {
		prodRepo := new(MockProductRepo)
		svc := NewMasterDataService(new(MockClientRepo), prodRepo)

		prodRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Category == "Otros"
		})).Return(nil)

		product, err := svc.CreateProduct(ctx, NewProductInput{Name: "Queso", BasePrice: decimal.RequireFromString("2.00")})
		assert.NoError(t, err)
		assert.Equal(t, "Otros", product.Category)
	})

	t.Run("Negative base price is rejected", func(t *testing.T) {
		svc := NewMasterDataService(new(MockClientRepo), new(MockProductRepo))

		_, err := svc.CreateProduct(ctx, NewProductInput{Name: "Queso", BasePrice: decimal.RequireFromString("-1")})
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "base_price", verr.Field)
	})
}
