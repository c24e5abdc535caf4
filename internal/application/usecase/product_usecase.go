package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso del CRM para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un producto nuevo. El precio se guarda como
// decimal exacto, sin pasar por float.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductInput) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidation("Name is required")
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidation("Price must be a positive number")
	}
	if in.Stock < 0 {
		return nil, domain.NewValidation("Stock must be a non-negative integer")
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos según el filtro; nil lista todo en orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context, filter *repository.ProductFilter) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListByOrder lista los productos asociados a una orden.
func (uc *ProductUseCase) ListByOrder(ctx context.Context, orderID string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}
