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

// OrderUseCase casos de uso del CRM para órdenes. La creación cruza
// clientes, productos y la asociación orden-producto, por eso recibe ambos
// repos de lectura y un runner transaccional para la escritura.
type OrderUseCase struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	txRunner     OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	txRunner OrderTxRunner,
) *OrderUseCase {
	return &OrderUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		txRunner:     txRunner,
	}
}

// Create valida las referencias y persiste la orden con sus asociaciones en
// una sola transacción. El total es la suma decimal de los precios de los
// productos referenciados; un ID repetido suma su precio cada vez que
// aparece, aunque la asociación guarda una sola fila por par.
//
// Orden de validación: primero el cliente, luego lista vacía, luego cada
// producto en el orden recibido (la primera referencia inválida corta).
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderInput) (*dto.OrderResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound("Invalid customer ID")
	}
	if len(in.ProductIDs) == 0 {
		return nil, domain.NewValidation("At least one product must be selected")
	}

	total := decimal.Zero
	for _, pid := range in.ProductIDs {
		product, err := uc.productRepo.GetByID(ctx, pid)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NewNotFoundf("Invalid product ID: %s", pid)
		}
		total = total.Add(product.Price)
	}

	now := time.Now()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	order := &entity.Order{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		TotalAmount: total,
		OrderDate:   orderDate,
		CreatedAt:   now,
	}

	err = uc.txRunner.RunOrder(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		for _, pid := range in.ProductIDs {
			if err := orders.AddProduct(ctx, order.ID, pid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista órdenes según el filtro; nil lista todo en orden de inserción.
func (uc *OrderUseCase) List(ctx context.Context, filter *repository.OrderFilter) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
		CreatedAt:   o.CreatedAt,
	}
}
