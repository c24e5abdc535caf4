package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Verificación en compilación de que las vistas cubren todos los puertos.
var (
	_ repository.CustomerRepository = (*customerRepoView)(nil)
	_ repository.ProductRepository  = (*productRepoView)(nil)
	_ repository.OrderRepository    = (*orderRepoView)(nil)
	_ usecase.OrderTxRunner         = (*fakeStore)(nil)
)

// fakeStore almacén en memoria para los tests de casos de uso. Conserva el
// orden de inserción, igual que el listado por defecto de la base. Cada
// repositorio se expone como una vista sobre el mismo estado compartido.
// RunOrder ejecuta el callback directamente: la atomicidad real se prueba
// en la capa postgres.
type fakeStore struct {
	mu sync.Mutex

	customers     map[string]*entity.Customer
	customerOrder []string
	products      map[string]*entity.Product
	productOrder  []string
	orders        map[string]*entity.Order
	orderOrder    []string
	orderProducts map[string][]string // orderID -> productIDs asociados, sin repetidos

	failCreateCustomer error // si no es nil, Create de cliente falla con este error
	failCreateOrder    error
	failAddProduct     error
	failList           error

	lastCustomerFilter *repository.CustomerFilter
	lastProductFilter  *repository.ProductFilter
	lastOrderFilter    *repository.OrderFilter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers:     make(map[string]*entity.Customer),
		products:      make(map[string]*entity.Product),
		orders:        make(map[string]*entity.Order),
		orderProducts: make(map[string][]string),
	}
}

func (s *fakeStore) Customers() *customerRepoView { return &customerRepoView{s} }
func (s *fakeStore) Products() *productRepoView   { return &productRepoView{s} }
func (s *fakeStore) Orders() *orderRepoView       { return &orderRepoView{s} }

func (s *fakeStore) RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(&orderRepoView{s})
}

// ── Vista de clientes ─────────────────────────────────────────────────────────

type customerRepoView struct{ s *fakeStore }

func (v *customerRepoView) Create(ctx context.Context, customer *entity.Customer) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if v.s.failCreateCustomer != nil {
		return v.s.failCreateCustomer
	}
	cp := *customer
	v.s.customers[customer.ID] = &cp
	v.s.customerOrder = append(v.s.customerOrder, customer.ID)
	return nil
}

func (v *customerRepoView) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	c, ok := v.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (v *customerRepoView) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, id := range v.s.customerOrder {
		if v.s.customers[id].Email == email {
			cp := *v.s.customers[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (v *customerRepoView) List(ctx context.Context, filter *repository.CustomerFilter) ([]*entity.Customer, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.lastCustomerFilter = filter
	if v.s.failList != nil {
		return nil, v.s.failList
	}
	out := make([]*entity.Customer, 0, len(v.s.customerOrder))
	for _, id := range v.s.customerOrder {
		cp := *v.s.customers[id]
		out = append(out, &cp)
	}
	return out, nil
}

// ── Vista de productos ────────────────────────────────────────────────────────

type productRepoView struct{ s *fakeStore }

func (v *productRepoView) Create(ctx context.Context, product *entity.Product) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	cp := *product
	v.s.products[product.ID] = &cp
	v.s.productOrder = append(v.s.productOrder, product.ID)
	return nil
}

func (v *productRepoView) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	p, ok := v.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (v *productRepoView) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.lastProductFilter = filter
	if v.s.failList != nil {
		return nil, v.s.failList
	}
	out := make([]*entity.Product, 0, len(v.s.productOrder))
	for _, id := range v.s.productOrder {
		cp := *v.s.products[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (v *productRepoView) ListByOrderID(ctx context.Context, orderID string) ([]*entity.Product, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	assoc := v.s.orderProducts[orderID]
	out := make([]*entity.Product, 0, len(assoc))
	for _, id := range v.s.productOrder {
		for _, pid := range assoc {
			if pid == id {
				cp := *v.s.products[id]
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

// ── Vista de órdenes ──────────────────────────────────────────────────────────

type orderRepoView struct{ s *fakeStore }

func (v *orderRepoView) Create(ctx context.Context, order *entity.Order) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if v.s.failCreateOrder != nil {
		return v.s.failCreateOrder
	}
	cp := *order
	v.s.orders[order.ID] = &cp
	v.s.orderOrder = append(v.s.orderOrder, order.ID)
	return nil
}

func (v *orderRepoView) AddProduct(ctx context.Context, orderID, productID string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if v.s.failAddProduct != nil {
		return v.s.failAddProduct
	}
	for _, pid := range v.s.orderProducts[orderID] {
		if pid == productID {
			return nil // par repetido: se conserva una sola fila
		}
	}
	v.s.orderProducts[orderID] = append(v.s.orderProducts[orderID], productID)
	return nil
}

func (v *orderRepoView) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	o, ok := v.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (v *orderRepoView) List(ctx context.Context, filter *repository.OrderFilter) ([]*entity.Order, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.lastOrderFilter = filter
	if v.s.failList != nil {
		return nil, v.s.failList
	}
	out := make([]*entity.Order, 0, len(v.s.orderOrder))
	for _, id := range v.s.orderOrder {
		cp := *v.s.orders[id]
		out = append(out, &cp)
	}
	return out, nil
}
