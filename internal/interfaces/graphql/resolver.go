package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Resolver reúne los casos de uso que sirven las operaciones del esquema.
type Resolver struct {
	customers *usecase.CustomerUseCase
	products  *usecase.ProductUseCase
	orders    *usecase.OrderUseCase
	log       *logger.Logger
}

// NewResolver construye el resolver.
func NewResolver(
	customers *usecase.CustomerUseCase,
	products *usecase.ProductUseCase,
	orders *usecase.OrderUseCase,
	log *logger.Logger,
) *Resolver {
	return &Resolver{customers: customers, products: products, orders: orders, log: log}
}

// fail registra la falla y devuelve su representación de protocolo.
// Las fallas internas se loguean con el error completo; las esperadas
// (validación, conflicto, referencia inexistente) solo en debug.
func (r *Resolver) fail(op string, err error) error {
	if domain.KindOf(err) == domain.KindInternal {
		r.log.Error().Err(err).Str("operation", op).Msg("operación fallida")
	} else {
		r.log.Debug().Err(err).Str("operation", op).Msg("operación rechazada")
	}
	return toAPIError(err)
}

// hello consulta de humo del endpoint.
func (r *Resolver) hello(graphql.ResolveParams) (interface{}, error) {
	return "Hello, GraphQL!", nil
}

// customers lista todos los clientes en orden de inserción.
func (r *Resolver) listCustomers(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.customers.List(p.Context, nil)
	if err != nil {
		return nil, r.fail("customers", err)
	}
	return list, nil
}

// allCustomers lista clientes con filtro y orden opcionales.
func (r *Resolver) listAllCustomers(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.customers.List(p.Context, customerFilterArg(p.Args))
	if err != nil {
		return nil, r.fail("allCustomers", err)
	}
	return list, nil
}

// products lista todos los productos en orden de inserción.
func (r *Resolver) listProducts(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.products.List(p.Context, nil)
	if err != nil {
		return nil, r.fail("products", err)
	}
	return list, nil
}

// allProducts lista productos con filtro y orden opcionales.
func (r *Resolver) listAllProducts(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.products.List(p.Context, productFilterArg(p.Args))
	if err != nil {
		return nil, r.fail("allProducts", err)
	}
	return list, nil
}

// orders lista todas las órdenes en orden de inserción.
func (r *Resolver) listOrders(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.orders.List(p.Context, nil)
	if err != nil {
		return nil, r.fail("orders", err)
	}
	return list, nil
}

// allOrders lista órdenes con filtro y orden opcionales.
func (r *Resolver) listAllOrders(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.orders.List(p.Context, orderFilterArg(p.Args))
	if err != nil {
		return nil, r.fail("allOrders", err)
	}
	return list, nil
}

// createCustomer mutación createCustomer.
func (r *Resolver) createCustomer(p graphql.ResolveParams) (interface{}, error) {
	in := dto.CreateCustomerInput{
		Name:  stringArg(p.Args, "name"),
		Email: stringArg(p.Args, "email"),
		Phone: stringArg(p.Args, "phone"),
	}
	customer, err := r.customers.Create(p.Context, in)
	if err != nil {
		return nil, r.fail("createCustomer", err)
	}
	return createCustomerPayload{
		Customer: customer,
		Message:  "Customer created successfully",
	}, nil
}

// bulkCreateCustomers mutación bulkCreateCustomers: cada fila llega como
// JSONString y se procesa de forma aislada.
func (r *Resolver) bulkCreateCustomers(p graphql.ResolveParams) (interface{}, error) {
	rows, _ := p.Args["input"].([]interface{})
	in := make([]dto.CreateCustomerInput, 0, len(rows))
	for _, row := range rows {
		m, _ := row.(map[string]interface{})
		in = append(in, dto.CreateCustomerInput{
			Name:  stringArg(m, "name"),
			Email: stringArg(m, "email"),
			Phone: stringArg(m, "phone"),
		})
	}
	result, err := r.customers.BulkCreate(p.Context, in)
	if err != nil {
		return nil, r.fail("bulkCreateCustomers", err)
	}
	return result, nil
}

// createProduct mutación createProduct.
func (r *Resolver) createProduct(p graphql.ResolveParams) (interface{}, error) {
	price, _ := decimalArg(p.Args, "price")
	in := dto.CreateProductInput{
		Name:  stringArg(p.Args, "name"),
		Price: price,
		Stock: intArg(p.Args, "stock", 0),
	}
	product, err := r.products.Create(p.Context, in)
	if err != nil {
		return nil, r.fail("createProduct", err)
	}
	return createProductPayload{Product: product}, nil
}

// createOrder mutación createOrder.
func (r *Resolver) createOrder(p graphql.ResolveParams) (interface{}, error) {
	in := dto.CreateOrderInput{
		CustomerID: stringArg(p.Args, "customerId"),
		ProductIDs: idListArg(p.Args, "productIds"),
		OrderDate:  timeArg(p.Args, "orderDate"),
	}
	order, err := r.orders.Create(p.Context, in)
	if err != nil {
		return nil, r.fail("createOrder", err)
	}
	return createOrderPayload{Order: order}, nil
}

// ───────────────────────────── helpers de argumentos ─────────────────────────────

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(int); ok {
		return v
	}
	return def
}

func timeArg(args map[string]interface{}, key string) *time.Time {
	if v, ok := args[key].(time.Time); ok {
		return &v
	}
	return nil
}

func decimalArg(args map[string]interface{}, key string) (decimal.Decimal, bool) {
	if v, ok := args[key].(decimal.Decimal); ok {
		return v, true
	}
	return decimal.Decimal{}, false
}

func decimalPtrArg(args map[string]interface{}, key string) *decimal.Decimal {
	if v, ok := args[key].(decimal.Decimal); ok {
		return &v
	}
	return nil
}

func intPtrArg(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}

func idListArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// customerFilterArg arma el filtro de clientes desde los argumentos.
func customerFilterArg(args map[string]interface{}) *repository.CustomerFilter {
	f := &repository.CustomerFilter{OrderBy: stringArg(args, "orderBy")}
	if m, ok := args["filter"].(map[string]interface{}); ok {
		f.NameContains = stringArg(m, "nameContains")
		f.EmailContains = stringArg(m, "emailContains")
		f.PhoneStartsWith = stringArg(m, "phoneStartsWith")
		f.CreatedAtGte = timeArg(m, "createdAtGte")
		f.CreatedAtLte = timeArg(m, "createdAtLte")
	}
	return f
}

// productFilterArg arma el filtro de productos desde los argumentos.
func productFilterArg(args map[string]interface{}) *repository.ProductFilter {
	f := &repository.ProductFilter{OrderBy: stringArg(args, "orderBy")}
	if m, ok := args["filter"].(map[string]interface{}); ok {
		f.NameContains = stringArg(m, "nameContains")
		f.PriceGte = decimalPtrArg(m, "priceGte")
		f.PriceLte = decimalPtrArg(m, "priceLte")
		f.StockGte = intPtrArg(m, "stockGte")
		f.StockLte = intPtrArg(m, "stockLte")
	}
	return f
}

// orderFilterArg arma el filtro de órdenes desde los argumentos.
func orderFilterArg(args map[string]interface{}) *repository.OrderFilter {
	f := &repository.OrderFilter{OrderBy: stringArg(args, "orderBy")}
	if m, ok := args["filter"].(map[string]interface{}); ok {
		f.TotalAmountGte = decimalPtrArg(m, "totalAmountGte")
		f.TotalAmountLte = decimalPtrArg(m, "totalAmountLte")
		f.OrderDateGte = timeArg(m, "orderDateGte")
		f.OrderDateLte = timeArg(m, "orderDateLte")
		f.CustomerName = stringArg(m, "customerName")
		f.ProductName = stringArg(m, "productName")
		f.ProductID = stringArg(m, "productId")
	}
	return f
}
