package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/crm-api/internal/application/dto"
)

// newCustomerType tipo GraphQL de un cliente. phone es null cuando el
// cliente no lo informó.
func newCustomerType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CustomerType",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})
}

// newProductType tipo GraphQL de un producto.
func newProductType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "ProductType",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":     &graphql.Field{Type: graphql.NewNonNull(Decimal)},
			"stock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})
}

// newOrderType tipo GraphQL de una orden. Las relaciones customer y
// products se resuelven bajo demanda contra los casos de uso.
func newOrderType(r *Resolver, customerType, productType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderType",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"customer": &graphql.Field{
				Type: customerType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					order, ok := p.Source.(*dto.OrderResponse)
					if !ok {
						return nil, nil
					}
					customer, err := r.customers.GetByID(p.Context, order.CustomerID)
					if err != nil {
						return nil, r.fail("Order.customer", err)
					}
					return customer, nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					order, ok := p.Source.(*dto.OrderResponse)
					if !ok {
						return nil, nil
					}
					products, err := r.products.ListByOrder(p.Context, order.ID)
					if err != nil {
						return nil, r.fail("Order.products", err)
					}
					return products, nil
				},
			},
			"totalAmount": &graphql.Field{Type: graphql.NewNonNull(Decimal)},
			"orderDate":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})
}

// newCustomerFilterInput criterios opcionales de allCustomers.
func newCustomerFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nameContains":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"emailContains":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"phoneStartsWith": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"createdAtGte":    &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"createdAtLte":    &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})
}

// newProductFilterInput criterios opcionales de allProducts.
func newProductFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nameContains": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"priceGte":     &graphql.InputObjectFieldConfig{Type: Decimal},
			"priceLte":     &graphql.InputObjectFieldConfig{Type: Decimal},
			"stockGte":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"stockLte":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
}

// newOrderFilterInput criterios opcionales de allOrders. customerName,
// productName y productId filtran a través de las relaciones.
func newOrderFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"totalAmountGte": &graphql.InputObjectFieldConfig{Type: Decimal},
			"totalAmountLte": &graphql.InputObjectFieldConfig{Type: Decimal},
			"orderDateGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"orderDateLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"customerName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"productName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"productId":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})
}

// createCustomerPayload resultado de createCustomer.
type createCustomerPayload struct {
	Customer *dto.CustomerResponse `json:"customer"`
	Message  string                `json:"message"`
}

func newCreateCustomerType(customerType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomer",
		Fields: graphql.Fields{
			"customer": &graphql.Field{Type: customerType},
			"message":  &graphql.Field{Type: graphql.String},
		},
	})
}

func newBulkCreateCustomersType(customerType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomers",
		Fields: graphql.Fields{
			"customers": &graphql.Field{Type: graphql.NewList(customerType)},
			"errors":    &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})
}

// createProductPayload resultado de createProduct.
type createProductPayload struct {
	Product *dto.ProductResponse `json:"product"`
}

func newCreateProductType(productType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProduct",
		Fields: graphql.Fields{
			"product": &graphql.Field{Type: productType},
		},
	})
}

// createOrderPayload resultado de createOrder.
type createOrderPayload struct {
	Order *dto.OrderResponse `json:"order"`
}

func newCreateOrderType(orderType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrder",
		Fields: graphql.Fields{
			"order": &graphql.Field{Type: orderType},
		},
	})
}
