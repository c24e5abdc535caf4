package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema construye el esquema GraphQL completo de la API.
//
// Consultas: hello, customers/products/orders (todo, en orden de
// inserción) y allCustomers/allProducts/allOrders (filtro y orden
// opcionales). Mutaciones: createCustomer, bulkCreateCustomers,
// createProduct y createOrder.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	customerType := newCustomerType()
	productType := newProductType()
	orderType := newOrderType(r, customerType, productType)

	customerFilter := newCustomerFilterInput()
	productFilter := newProductFilterInput()
	orderFilter := newOrderFilterInput()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type:    graphql.String,
				Resolve: r.hello,
			},
			"customers": &graphql.Field{
				Type:    graphql.NewList(customerType),
				Resolve: r.listCustomers,
			},
			"products": &graphql.Field{
				Type:    graphql.NewList(productType),
				Resolve: r.listProducts,
			},
			"orders": &graphql.Field{
				Type:    graphql.NewList(orderType),
				Resolve: r.listOrders,
			},
			"allCustomers": &graphql.Field{
				Type: graphql.NewList(customerType),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: customerFilter},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.listAllCustomers,
			},
			"allProducts": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: productFilter},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.listAllProducts,
			},
			"allOrders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: orderFilter},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.listAllOrders,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: newCreateCustomerType(customerType),
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createCustomer,
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: newBulkCreateCustomersType(customerType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(JSONString))},
				},
				Resolve: r.bulkCreateCustomers,
			},
			"createProduct": &graphql.Field{
				Type: newCreateProductType(productType),
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"price": &graphql.ArgumentConfig{Type: graphql.NewNonNull(Decimal)},
					"stock": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: r.createProduct,
			},
			"createOrder": &graphql.Field{
				Type: newCreateOrderType(orderType),
				Args: graphql.FieldConfigArgument{
					"customerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"productIds": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
					"orderDate":  &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: r.createOrder,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
