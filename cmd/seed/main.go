// seed puebla la base con datos de ejemplo del CRM (clientes, productos y
// una orden) usando los mismos casos de uso que la API. Si la base ya tiene
// clientes no hace nada, es seguro ejecutarlo varias veces.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar migraciones: %v\n", err)
		os.Exit(1)
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(customerRepo, productRepo, orderRepo, txRunner)

	existing, err := customerUC.List(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar clientes: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Println("La base ya tiene datos, no se siembra nada")
		return
	}

	customers := []dto.CreateCustomerInput{
		{Name: "Alice Johnson", Email: "alice@example.com", Phone: "+12345678901"},
		{Name: "Bob Smith", Email: "bob@example.com", Phone: "123-456-7890"},
		{Name: "Carol Davis", Email: "carol@example.com"},
	}
	customerIDs := make([]string, 0, len(customers))
	for _, in := range customers {
		c, err := customerUC.Create(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear cliente %s: %v\n", in.Email, err)
			os.Exit(1)
		}
		customerIDs = append(customerIDs, c.ID)
	}

	products := []dto.CreateProductInput{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10},
		{Name: "Mouse", Price: decimal.RequireFromString("19.99"), Stock: 100},
		{Name: "Keyboard", Price: decimal.RequireFromString("49.99"), Stock: 50},
		{Name: "Monitor", Price: decimal.RequireFromString("249.99"), Stock: 25},
	}
	productIDs := make([]string, 0, len(products))
	for _, in := range products {
		p, err := productUC.Create(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto %s: %v\n", in.Name, err)
			os.Exit(1)
		}
		productIDs = append(productIDs, p.ID)
	}

	order, err := orderUC.Create(ctx, dto.CreateOrderInput{
		CustomerID: customerIDs[0],
		ProductIDs: []string{productIDs[0], productIDs[1]},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear orden: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sembrado: %d clientes, %d productos, 1 orden (total %s)\n",
		len(customerIDs), len(productIDs), order.TotalAmount.StringFixed(2))
}
