package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/jhoicas/crm-api/pkg/config"
)

// Router monta el endpoint GraphQL en la app Fiber: POST ejecuta
// operaciones y GET sirve el playground cuando está habilitado.
func Router(app *fiber.App, schema graphql.Schema, cfg config.GraphQLConfig) {
	h := handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		GraphiQL:   false,
		Playground: cfg.EnablePlayground,
	})
	app.All(cfg.Path, adaptor.HTTPHandler(h))
}
