// Package graphql serves the inventory service over GraphQL, the protocol the
// dashboard speaks.
package graphql

import (
	"context"
	"net/http"

	gqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/supplysight/internal/inventory"
)

const schemaSDL = `
schema {
  query: Query
  mutation: Mutation
}

type Warehouse {
  code: ID!
  name: String!
  city: String!
  country: String!
}

type Product {
  id: ID!
  name: String!
  sku: String!
  warehouse: String!
  stock: Int!
  demand: Int!
  status: String!
}

type KPI {
  date: String!
  stock: Int!
  demand: Int!
}

type Summary {
  totalProducts: Int!
  totalStock: Int!
  totalDemand: Int!
  fillRate: Int!
  healthy: Int!
  low: Int!
  critical: Int!
}

type Query {
  products(search: String, status: String, warehouse: String): [Product!]!
  warehouses: [Warehouse!]!
  kpis(range: String!): [KPI!]!
  summary(search: String, status: String, warehouse: String): Summary!
}

type Mutation {
  updateDemand(id: ID!, demand: Int!): Product!
  transferStock(id: ID!, from: String!, to: String!, qty: Int!): Product!
}
`

// NewSchema parses the schema and binds it to svc.
func NewSchema(svc *inventory.Service, log zerolog.Logger) (*gqlgo.Schema, error) {
	l := log.With().Str("component", "graphql").Logger()
	return gqlgo.ParseSchema(schemaSDL, &Resolver{svc: svc, log: l},
		gqlgo.MaxDepth(8),
		gqlgo.Logger(panicLogger{log: l}),
	)
}

// NewHandler serves schema over HTTP POST with a JSON body.
func NewHandler(schema *gqlgo.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

type panicLogger struct {
	log zerolog.Logger
}

func (p panicLogger) LogPanic(_ context.Context, value interface{}) {
	p.log.Error().Interface("panic", value).Msg("graphql resolver panicked")
}
