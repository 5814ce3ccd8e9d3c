// Package docs registers the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/kpis": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Daily stock/demand trend",
                "parameters": [
                    {"type": "string", "description": "7d, 14d or 30d (default)", "name": "range", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.KPIPoint"}}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Totals, status counts and fill rate",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on name, SKU or ID", "name": "search", "in": "query"},
                    {"type": "string", "description": "All, Healthy, Low or Critical", "name": "status", "in": "query"},
                    {"type": "string", "description": "Exact warehouse code", "name": "warehouse", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Summary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Filter and paginate products",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on name, SKU or ID", "name": "search", "in": "query"},
                    {"type": "string", "description": "All, Healthy, Low or Critical", "name": "status", "in": "query"},
                    {"type": "string", "description": "Exact warehouse code", "name": "warehouse", "in": "query"},
                    {"type": "integer", "description": "Offset for pagination", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Limit for pagination", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductsSearchResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/demand": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Set the demand of a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "New demand", "name": "demand", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.DemandUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/transfer": {
            "post": {
                "description": "Relocates the product and consumes qty units of its stock.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Move a product to another warehouse",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Transfer", "name": "transfer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TransferRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/movements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movements"],
                "summary": "Get product movement logs",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Filter movements from this timestamp (RFC3339)", "name": "since", "in": "query"},
                    {"type": "string", "description": "Filter movements until this timestamp (RFC3339)", "name": "until", "in": "query"},
                    {"type": "integer", "description": "Offset for pagination", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Limit for pagination", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MovementsSearchResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/movements/export": {
            "get": {
                "produces": ["text/csv", "application/json"],
                "tags": ["movements"],
                "summary": "Export product movement logs",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Export format (csv or json)", "name": "format", "in": "query", "required": true},
                    {"type": "string", "description": "Filter from timestamp (RFC3339)", "name": "since", "in": "query"},
                    {"type": "string", "description": "Filter until timestamp (RFC3339)", "name": "until", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/warehouses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["warehouses"],
                "summary": "List all warehouses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Warehouse"}}}
                }
            }
        },
        "/warehouses/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["warehouses"],
                "summary": "Get warehouse by code",
                "parameters": [
                    {"type": "string", "description": "Warehouse code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Warehouse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.DemandUpdateRequest": {
            "type": "object",
            "properties": {"demand": {"type": "integer"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.Meta": {
            "type": "object",
            "properties": {"total_count": {"type": "integer"}}
        },
        "handlers.MovementResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "product_id": {"type": "string"},
                "kind": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "quantity": {"type": "integer"},
                "previous_demand": {"type": "integer"},
                "demand": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "handlers.MovementsSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.MovementResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "sku": {"type": "string"},
                "warehouse": {"type": "string"},
                "stock": {"type": "integer"},
                "demand": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "handlers.ProductsSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.TransferRequest": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "qty": {"type": "integer"}
            }
        },
        "models.KPIPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "stock": {"type": "integer"},
                "demand": {"type": "integer"}
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "total_products": {"type": "integer"},
                "total_stock": {"type": "integer"},
                "total_demand": {"type": "integer"},
                "fill_rate": {"type": "integer"},
                "healthy": {"type": "integer"},
                "low": {"type": "integer"},
                "critical": {"type": "integer"}
            }
        },
        "models.Warehouse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SupplySight API",
	Description:      "Inventory dashboard API: products, warehouses, KPIs and stock mutations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
