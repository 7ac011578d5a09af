// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Fight store unavailable"}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build information", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/fights": {
            "post": {"tags": ["fights"], "summary": "Create fight", "responses": {"201": {"description": "Created, includes the secure id"}, "500": {"description": "Store error", "schema": {"$ref": "#/definitions/ErrorResponse"}}}},
            "get": {"tags": ["fights"], "summary": "List fights", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/v1/fights/active": {"get": {"tags": ["fights"], "summary": "Active fight", "responses": {"200": {"description": "OK"}, "404": {"description": "No active fight", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/api/v1/fights/stream": {"get": {"tags": ["fights"], "summary": "Live fight events (server-sent events)", "produces": ["text/event-stream"], "responses": {"200": {"description": "Event stream"}}}},
        "/api/v1/fights/{id}": {"get": {"tags": ["fights"], "summary": "Get fight", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/api/v1/fights/{id}/bets": {
            "post": {"tags": ["bets"], "summary": "Place bet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PlaceBetRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid side or amount"}, "404": {"description": "Not found"}, "409": {"description": "Betting closed"}, "429": {"description": "Rate limited"}}},
            "get": {"tags": ["bets"], "summary": "Bet totals", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/api/v1/fights/{id}/start": {"post": {"tags": ["fights"], "summary": "Start fight", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SecureIDRequest"}}], "responses": {"200": {"description": "OK"}, "403": {"description": "Wrong secure id"}, "409": {"description": "Invalid transition"}, "502": {"description": "Match process failed to launch"}}}},
        "/api/v1/fights/{id}/status": {"post": {"tags": ["fights"], "summary": "Update fight status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Wrong secure id"}, "409": {"description": "Invalid transition"}}}},
        "/api/v1/fights/{id}/cashout": {"post": {"tags": ["settlement"], "summary": "Verify cash-out", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Not completed or no winner"}}}}
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "string"}}},
        "PlaceBetRequest": {"type": "object", "required": ["side", "amount"], "properties": {"side": {"type": "string", "enum": ["player1", "player2"]}, "amount": {"type": "integer", "minimum": 1}}},
        "SecureIDRequest": {"type": "object", "required": ["secure_id"], "properties": {"secure_id": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FightBet API",
	Description:      "Fight lifecycle and betting coordinator.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
