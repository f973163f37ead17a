// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/qr": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate with a booth or entry QR token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.QRAuthRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid QR token"}}
            }
        },
        "/booths": {
            "get": {"tags": ["booths"], "summary": "Active booths with crowd level", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["booths"], "summary": "Register a booth", "responses": {"200": {"description": "OK"}, "400": {"description": "Duplicate code"}, "403": {"description": "Forbidden"}}}
        },
        "/checkins/code": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["checkins"], "summary": "Check in by booth code", "responses": {"200": {"description": "OK"}, "400": {"description": "Already checked in"}, "404": {"description": "Booth not found"}}}
        },
        "/crowd-status": {
            "get": {"tags": ["crowd-status"], "summary": "Current crowd level of every active booth", "responses": {"200": {"description": "OK"}}}
        },
        "/resonances": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["resonances"], "summary": "Toggle a resonance on a learning record", "responses": {"200": {"description": "OK"}, "404": {"description": "Learning record not found"}}}
        }
    },
    "definitions": {
        "dto.QRAuthRequest": {
            "type": "object",
            "required": ["qrToken"],
            "properties": {"qrToken": {"type": "string", "example": "test-entry-qr"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the session token from /auth/qr.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fair API",
	Description:      "Booth check-in, learning records and live crowd status for fair events",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
