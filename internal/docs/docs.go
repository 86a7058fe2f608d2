// Package docs registers the OpenAPI document served by the Swagger UI.
// Regenerate with `swag init -g cmd/mlserve/docs.go -o internal/docs` after
// changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "mlserve maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Reports ok when the startup load produced a model. Otherwise returns 500 with the load error.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Model health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/model-info": {
            "get": {
                "description": "Path, labels, load outcome and load duration. Never fails.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Model load state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModelInfoResponse"}}
                }
            }
        },
        "/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["predict"],
                "summary": "Classify one feature vector",
                "parameters": [
                    {
                        "description": "Feature vector",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.PredictRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "detail": {"type": "string", "example": "invalid JSON body"},
                "error": {"type": "string", "example": "invalid JSON body"}
            }
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "git_sha": {"type": "string", "example": "abc123"},
                "model_version": {"type": "string", "example": "v1"},
                "status": {"type": "string", "example": "ok"}
            }
        },
        "types.ModelInfoResponse": {
            "type": "object",
            "properties": {
                "git_sha": {"type": "string", "example": "abc123"},
                "load_error": {"type": "string"},
                "load_time_ms": {"type": "integer", "example": 12},
                "loaded": {"type": "boolean", "example": true},
                "model_path": {"type": "string", "example": "model.pkl"},
                "model_version": {"type": "string", "example": "v1"}
            }
        },
        "types.PredictRequest": {
            "type": "object",
            "properties": {
                "features": {
                    "type": "array",
                    "minItems": 4,
                    "maxItems": 4,
                    "items": {"type": "number"},
                    "example": [5.1, 3.5, 1.4, 0.2]
                }
            }
        },
        "types.PredictResponse": {
            "type": "object",
            "properties": {
                "git_sha": {"type": "string", "example": "abc123"},
                "model_version": {"type": "string", "example": "v1"},
                "prediction": {"type": "integer", "example": 1}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "v1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "ML inference api",
	Description:      "HTTP API serving predictions from a pre-trained classifier artifact.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
