// Package docs holds the OpenAPI description served under /swagger/.
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
        "/scene": {
            "post": {
                "description": "Parse an uploaded CSV (pozo,litologia,x,y,z) and return the 3D scene. Malformed input still answers 200 with an empty scene and an error object.",
                "consumes": ["multipart/form-data", "application/json"],
                "produces": ["application/json"],
                "tags": ["scene"],
                "summary": "Build a scene",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Scene build result", "schema": {"$ref": "#/definitions/handler.SceneResponse"}},
                    "400": {"description": "No upload in request", "schema": {"type": "object"}},
                    "413": {"description": "Upload too large", "schema": {"type": "object"}}
                }
            }
        },
        "/scene/preview": {
            "post": {
                "description": "Render a PNG plan view (x against y) of the uploaded well paths",
                "consumes": ["multipart/form-data", "application/json"],
                "produces": ["image/png"],
                "tags": ["scene"],
                "summary": "Plan view preview",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "PNG image"},
                    "422": {"description": "Malformed input", "schema": {"type": "object"}}
                }
            }
        },
        "/builds": {
            "get": {
                "description": "List recent builds, newest first",
                "produces": ["application/json"],
                "tags": ["builds"],
                "summary": "List builds",
                "responses": {
                    "200": {"description": "Build history", "schema": {"type": "object"}},
                    "503": {"description": "History disabled", "schema": {"type": "object"}}
                }
            }
        },
        "/builds/{id}": {
            "get": {
                "description": "Retrieve one build record",
                "produces": ["application/json"],
                "tags": ["builds"],
                "summary": "Get build",
                "parameters": [
                    {"type": "string", "description": "Build ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Build record", "schema": {"$ref": "#/definitions/model.BuildRecord"}},
                    "404": {"description": "Build not found", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "handler.SceneResponse": {
            "type": "object",
            "properties": {
                "build_id": {"type": "string"},
                "filename": {"type": "string"},
                "scene": {"type": "object"},
                "summary": {"type": "object"},
                "error": {"$ref": "#/definitions/handler.BuildError"}
            }
        },
        "handler.BuildError": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.BuildRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "filename": {"type": "string"},
                "status": {"type": "string"},
                "records": {"type": "integer"},
                "wells": {"type": "integer"},
                "lithologies": {"type": "integer"},
                "error": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Well Viewer API",
	Description:      "Upload well trajectory and lithology CSV files and get 3D scenes back.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
