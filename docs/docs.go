// Package docs registers the OpenAPI document served under /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/event/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Event view",
                "description": "Viewer's profile plus the event's posts, each with its comments.",
                "parameters": [{"type": "integer", "description": "Game id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/gamenight.EventView"}},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Please log in first"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/register": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"type": "string", "name": "first_name", "in": "formData", "required": true},
                    {"type": "string", "name": "last_name", "in": "formData"},
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/users/{id}": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["users"],
                "summary": "Update profile",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "first_name", "in": "formData", "required": true},
                    {"type": "string", "name": "last_name", "in": "formData"},
                    {"type": "string", "name": "equipment", "in": "formData"}
                ],
                "responses": {"303": {"description": "See Other"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/picture": {
            "post": {
                "consumes": ["multipart/form-data"],
                "tags": ["users"],
                "summary": "Upload profile picture",
                "parameters": [{"type": "file", "name": "picture", "in": "formData", "required": true}],
                "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "413": {"description": "Request Entity Too Large"}}
            }
        },
        "/api/games/new": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["events"],
                "summary": "Create event",
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "description", "in": "formData"},
                    {"type": "string", "name": "location", "in": "formData"},
                    {"type": "string", "name": "starts_at", "in": "formData"}
                ],
                "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List posts of an event",
                "parameters": [{"type": "integer", "name": "game_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/gamenight.Thread"}}, "400": {"description": "Bad Request"}}
            }
        }
    },
    "definitions": {
        "models.Comment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "post_id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "body": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.Post": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "game_id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "body": {"type": "string"},
                "created_at": {"type": "string"},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}
            }
        },
        "gamenight.Thread": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "posts": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}
            }
        },
        "gamenight.EventView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "profile": {"type": "object"},
                "posts": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Game Night API",
	Description:      "Events, posts and comments behind a session cookie.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
