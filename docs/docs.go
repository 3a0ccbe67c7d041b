// Package docs registers the OpenAPI document served under /docs/.
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
        "/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Home"],
                "summary": "Home menu",
                "description": "Asks for a username until one is set, then shows the main menu and the newest public posts of other users.",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Home"],
                "summary": "Set the caller's username",
                "parameters": [{"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true}],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/posts/new": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Posts"],
                "summary": "New post form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Posts"],
                "summary": "Create a post",
                "description": "Creates a post valid for 14 days and redirects to its detail view.",
                "parameters": [
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData", "required": true},
                    {"type": "boolean", "description": "Private (True) or public (False)", "name": "is_private", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/posts/mine": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Posts"],
                "summary": "The caller's posts, newest first",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.Response"}}}
            }
        },
        "/posts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Posts"],
                "summary": "Post detail",
                "description": "Counts a view and shows the post. Owners get renew, delete and make-private actions.",
                "parameters": [
                    {"type": "integer", "description": "Post id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Share code, required for other users' private posts", "name": "code", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Posts"],
                "summary": "Make a post private",
                "parameters": [{"type": "integer", "description": "Post id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "302": {"description": "Found"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Posts"],
                "summary": "Renew a post for another 14 days",
                "parameters": [{"type": "integer", "description": "Post id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "302": {"description": "Found"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Posts"],
                "summary": "Delete a post",
                "parameters": [{"type": "integer", "description": "Post id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "302": {"description": "Found"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Search form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Search posts",
                "description": "A post code opens that post. Any other keyword lists matching unexpired posts.",
                "parameters": [{"type": "string", "description": "Code, username or keyword", "name": "keyword", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.Response"}},
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        }
    },
    "definitions": {
        "menu.Response": {
            "type": "object",
            "properties": {
                "content_type": {"type": "string", "enum": ["menu", "form"]},
                "content": {"type": "object"}
            }
        },
        "utils.Payload": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PostDev API",
	Description:      "Menu-driven classifieds: time-limited posts behind bearer tokens.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
