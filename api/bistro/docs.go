// Package bistro holds the OpenAPI document served at /swagger/.
//
// Regenerate with: swag init -g internal/bistro/http/router.go -o api/bistro
package bistro

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/bistro"
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
        "/": {
            "get": {
                "tags": [
                    "System"
                ],
                "summary": "Banner",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "plain-text banner",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/jwt": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Issue session cookie",
                "description": "Signs a one-hour session token for the email and sets it as the HttpOnly \"token\" cookie.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Email to issue the session for",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.TokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "success",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "429": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/logout": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Clear session cookie",
                "description": "Expires the \"token\" cookie. Copies of the token held elsewhere stay valid until they expire.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "success",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/users": {
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Register user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User profile",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "insertedId",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.CreateUserResponse"
                        }
                    },
                    "200": {
                        "description": "user already exists",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.CreateUserResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "users",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bistrosdk.User"
                            }
                        }
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/users/admin/{email}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Check admin role",
                "description": "Reports whether the signed-in caller is an admin. Asking about anyone else is forbidden.",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller email",
                        "name": "email",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "admin",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.AdminStatusResponse"
                        }
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/users/admin/{id}": {
            "patch": {
                "tags": [
                    "Users"
                ],
                "summary": "Grant admin role",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "modifiedCount",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.ModifiedResponse"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Users"
                ],
                "summary": "Revoke admin role",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "modifiedCount",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.ModifiedResponse"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "tags": [
                    "Users"
                ],
                "summary": "Remove user",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "deletedCount",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.DeletedResponse"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/menu": {
            "get": {
                "tags": [
                    "Menu"
                ],
                "summary": "List menu",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "menu items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bistrosdk.MenuItem"
                            }
                        }
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Menu"
                ],
                "summary": "Add menu item",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Menu item",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.MenuItemInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "insertedId",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.InsertedResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/menuCount": {
            "get": {
                "tags": [
                    "Menu"
                ],
                "summary": "Count menu items",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "count",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.CountResponse"
                        }
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/menu/{id}": {
            "get": {
                "tags": [
                    "Menu"
                ],
                "summary": "Get menu item",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Menu item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "menu item",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.MenuItem"
                        }
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "Menu"
                ],
                "summary": "Replace menu item",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Menu item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Menu item",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.MenuItemInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "modifiedCount",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.ModifiedResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Menu"
                ],
                "summary": "Delete menu item",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Menu item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "deletedCount",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.DeletedResponse"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/reviews": {
            "get": {
                "tags": [
                    "Reviews"
                ],
                "summary": "List reviews",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "reviews",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bistrosdk.Review"
                            }
                        }
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Reviews"
                ],
                "summary": "Add review",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Review",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.ReviewInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "insertedId",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.InsertedResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/carts": {
            "get": {
                "tags": [
                    "Carts"
                ],
                "summary": "List cart",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller email",
                        "name": "email",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "cart items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bistrosdk.CartItem"
                            }
                        }
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Carts"
                ],
                "summary": "Add to cart",
                "description": "The body email must be the caller's own.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Cart item",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.CartItemInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "insertedId",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.InsertedResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/carts/{id}": {
            "delete": {
                "tags": [
                    "Carts"
                ],
                "summary": "Remove from cart",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Cart item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "deletedCount",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.DeletedResponse"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/create-payment-intent": {
            "post": {
                "tags": [
                    "Payments"
                ],
                "summary": "Create payment intent",
                "description": "Creates a card payment intent for price dollars (rounded to cents, USD) and returns its client secret.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Amount in dollars",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.PaymentIntentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "clientSecret",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.PaymentIntentResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "502": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/payments": {
            "post": {
                "tags": [
                    "Payments"
                ],
                "summary": "Record payment",
                "description": "Stores the payment and removes the paid items from the caller's cart in one transaction.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Payment",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.PaymentInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "paymentResult, deleteResult",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.PaymentResponse"
                        }
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/payments/{email}": {
            "get": {
                "tags": [
                    "Payments"
                ],
                "summary": "Payment history",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller email",
                        "name": "email",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "payments, newest first",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bistrosdk.Payment"
                            }
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/admin-stats": {
            "get": {
                "tags": [
                    "Stats"
                ],
                "summary": "Shop totals",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "users, menuItems, orders, revenue",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.AdminStats"
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/order-stats": {
            "get": {
                "tags": [
                    "Stats"
                ],
                "summary": "Sales per category",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "category, quantity, revenue",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bistrosdk.CategoryStats"
                            }
                        }
                    },
                    "403": {
                        "description": "error, error_description",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.APIError"
                        }
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Health Check Endpoint",
                "description": "Liveness probe returning status, uptime and version. Always 200 while the process is up.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Readiness Check Endpoint",
                "description": "Readiness probe. Reports 503 when the database cannot be reached.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "status, uptime, version, checks - service not ready",
                        "schema": {
                            "$ref": "#/definitions/bistrosdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "System"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "text exposition format",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "bistrosdk.APIError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "error_description": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.TokenRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                }
            }
        },
        "bistrosdk.CreateUserRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "photoURL": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.CreateUserResponse": {
            "type": "object",
            "properties": {
                "insertedId": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.User": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "photoURL": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.AdminStatusResponse": {
            "type": "object",
            "properties": {
                "admin": {
                    "type": "boolean"
                }
            }
        },
        "bistrosdk.ModifiedResponse": {
            "type": "object",
            "properties": {
                "modifiedCount": {
                    "type": "integer"
                }
            }
        },
        "bistrosdk.DeletedResponse": {
            "type": "object",
            "properties": {
                "deletedCount": {
                    "type": "integer"
                }
            }
        },
        "bistrosdk.InsertedResponse": {
            "type": "object",
            "properties": {
                "insertedId": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.CountResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                }
            }
        },
        "bistrosdk.MenuItem": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "recipe": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                }
            }
        },
        "bistrosdk.MenuItemInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "recipe": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                }
            }
        },
        "bistrosdk.Review": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "details": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.ReviewInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "details": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                }
            }
        },
        "bistrosdk.CartItem": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "menuId": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.CartItemInput": {
            "type": "object",
            "properties": {
                "menuId": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                }
            }
        },
        "bistrosdk.PaymentIntentRequest": {
            "type": "object",
            "properties": {
                "price": {
                    "type": "number"
                }
            }
        },
        "bistrosdk.PaymentIntentResponse": {
            "type": "object",
            "properties": {
                "clientSecret": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.PaymentInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "transactionId": {
                    "type": "string"
                },
                "cartIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "menuItemIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "bistrosdk.Payment": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "transactionId": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "cartIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "menuItemIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "date": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.PaymentResponse": {
            "type": "object",
            "properties": {
                "paymentResult": {
                    "$ref": "#/definitions/bistrosdk.InsertedResponse"
                },
                "deleteResult": {
                    "$ref": "#/definitions/bistrosdk.DeletedResponse"
                }
            }
        },
        "bistrosdk.AdminStats": {
            "type": "object",
            "properties": {
                "users": {
                    "type": "integer"
                },
                "menuItems": {
                    "type": "integer"
                },
                "orders": {
                    "type": "integer"
                },
                "revenue": {
                    "type": "number"
                }
            }
        },
        "bistrosdk.CategoryStats": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "revenue": {
                    "type": "number"
                }
            }
        },
        "bistrosdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {
                    "type": "string"
                }
            }
        },
        "bistrosdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "uptime": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "checks": {
                    "$ref": "#/definitions/bistrosdk.HealthChecks"
                }
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "description": "HS256 session token issued by POST /jwt.",
            "type": "apiKey",
            "name": "token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Bistro Boss API",
	Description:      "Restaurant ordering API: menu, reviews, carts, payments and admin statistics.\n\nSessions are carried in an HttpOnly cookie named \"token\" issued by POST /jwt.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
