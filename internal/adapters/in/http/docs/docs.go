// Package docs holds the Swagger description of the ordering API served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{marshal .Schemes}},
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
        "/api/auth/request-otp": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Send a one-time code to a phone",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "phone",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.RequestOTPRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/auth/verify-otp": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Verify a one-time code",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "phone and code",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.VerifyOTPRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/auth/complete-profile": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Save the profile of a verified phone",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "profile",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.CompleteProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.CustomerEnvelope"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/menu": {
            "get": {
                "tags": [
                    "menu"
                ],
                "summary": "List visible menu items",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/views.MenuItem"
                            }
                        }
                    }
                }
            }
        },
        "/api/orders": {
            "post": {
                "tags": [
                    "orders"
                ],
                "summary": "Place an order",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "order",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.CreateOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.OrderEnvelope"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "orders"
                ],
                "summary": "List orders newest first",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "status filter",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/views.Order"
                            }
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/orders/stats": {
            "get": {
                "tags": [
                    "orders"
                ],
                "summary": "Dashboard statistics",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/views.Stats"
                        }
                    }
                }
            }
        },
        "/api/orders/{id}/accept": {
            "post": {
                "tags": [
                    "orders"
                ],
                "summary": "Accept a placed order",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "order id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.OrderEnvelope"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "422": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/orders/{id}/advance": {
            "post": {
                "tags": [
                    "orders"
                ],
                "summary": "Move an order to its next status",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "order id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.OrderEnvelope"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "422": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/orders/{id}/cancel": {
            "post": {
                "tags": [
                    "orders"
                ],
                "summary": "Cancel a placed order",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "order id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.OrderEnvelope"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "422": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/orders/{id}/payment-link": {
            "get": {
                "tags": [
                    "orders"
                ],
                "summary": "UPI payment link for an order total",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "order id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.PaymentLink"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/orders/{id}/status": {
            "patch": {
                "tags": [
                    "orders"
                ],
                "summary": "Move an order to the given status",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "order id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "target status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.UpdateStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.OrderEnvelope"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    },
                    "422": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/http.Error"
                        }
                    }
                }
            }
        },
        "/api/admin/events": {
            "get": {
                "tags": [
                    "admin"
                ],
                "summary": "Stream order events",
                "produces": [
                    "text/event-stream"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "http.Error": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "http.MessageResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "http.PaymentLink": {
            "type": "object",
            "properties": {
                "orderId": {
                    "type": "integer"
                },
                "orderCode": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "upiUrl": {
                    "type": "string"
                }
            }
        },
        "http.OrderEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "order": {
                    "$ref": "#/definitions/views.Order"
                }
            }
        },
        "http.CustomerEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "customer": {
                    "$ref": "#/definitions/views.Customer"
                }
            }
        },
        "http.RequestOTPRequest": {
            "type": "object",
            "properties": {
                "phone": {
                    "type": "string"
                }
            }
        },
        "http.VerifyOTPRequest": {
            "type": "object",
            "properties": {
                "phone": {
                    "type": "string"
                },
                "otp": {
                    "type": "string"
                }
            }
        },
        "http.CompleteProfileRequest": {
            "type": "object",
            "properties": {
                "phone": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                }
            }
        },
        "http.CustomerContact": {
            "type": "object",
            "properties": {
                "phone": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                }
            }
        },
        "http.OrderItemRequest": {
            "type": "object",
            "properties": {
                "menuItemId": {
                    "type": "integer"
                },
                "qty": {
                    "type": "integer"
                }
            }
        },
        "http.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "customerId": {
                    "type": "integer"
                },
                "customer": {
                    "$ref": "#/definitions/http.CustomerContact"
                },
                "mode": {
                    "type": "string",
                    "enum": [
                        "TAKEAWAY",
                        "DELIVERY"
                    ]
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.OrderItemRequest"
                    }
                },
                "totalAmount": {
                    "type": "number"
                }
            }
        },
        "http.UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "ACCEPTED",
                        "COOKED",
                        "PACKED",
                        "READY",
                        "OUT_FOR_DELIVERY",
                        "DELIVERED",
                        "CANCELLED"
                    ]
                }
            }
        },
        "views.Customer": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "phone": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "phoneVerified": {
                    "type": "boolean"
                }
            }
        },
        "views.OrderItem": {
            "type": "object",
            "properties": {
                "menuItemId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "string"
                },
                "qty": {
                    "type": "integer"
                }
            }
        },
        "views.Order": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "code": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string"
                },
                "estimatedAt": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "customer": {
                    "$ref": "#/definitions/views.Customer"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/views.OrderItem"
                    }
                }
            }
        },
        "views.MenuItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                }
            }
        },
        "views.Stats": {
            "type": "object",
            "properties": {
                "pending": {
                    "type": "integer"
                },
                "accepted": {
                    "type": "integer"
                },
                "ready": {
                    "type": "integer"
                },
                "delivered": {
                    "type": "integer"
                },
                "totalRevenue": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ordering API",
	Description:      "Menu, order intake and order lifecycle for the restaurant dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
