package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Event Invitation Panel API",
        "description": "Session-authenticated record manager for the invitation grid",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login session management"},
        {"name": "Events", "description": "Invitation record management"},
        {"name": "Lookups", "description": "Reference data for the entry form"},
        {"name": "Users", "description": "Panel user administration (admin only)"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in and establish a session cookie",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Failure"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Destroy the current session",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/check": {
            "get": {
                "tags": ["Auth"],
                "summary": "Report whether the caller holds a valid session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CheckAuthResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List non-deleted invitation records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventListResponse"}},
                    "401": {"description": "No session", "schema": {"$ref": "#/definitions/Failure"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create an invitation record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/EventCreatedResponse"}},
                    "400": {"description": "Missing required fields", "schema": {"$ref": "#/definitions/Failure"}}
                }
            }
        },
        "/events/export": {
            "get": {
                "tags": ["Events"],
                "summary": "Download the invitation grid",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "produces": ["text/csv", "application/pdf"],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Fetch a single invitation record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Failure"}}
                }
            },
            "put": {
                "tags": ["Events"],
                "summary": "Update an invitation record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventUpdatedResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Failure"}}
                }
            }
        },
        "/budgets": {
            "get": {
                "tags": ["Lookups"],
                "summary": "List active budgets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LookupResponse"}}
                }
            }
        },
        "/salutations": {
            "get": {
                "tags": ["Lookups"],
                "summary": "List active salutations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LookupResponse"}}
                }
            }
        },
        "/businesscards": {
            "get": {
                "tags": ["Lookups"],
                "summary": "List active business cards",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LookupResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List panel users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserListResponse"}},
                    "403": {"description": "Not admin", "schema": {"$ref": "#/definitions/Failure"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create a panel user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/UserCreatedResponse"}},
                    "400": {"description": "Username taken", "schema": {"$ref": "#/definitions/Failure"}}
                }
            }
        },
        "/users/{userId}": {
            "put": {
                "tags": ["Users"],
                "summary": "Update a panel user",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Failure"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete a panel user",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Main admin cannot be deleted", "schema": {"$ref": "#/definitions/Failure"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/SessionIdentity"}
            }
        },
        "CheckAuthResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "authenticated": {"type": "boolean"},
                "user": {"$ref": "#/definitions/SessionIdentity"}
            }
        },
        "SessionIdentity": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "fullName": {"type": "string"}
            }
        },
        "EventInput": {
            "type": "object",
            "properties": {
                "budgetId": {"type": "string"},
                "nationality": {"type": "integer", "enum": [1, 2]},
                "contactId": {"type": "string"},
                "addressType": {"type": "integer"},
                "address": {"type": "string"},
                "country": {"type": "string"},
                "city": {"type": "string"},
                "county": {"type": "string"},
                "state": {"type": "string"},
                "postalCode": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "company": {"type": "string"},
                "jobTitle": {"type": "string"},
                "salutationId": {"type": "string"},
                "businessCard1": {"type": "string"},
                "businessCard2": {"type": "string"},
                "businessCard3": {"type": "string"},
                "businessCard4": {"type": "string"},
                "businessCard5": {"type": "string"},
                "isDeleted": {"type": "boolean"}
            },
            "required": ["budgetId", "nationality", "salutationId", "businessCard1"]
        },
        "EventListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "integer"}
            }
        },
        "EventResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"}
            }
        },
        "EventCreatedResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "eventId": {"type": "string"}
            }
        },
        "EventUpdatedResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "LookupResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/LookupItem"}
                }
            }
        },
        "LookupItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "fullName": {"type": "string"}
            },
            "required": ["username", "password", "fullName"]
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "fullName": {"type": "string"},
                "isActive": {"type": "boolean"}
            },
            "required": ["username", "fullName"]
        },
        "UserListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "users": {"type": "array", "items": {"type": "object"}}
            }
        },
        "UserCreatedResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "Failure": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "fields": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
