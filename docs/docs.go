// Package docs contains the generated swagger documentation served at
// /swagger/*.
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
        "/verifications": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["verifications"],
                "summary": "Open a draft verification record for a shipment request",
                "parameters": [
                    {
                        "description": "Shipment request facts",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.OpenVerificationRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.OpenVerificationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/verifications/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["verifications"],
                "summary": "Retrieve one verification record",
                "parameters": [
                    {"type": "string", "description": "Verification ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.Verification"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["verifications"],
                "summary": "Apply operator input to a draft verification record",
                "parameters": [
                    {"type": "string", "description": "Verification ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Operator input",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.UpdateVerificationRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/verifications/{id}/complete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["verifications"],
                "summary": "Complete a verification record, freezing its billing fields",
                "parameters": [
                    {"type": "string", "description": "Verification ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/assignments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Dispatch a delivery assignment for a completed verification",
                "parameters": [
                    {
                        "description": "Assignment request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CreateAssignmentRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreateAssignmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/assignments/pending": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "List assignments whose payment has not been collected",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.PendingCollection"}}
                    }
                }
            }
        },
        "/collections/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Look up the collection page behind an access code",
                "parameters": [
                    {"type": "string", "description": "Access code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.Collection"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/collections/{code}/driver": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Lock the driver identity for an assignment",
                "parameters": [
                    {"type": "string", "description": "Access code", "name": "code", "in": "path", "required": true},
                    {
                        "description": "Driver identity",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.IdentifyDriverRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/collections/{code}/cancel": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Cancel a delivery attempt, keeping the access code live",
                "parameters": [
                    {"type": "string", "description": "Access code", "name": "code", "in": "path", "required": true},
                    {
                        "description": "Cancellation reason",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CancelDeliveryRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/collections/{code}/complete": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Record the collected payment and consume the access code",
                "parameters": [
                    {"type": "string", "description": "Access code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "Payment method: CASH, BANK_TRANSFER or TABBY", "name": "method", "in": "formData", "required": true},
                    {"type": "string", "description": "Transfer reference", "name": "reference", "in": "formData"},
                    {"type": "string", "description": "Confirming party", "name": "confirmedBy", "in": "formData"},
                    {"type": "file", "description": "Proof image", "name": "proof", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CompleteDeliveryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        }
    },
    "definitions": {
        "http.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.OpenVerificationRequest": {
            "type": "object",
            "properties": {
                "requestId": {"type": "string"},
                "route": {"type": "string"},
                "actualWeightGrams": {"type": "integer"},
                "volumetricWeightGrams": {"type": "integer"}
            }
        },
        "http.OpenVerificationResponse": {
            "type": "object",
            "properties": {
                "verificationId": {"type": "string"}
            }
        },
        "http.UpdateVerificationRequest": {
            "type": "object",
            "properties": {
                "invoiceNumber": {"type": "string"},
                "trackingNumber": {"type": "string"},
                "route": {"type": "string"},
                "actualWeightGrams": {"type": "integer"},
                "volumetricWeightGrams": {"type": "integer"},
                "manualRatePerKg": {"type": "integer"},
                "boxCount": {"type": "integer"},
                "classification": {"type": "string"},
                "cargoService": {"type": "string"},
                "receiverAddress": {"type": "string"},
                "receiverPhone": {"type": "string"},
                "operatorName": {"type": "string"},
                "senderChecked": {"type": "boolean"},
                "receiverChecked": {"type": "boolean"}
            }
        },
        "http.Verification": {
            "type": "object",
            "properties": {
                "verificationId": {"type": "string"},
                "requestId": {"type": "string"},
                "invoiceNumber": {"type": "string"},
                "trackingNumber": {"type": "string"},
                "route": {"type": "string"},
                "actualWeightGrams": {"type": "integer"},
                "volumetricWeightGrams": {"type": "integer"},
                "chargeableWeightGrams": {"type": "integer"},
                "weightType": {"type": "string"},
                "ratePerKg": {"type": "integer"},
                "bracketLabel": {"type": "string"},
                "rateIsManual": {"type": "boolean"},
                "amount": {"type": "integer"},
                "boxCount": {"type": "integer"},
                "classification": {"type": "string"},
                "cargoService": {"type": "string"},
                "receiverAddress": {"type": "string"},
                "receiverPhone": {"type": "string"},
                "operatorName": {"type": "string"},
                "senderChecked": {"type": "boolean"},
                "receiverChecked": {"type": "boolean"},
                "completedAt": {"type": "string"},
                "isCompleted": {"type": "boolean"}
            }
        },
        "http.CreateAssignmentRequest": {
            "type": "object",
            "properties": {
                "verificationId": {"type": "string"},
                "codeTtlHours": {"type": "integer"}
            }
        },
        "http.CreateAssignmentResponse": {
            "type": "object",
            "properties": {
                "assignmentId": {"type": "string"}
            }
        },
        "http.PendingCollection": {
            "type": "object",
            "properties": {
                "assignmentId": {"type": "string"},
                "trackingNumber": {"type": "string"},
                "amount": {"type": "integer"},
                "accessCode": {"type": "string"},
                "codeExpiresAt": {"type": "string"},
                "driverName": {"type": "string"},
                "driverPhone": {"type": "string"},
                "cancellationReason": {"type": "string"}
            }
        },
        "http.Collection": {
            "type": "object",
            "properties": {
                "assignmentId": {"type": "string"},
                "verificationId": {"type": "string"},
                "amount": {"type": "integer"},
                "invoiceNumber": {"type": "string"},
                "trackingNumber": {"type": "string"},
                "boxCount": {"type": "integer"},
                "receiverAddress": {"type": "string"},
                "receiverPhone": {"type": "string"},
                "driverName": {"type": "string"},
                "driverPhone": {"type": "string"},
                "hasDriver": {"type": "boolean"},
                "delivered": {"type": "boolean"},
                "paymentCollected": {"type": "boolean"},
                "paymentMethod": {"type": "string"},
                "paymentReference": {"type": "string"},
                "paymentProofRef": {"type": "string"},
                "paymentConfirmedBy": {"type": "string"},
                "cancellationReason": {"type": "string"},
                "codeExpiresAt": {"type": "string"},
                "alreadyProcessed": {"type": "boolean"},
                "expired": {"type": "boolean"},
                "entryStage": {"type": "string"}
            }
        },
        "http.IdentifyDriverRequest": {
            "type": "object",
            "properties": {
                "driverName": {"type": "string"},
                "driverPhone": {"type": "string"}
            }
        },
        "http.CancelDeliveryRequest": {
            "type": "object",
            "properties": {
                "reason": {"type": "string"}
            }
        },
        "http.CompleteDeliveryResponse": {
            "type": "object",
            "properties": {
                "alreadyProcessed": {"type": "boolean"},
                "amount": {"type": "integer"},
                "method": {"type": "string"},
                "reference": {"type": "string"},
                "proofRef": {"type": "string"},
                "confirmedBy": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CargoPay API",
	Description:      "Shipment verification and payment collection for freight deliveries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
