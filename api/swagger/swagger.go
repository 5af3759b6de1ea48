package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SGPA Records API",
        "description": "Record store and statistics engine for SGPA submissions",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Records", "description": "SGPA submission records"},
        {"name": "SGPA", "description": "Weighted average computation"}
    ],
    "paths": {
        "/records": {
            "get": {
                "tags": ["Records"],
                "summary": "List all stored records in creation order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Records"],
                "summary": "Submit a computed SGPA record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/records/{id}": {
            "delete": {
                "tags": ["Records"],
                "summary": "Delete a record by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/records/stats": {
            "get": {
                "tags": ["Records"],
                "summary": "Aggregate statistics over all stored records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/records/export": {
            "get": {
                "tags": ["Records"],
                "summary": "Download the record collection as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/sgpa/compute": {
            "post": {
                "tags": ["SGPA"],
                "summary": "Compute SGPA and credit total from subject rows",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ComputeSGPARequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SubjectGrade": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "credits": {"type": "number"},
                "grade": {"type": "string", "enum": ["O", "E", "A", "B", "C", "D", ""]}
            }
        },
        "Record": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "student_name": {"type": "string"},
                "student_email": {"type": "string"},
                "sgpa": {"type": "number"},
                "total_credits": {"type": "number"},
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SubjectGrade"}
                },
                "submitted_at": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "CreateRecordRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "sgpa": {"type": "number"},
                "totalCredits": {"type": "number"},
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SubjectGrade"}
                },
                "timestamp": {"type": "string"}
            },
            "required": ["name", "email", "sgpa"]
        },
        "ComputeSGPARequest": {
            "type": "object",
            "properties": {
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SubjectGrade"}
                }
            },
            "required": ["subjects"]
        },
        "StatsSummary": {
            "type": "object",
            "properties": {
                "total_records": {"type": "integer"},
                "average_sgpa": {"type": "number"},
                "highest_sgpa": {"type": "number"},
                "lowest_sgpa": {"type": "number"},
                "grade_distribution": {"type": "object"},
                "recent_records": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Record"}
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
