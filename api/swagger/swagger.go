package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TClass Gateway",
        "description": "Browser-facing gateway for the TClass school information system",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Student", "description": "Enrollment worksheet and reports"},
        {"name": "Admin", "description": "Enrollment and admission review"},
        {"name": "Auth", "description": "Session lifecycle"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Clear the session cookies",
                "responses": {
                    "302": {"description": "Redirect to /login"}
                }
            }
        },
        "/student/enrollment": {
            "get": {
                "tags": ["Student"],
                "summary": "Enrollment worksheet base data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/enrollment/periods/{id}": {
            "get": {
                "tags": ["Student"],
                "summary": "Per-period worksheet data",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/enrollment/add": {
            "post": {
                "tags": ["Student"],
                "summary": "Pre-enlist a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already pre-enlisted or enrolled"}
                }
            }
        },
        "/student/enrollment/auto": {
            "post": {
                "tags": ["Student"],
                "summary": "Auto pre-enlist a period",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PeriodActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/enrollment/assess": {
            "post": {
                "tags": ["Student"],
                "summary": "Submit the pre-enlisted batch for review",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PeriodActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/enrollment/pre-enlisted/{id}": {
            "delete": {
                "tags": ["Student"],
                "summary": "Delete one pre-enlisted line",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/enrollment/pre-enlisted": {
            "delete": {
                "tags": ["Student"],
                "summary": "Clear the draft lines of one period",
                "parameters": [
                    {"name": "period_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/curriculum-evaluation": {
            "get": {
                "tags": ["Student"],
                "summary": "Curriculum evaluation report",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/reports/enrolled": {
            "get": {
                "tags": ["Student"],
                "summary": "Enrolled subjects report for a period",
                "parameters": [
                    {"name": "period_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/reports/subjects.csv": {
            "get": {
                "tags": ["Student"],
                "summary": "Download the enrolled subject list as CSV",
                "parameters": [
                    {"name": "period_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "CSV attachment"}
                }
            }
        },
        "/student/reports/cor.pdf": {
            "get": {
                "tags": ["Student"],
                "summary": "Download the certificate of registration as PDF",
                "parameters": [
                    {"name": "period_id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "PDF attachment"},
                    "409": {"description": "Enrollment not official"}
                }
            }
        },
        "/admin/enrollments": {
            "get": {
                "tags": ["Admin"],
                "summary": "Enrollment review queue",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "period_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/enrollments/{id}": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Decide an assessed enrollment line",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecideEnrollmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/enrollment-periods/{id}/activate": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Activate an enrollment period",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/admissions": {
            "get": {
                "tags": ["Admin"],
                "summary": "Admission review queue",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/admissions/{id}/approve": {
            "post": {
                "tags": ["Admin"],
                "summary": "Approve an admission application",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/admissions/{id}/reject": {
            "post": {
                "tags": ["Admin"],
                "summary": "Reject an admission application",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RejectAdmissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing rejection reason"}
                }
            }
        }
    },
    "definitions": {
        "AddCourseRequest": {
            "type": "object",
            "properties": {
                "course_id": {"type": "integer"},
                "period_id": {"type": "integer"}
            },
            "required": ["course_id", "period_id"]
        },
        "PeriodActionRequest": {
            "type": "object",
            "properties": {
                "period_id": {"type": "integer"}
            },
            "required": ["period_id"]
        },
        "DecideEnrollmentRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["official", "rejected"]},
                "remarks": {"type": "string"}
            },
            "required": ["status"]
        },
        "RejectAdmissionRequest": {
            "type": "object",
            "properties": {
                "reason": {"type": "string"}
            },
            "required": ["reason"]
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
