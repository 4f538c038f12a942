// Package docs registers the OpenAPI description of the dashboard API with swag.
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
                "description": "Check if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check that the email store is reachable",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/api/snapshot": {
            "get": {
                "description": "Compute every dashboard metric for an inclusive date range",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Get dashboard snapshot",
                "parameters": [
                    {
                        "type": "string",
                        "example": "2025-03-03",
                        "description": "First day of the range (YYYY-MM-DD), defaults to seven days before end",
                        "name": "start",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "example": "2025-03-09",
                        "description": "Last day of the range (YYYY-MM-DD), defaults to today",
                        "name": "end",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.SnapshotResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "validation_error"},
                "message": {"type": "string", "example": "start date must be before end date"}
            }
        },
        "dto.SummaryData": {
            "type": "object",
            "properties": {
                "total_sent": {"type": "integer", "example": 5000},
                "total_received": {"type": "integer", "example": 3000},
                "total_replies": {"type": "integer", "example": 2000},
                "total_leads": {"type": "integer", "example": 650},
                "lead_rate": {"type": "number", "example": 13.0},
                "avg_reply_time": {"type": "string", "example": "5d 1h 12m"},
                "avg_reply_time_seconds": {"type": "integer", "example": 436320}
            }
        },
        "dto.DailyCountData": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2025-03-03"},
                "direction": {"type": "string", "example": "sent"},
                "count": {"type": "integer", "example": 42}
            }
        },
        "dto.SentimentData": {
            "type": "object",
            "properties": {
                "sentiment": {"type": "string", "example": "positive"},
                "count": {"type": "integer", "example": 12}
            }
        },
        "dto.DimensionRateData": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "example": "Agent Alpha"},
                "total_sent": {"type": "integer", "example": 120},
                "total_replies": {"type": "integer", "example": 48},
                "total_leads": {"type": "integer", "example": 16},
                "reply_rate": {"type": "number", "example": 40.0},
                "lead_rate": {"type": "number", "example": 13.33}
            }
        },
        "dto.WeekdayData": {
            "type": "object",
            "properties": {
                "day": {"type": "string", "example": "Monday"},
                "replies": {"type": "integer", "example": 30}
            }
        },
        "dto.HourData": {
            "type": "object",
            "properties": {
                "hour": {"type": "integer", "example": 14},
                "replies": {"type": "integer", "example": 9}
            }
        },
        "dto.LatencyBinData": {
            "type": "object",
            "properties": {
                "day": {"type": "integer", "example": 1},
                "label": {"type": "string", "example": "Day 1"},
                "count": {"type": "integer", "example": 8},
                "cumulative_count": {"type": "integer", "example": 8},
                "cumulative_percent": {"type": "number", "example": 12.5}
            }
        },
        "dto.CompanyData": {
            "type": "object",
            "properties": {
                "company": {"type": "string", "example": "Acme Corp"},
                "positive_replies": {"type": "integer", "example": 4}
            }
        },
        "dto.SnapshotResponse": {
            "type": "object",
            "properties": {
                "start": {"type": "string", "example": "2025-03-03"},
                "end": {"type": "string", "example": "2025-03-09"},
                "empty": {"type": "boolean"},
                "message": {"type": "string", "example": "No data found for the selected time range."},
                "summary": {"$ref": "#/definitions/dto.SummaryData"},
                "daily": {"type": "array", "items": {"$ref": "#/definitions/dto.DailyCountData"}},
                "sentiment": {"type": "array", "items": {"$ref": "#/definitions/dto.SentimentData"}},
                "by_title": {"type": "array", "items": {"$ref": "#/definitions/dto.DimensionRateData"}},
                "by_agent": {"type": "array", "items": {"$ref": "#/definitions/dto.DimensionRateData"}},
                "by_city": {"type": "array", "items": {"$ref": "#/definitions/dto.DimensionRateData"}},
                "by_industry": {"type": "array", "items": {"$ref": "#/definitions/dto.DimensionRateData"}},
                "by_weekday": {"type": "array", "items": {"$ref": "#/definitions/dto.WeekdayData"}},
                "by_hour": {"type": "array", "items": {"$ref": "#/definitions/dto.HourData"}},
                "reply_latency": {"type": "array", "items": {"$ref": "#/definitions/dto.LatencyBinData"}},
                "top_companies": {"type": "array", "items": {"$ref": "#/definitions/dto.CompanyData"}},
                "generated_at": {"type": "string", "example": "2025-03-09T12:00:00Z"}
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
	Title:            "Email Analytics Dashboard API",
	Description:      "Outreach email analytics computed over a selectable date range.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
