package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Kanaka PAC API",
        "description": "Parent Advisory Council site backend",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Council event calendar"},
        {"name": "Minutes", "description": "Meeting minutes archive"},
        {"name": "Announcements", "description": "Homepage announcements"},
        {"name": "Policies", "description": "Policy document library"},
        {"name": "Team", "description": "Executive roster"},
        {"name": "Subscribers", "description": "Newsletter subscriptions"},
        {"name": "Settings", "description": "Site settings singleton"},
        {"name": "Auth", "description": "Admin session"},
        {"name": "Upload", "description": "Document and logo uploads"}
    ],
    "paths": {
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events or fetch one by id",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string"},
                    {"name": "filter", "in": "query", "type": "string", "enum": ["upcoming", "past"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Event"}}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create event (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Event"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Events"],
                "summary": "Update event (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Event"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete event (admin)",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/minutes": {
            "get": {
                "tags": ["Minutes"],
                "summary": "List minutes or fetch one by id",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Minutes"],
                "summary": "Create minutes (admin)",
                "responses": {
                    "201": {"description": "Created"}
                }
            },
            "put": {
                "tags": ["Minutes"],
                "summary": "Update minutes (admin)",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Minutes"],
                "summary": "Delete minutes (admin)",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements or fetch one by id",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "string", "enum": ["true"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Create announcement (admin)",
                "responses": {
                    "201": {"description": "Created"}
                }
            },
            "put": {
                "tags": ["Announcements"],
                "summary": "Update announcement (admin)",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Announcements"],
                "summary": "Delete announcement (admin)",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/policies": {
            "get": {
                "tags": ["Policies"],
                "summary": "List policies or fetch one by id",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Policies"],
                "summary": "Create policy (admin)",
                "responses": {
                    "201": {"description": "Created"}
                }
            },
            "put": {
                "tags": ["Policies"],
                "summary": "Update policy (admin)",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Policies"],
                "summary": "Delete policy (admin)",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/team": {
            "get": {
                "tags": ["Team"],
                "summary": "List team members in display order",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Team"],
                "summary": "Add team member (admin)",
                "responses": {
                    "201": {"description": "Created"}
                }
            },
            "put": {
                "tags": ["Team"],
                "summary": "Update team member (admin)",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Team"],
                "summary": "Remove team member (admin)",
                "parameters": [
                    {"name": "id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/team/reorder": {
            "put": {
                "tags": ["Team"],
                "summary": "Swap display positions of two members (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/subscribe": {
            "get": {
                "tags": ["Subscribers"],
                "summary": "List subscribers (admin)",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Subscribers"],
                "summary": "Subscribe an email address",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Subscribers"],
                "summary": "Remove a subscriber (admin)",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/subscribe/export": {
            "get": {
                "tags": ["Subscribers"],
                "summary": "Download subscriber list (admin)",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Fetch site settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Settings"}}
                }
            },
            "post": {
                "tags": ["Settings"],
                "summary": "Replace site settings (admin)",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth": {
            "get": {
                "tags": ["Auth"],
                "summary": "Check admin session",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Auth"],
                "summary": "Log in with the admin password",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/upload": {
            "post": {
                "tags": ["Upload"],
                "summary": "Upload a document or logo image (admin)",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true},
                    {"name": "kind", "in": "formData", "type": "string", "enum": ["document", "logo"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid file type", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "location": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "Settings": {
            "type": "object",
            "properties": {
                "schoolName": {"type": "string"},
                "pacName": {"type": "string"},
                "contactEmail": {"type": "string"},
                "meetingSchedule": {"type": "string"},
                "logoUrl": {"type": "string"}
            }
        },
        "Ack": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
