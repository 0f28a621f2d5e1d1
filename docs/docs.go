// Package docs holds the Swagger document served under /swagger.
// Maintained by hand alongside the handler annotations.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "parameters": [
                    {"description": "Credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Credentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register an account",
                "parameters": [
                    {"description": "Account", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.User"}}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/tournaments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "List tournaments",
                "parameters": [
                    {"type": "integer", "description": "Organizer filter", "name": "organizer_id", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.Tournament"}}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Create a tournament",
                "parameters": [
                    {"description": "Tournament", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.CreateTournamentInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Tournament"}}}
                }
            }
        },
        "/tournaments/{tournamentID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Tournament with competitors and rounds",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Tournament"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["tournaments"],
                "summary": "Delete a tournament",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/tournaments/{tournamentID}/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Current standings, inactive competitors included",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.StandingRow"}}}}
                }
            }
        },
        "/tournaments/{tournamentID}/competitors": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["competitors"],
                "summary": "Register a competitor",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"description": "Competitor", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.RegisterCompetitorInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Competitor"}}}
                }
            }
        },
        "/tournaments/{tournamentID}/competitors/{competitorID}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["competitors"],
                "summary": "Rename a competitor or toggle its active flag",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "integer", "description": "Competitor ID", "name": "competitorID", "in": "path", "required": true},
                    {"description": "Changes", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.UpdateCompetitorInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Competitor"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["competitors"],
                "summary": "Remove a competitor together with its pairings",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "integer", "description": "Competitor ID", "name": "competitorID", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/tournaments/{tournamentID}/rounds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rounds"],
                "summary": "Rounds with their pairings",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.Round"}}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rounds"],
                "summary": "Pair the next round",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Round"}}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.errorBody"}}
                }
            }
        },
        "/tournaments/{tournamentID}/rounds/{roundNumber}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["rounds"],
                "summary": "Delete the latest round",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "integer", "description": "Round number", "name": "roundNumber", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/tournaments/{tournamentID}/pairings/{pairingID}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["pairings"],
                "summary": "Delete a single pairing",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "string", "description": "Pairing ID", "name": "pairingID", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/tournaments/{tournamentID}/pairings/{pairingID}/result": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pairings"],
                "summary": "Record, overwrite or clear a result",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "string", "description": "Pairing ID", "name": "pairingID", "in": "path", "required": true},
                    {"description": "Result: 1-0, 0.5-0.5, 0-1 or null", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RecordResultInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Pairing"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.RecordResultInput": {
            "type": "object",
            "properties": {"result": {"type": "string", "enum": ["1-0", "0.5-0.5", "0-1"], "x-nullable": true}}
        },
        "models.Credentials": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.User": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "nickname": {"type": "string"}, "email": {"type": "string"}, "created_at": {"type": "string"}}
        },
        "models.Competitor": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "tournament_id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "name": {"type": "string"},
                "rating": {"type": "integer"},
                "score": {"type": "number"},
                "active": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "models.StandingRow": {
            "type": "object",
            "properties": {"rank": {"type": "integer"}, "competitor": {"$ref": "#/definitions/models.Competitor"}}
        },
        "models.Pairing": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "tournament_id": {"type": "integer"},
                "round_id": {"type": "integer"},
                "round_number": {"type": "integer"},
                "board": {"type": "integer"},
                "first_id": {"type": "integer"},
                "first_name": {"type": "string"},
                "second_id": {"type": "integer"},
                "second_name": {"type": "string"},
                "result": {"type": "string", "enum": ["1-0", "0.5-0.5", "0-1"]},
                "created_at": {"type": "string"}
            }
        },
        "models.Round": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "tournament_id": {"type": "integer"},
                "number": {"type": "integer"},
                "created_at": {"type": "string"},
                "pairings": {"type": "array", "items": {"$ref": "#/definitions/models.Pairing"}}
            }
        },
        "models.Tournament": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "organizer_id": {"type": "integer"},
                "max_rounds": {"type": "integer"},
                "created_at": {"type": "string"},
                "competitors": {"type": "array", "items": {"$ref": "#/definitions/models.Competitor"}},
                "rounds": {"type": "array", "items": {"$ref": "#/definitions/models.Round"}}
            }
        },
        "services.RegisterInput": {
            "type": "object",
            "properties": {"nickname": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "services.CreateTournamentInput": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "max_rounds": {"type": "integer"}}
        },
        "services.RegisterCompetitorInput": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "rating": {"type": "integer"}, "user_id": {"type": "integer"}}
        },
        "services.UpdateCompetitorInput": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "active": {"type": "boolean"}}
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
	Title:            "Swiss Tournament API",
	Description:      "Swiss-system pairing, results and standings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
