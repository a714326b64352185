// Package docs holds the swagger document served at /swagger.
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
		"/fixtures/{id}/balls": {
			"post": {
				"tags": [
					"Scoring"
				],
				"summary": "Append a delivery to the ledger",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Delivery",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Invalid ball payload"
					},
					"404": {
						"description": "Fixture not found"
					},
					"409": {
						"description": "Fixture completed or cancelled"
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/fixtures/{id}/balls/last": {
			"delete": {
				"tags": [
					"Scoring"
				],
				"summary": "Delete the most recent delivery",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Fixture not found or no balls recorded"
					}
				},
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/fixtures/{id}/state": {
			"get": {
				"tags": [
					"Scoring"
				],
				"summary": "Get the live state of a fixture",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Fixture not found"
					}
				}
			},
			"patch": {
				"tags": [
					"Scoring"
				],
				"summary": "Update toss, innings, overs or status",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Changes",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Invalid input"
					},
					"404": {
						"description": "Fixture not found"
					},
					"409": {
						"description": "Fixture already completed"
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/fixtures/{id}/simulate": {
			"post": {
				"tags": [
					"Scoring"
				],
				"summary": "Simulate the rest of a fixture",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Fixture not found"
					},
					"409": {
						"description": "Fixture completed or roster empty"
					}
				},
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/fixtures/{id}/winner": {
			"post": {
				"tags": [
					"Scoring"
				],
				"summary": "Award a fixture to one team",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Winning team",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Team does not play in the fixture"
					},
					"409": {
						"description": "Fixture completed or teams undecided"
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/fixtures/{id}/scorecard": {
			"get": {
				"tags": [
					"Scoring"
				],
				"summary": "Batting and bowling breakdown of both innings",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Fixture not found"
					}
				}
			}
		},
		"/tournaments/{id}/mvp": {
			"get": {
				"tags": [
					"Scoring"
				],
				"summary": "Impact leaderboard across a tournament",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Limit",
						"name": "limit",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Tournament not found"
					}
				}
			}
		},
		"/tournaments/{id}/standings": {
			"get": {
				"tags": [
					"Standings"
				],
				"summary": "Get the points table",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Tournament not found"
					}
				}
			}
		},
		"/tournaments/{id}/standings/recompute": {
			"post": {
				"tags": [
					"Standings"
				],
				"summary": "Rebuild the points table from completed league fixtures",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Tournament not found"
					}
				},
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/tournaments/{id}/knockouts": {
			"post": {
				"tags": [
					"Bracket"
				],
				"summary": "Seed the playoff fixtures from the standings",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"403": {
						"description": "Admin role required"
					},
					"404": {
						"description": "Tournament not found"
					},
					"409": {
						"description": "Fewer than two teams in the standings"
					}
				},
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/tournaments": {
			"post": {
				"tags": [
					"Tournaments"
				],
				"summary": "Create a tournament",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Tournament",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Invalid input"
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/tournaments/{id}": {
			"get": {
				"tags": [
					"Tournaments"
				],
				"summary": "Get a tournament with its teams",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Tournament not found"
					}
				}
			}
		},
		"/tournaments/{id}/fixtures": {
			"get": {
				"tags": [
					"Fixtures"
				],
				"summary": "List the fixtures of a tournament",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Page",
						"name": "page",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Limit",
						"name": "limit",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "Stage",
						"name": "stage",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "Status",
						"name": "status",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Tournament not found"
					}
				}
			},
			"post": {
				"tags": [
					"Fixtures"
				],
				"summary": "Schedule one fixture",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fixture",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Invalid input or team outside the tournament"
					},
					"404": {
						"description": "Tournament not found"
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/tournaments/{id}/schedule": {
			"post": {
				"tags": [
					"Fixtures"
				],
				"summary": "Generate the league round-robin",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"404": {
						"description": "Tournament not found"
					},
					"409": {
						"description": "Too few teams or league already scheduled"
					}
				},
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/tournaments/{id}/teams": {
			"get": {
				"tags": [
					"Teams"
				],
				"summary": "List the teams of a tournament",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Teams"
				],
				"summary": "Register a team in a tournament",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Team",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Invalid input"
					},
					"404": {
						"description": "Tournament not found"
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		},
		"/teams/{id}": {
			"get": {
				"tags": [
					"Teams"
				],
				"summary": "Get a team with its roster",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Team not found"
					}
				}
			}
		},
		"/teams/{id}/players": {
			"post": {
				"tags": [
					"Teams"
				],
				"summary": "Add a player to a team roster",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Player",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Invalid input"
					},
					"404": {
						"description": "Team not found"
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ScorerAuth": []
					}
				]
			}
		}
	},
	"securityDefinitions": {
		"ScorerAuth": {
			"description": "Bearer token issued to scorers",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8088",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Crease tournament scoring API",
	Description:      "Ball-by-ball scoring, results, standings and knockout progression for cricket tournaments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
