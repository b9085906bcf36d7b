// Package docs holds OpenAPI description of the REST API, regenerate
// with "swag init -g api/router.go -o docs" after changing annotations in api/
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
        "/api/healthy": {
            "get": {
                "description": "Check whether the server is up.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Status"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/query/explain": {
            "post": {
                "description": "Describe query along with its representation and the tree of matchers it was compiled into.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Queries"
                ],
                "summary": "Explain query",
                "parameters": [
                    {
                        "description": "Query to explain",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.queryParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Query, Repr and Matcher",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/query/filter": {
            "post": {
                "description": "Filter records with the query. Records from the request are filtered, or the library from config if none are given.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Queries"
                ],
                "summary": "Filter records",
                "parameters": [
                    {
                        "description": "Query and records",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.filterParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Query, Total, Count and matching Records",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Invalid query or record",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "413": {
                        "description": "Too many records",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/query/graph": {
            "get": {
                "description": "Render matcher tree of the query as graphviz graph.",
                "produces": [
                    "text/vnd.graphviz"
                ],
                "tags": [
                    "Queries"
                ],
                "summary": "Query graph",
                "parameters": [
                    {
                        "type": "string",
                        "description": "query",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "horizontal (default) or vertical",
                        "name": "layout",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "graph in dot format",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/query/validate": {
            "post": {
                "description": "Classify query as VALID, TEXT or INVALID, with error position for invalid ones.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Queries"
                ],
                "summary": "Validate query",
                "parameters": [
                    {
                        "description": "Query to validate",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.queryParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.queryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/version": {
            "get": {
                "description": "Get version of the server.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Status"
                ],
                "summary": "Server version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.filterParams": {
            "type": "object",
            "properties": {
                "Count": {
                    "description": "Only count matching records",
                    "type": "boolean"
                },
                "Query": {
                    "description": "Query string, empty query matches everything",
                    "type": "string"
                },
                "Records": {
                    "description": "Records to filter, library from config is filtered if missing",
                    "type": "array",
                    "items": {
                        "type": "object",
                        "additionalProperties": true
                    }
                },
                "Star": {
                    "description": "Tags for free text search, defaults to configured search tags",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.queryParams": {
            "type": "object",
            "properties": {
                "Query": {
                    "description": "Query string, empty query matches everything",
                    "type": "string"
                },
                "Star": {
                    "description": "Tags for free text search, defaults to configured search tags",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.queryResponse": {
            "type": "object",
            "properties": {
                "Error": {
                    "type": "string"
                },
                "MatchesAll": {
                    "type": "boolean"
                },
                "Parsable": {
                    "type": "boolean"
                },
                "Query": {
                    "type": "string"
                },
                "Star": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "Type": {
                    "type": "string",
                    "enum": [
                        "VALID",
                        "TEXT",
                        "INVALID"
                    ]
                },
                "Valid": {
                    "type": "boolean"
                },
                "Validator": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "qlquery API",
	Description:      "Validate, explain and run Quod Libet queries against song records",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
