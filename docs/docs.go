// Package docs registra la especificación OpenAPI servida en /swagger.
// Regenerar con: swag init -g cmd/api/main.go
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
        "/adoption/animal/{animalId}/match": {
            "post": {
                "description": "El adoptante entra en la fila del animal. Si ya estaba, responde 409 con code ALREADY_IN_QUEUE.",
                "produces": ["application/json"],
                "tags": ["adoption"],
                "summary": "Registrar interés en un animal",
                "parameters": [
                    {"type": "string", "description": "ID del animal", "name": "animalId", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/adoption.interestResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "409": {"description": "ALREADY_IN_QUEUE | PET_UNAVAILABLE", "schema": {"$ref": "#/definitions/problem.Detail"}}
                }
            }
        },
        "/adoption/animal/{animalId}/queue": {
            "get": {
                "description": "Interesados PENDING ordenados por fecha de interés. Solo la organización dueña.",
                "produces": ["application/json"],
                "tags": ["adoption"],
                "summary": "Fila de interesados de un animal",
                "parameters": [
                    {"type": "string", "description": "ID del animal", "name": "animalId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/adoption.interestResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Detail"}}
                }
            }
        },
        "/adoption/interest/{interestId}/evaluate": {
            "put": {
                "description": "Aprueba o rechaza un interés PENDING. No afecta a los demás interesados.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["adoption"],
                "summary": "Aprobar o rechazar un interés",
                "parameters": [
                    {"type": "string", "description": "ID del interés", "name": "interestId", "in": "path", "required": true},
                    {"description": "Decisión", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/adoption.evaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/adoption.interestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "409": {"description": "INTEREST_NOT_PENDING", "schema": {"$ref": "#/definitions/problem.Detail"}}
                }
            }
        },
        "/adoption/adopter": {
            "get": {
                "produces": ["application/json"],
                "tags": ["adoption"],
                "summary": "Mis intereses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/adoption.adopterInterestResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/problem.Detail"}}
                }
            }
        },
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Listar animales",
                "parameters": [
                    {"type": "string", "description": "DISPONIVEL | ADOTADO", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Publicar animal",
                "parameters": [
                    {"description": "Datos del animal", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Detail"}}
                }
            }
        },
        "/animals/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Detalle de un animal",
                "parameters": [
                    {"type": "string", "description": "ID del animal", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Detail"}}
                }
            }
        },
        "/animals/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Cambiar estado de un animal",
                "parameters": [
                    {"type": "string", "description": "ID del animal", "name": "id", "in": "path", "required": true},
                    {"description": "DISPONIVEL | ADOTADO", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.updateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/problem.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Detail"}}
                }
            }
        },
        "/me/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Animales de mi organización",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}}
                }
            }
        }
    },
    "definitions": {
        "adoption.interestResponse": {
            "type": "object",
            "properties": {
                "interesseId": {"type": "string"},
                "animalId": {"type": "string"},
                "usuarioId": {"type": "string"},
                "nomeUsuario": {"type": "string"},
                "emailUsuario": {"type": "string"},
                "dataDeInteresse": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "APPROVED", "REJECTED"]},
                "updatedAt": {"type": "string"}
            }
        },
        "adoption.adopterInterestResponse": {
            "type": "object",
            "properties": {
                "interesseId": {"type": "string"},
                "animalId": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "APPROVED", "REJECTED"]},
                "dataDeInteresse": {"type": "string"},
                "animal": {
                    "type": "object",
                    "properties": {"id": {"type": "string"}, "nome": {"type": "string"}}
                }
            }
        },
        "adoption.evaluateRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["APPROVED", "REJECTED"]}}
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "especie": {"type": "string"},
                "porte": {"type": "string"},
                "idade": {"type": "integer"},
                "raca": {"type": "string"},
                "descricao": {"type": "string"},
                "imagemUrl": {"type": "string"},
                "fotos": {"type": "array", "items": {"type": "string"}}
            }
        },
        "pets.updateStatusRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["DISPONIVEL", "ADOTADO"]}}
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "ownerOrgId": {"type": "string"},
                "nome": {"type": "string"},
                "especie": {"type": "string"},
                "porte": {"type": "string"},
                "idade": {"type": "integer"},
                "raca": {"type": "string"},
                "descricao": {"type": "string"},
                "imagemUrl": {"type": "string"},
                "fotosAnimais": {"type": "array", "items": {"type": "object", "properties": {"url": {"type": "string"}}}},
                "status": {"type": "string", "enum": ["DISPONIVEL", "ADOTADO"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "problem.Detail": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"},
                "code": {"type": "string"},
                "extensions": {"type": "object", "additionalProperties": {}}
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
	Title:            "Pet Adoption API",
	Description:      "Interesse de adoção: fila por animal, avaliação pela ONG e acompanhamento pelo adotante.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
