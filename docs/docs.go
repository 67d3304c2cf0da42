// Package docs registra el documento OpenAPI servido en /swagger/*.
// Se regenera con `swag init -g cmd/api/main.go`.
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
        "/calves": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calves"],
                "summary": "Lista terneros",
                "parameters": [
                    {"type": "string", "description": "substring del nombre", "name": "name", "in": "query"},
                    {"type": "string", "description": "true | false", "name": "isSick", "in": "query"},
                    {"type": "string", "description": "true | false", "name": "isPregnant", "in": "query"},
                    {"type": "number", "name": "ageMin", "in": "query"},
                    {"type": "number", "name": "ageMax", "in": "query"},
                    {"type": "number", "name": "weightMin", "in": "query"},
                    {"type": "number", "name": "weightMax", "in": "query"},
                    {"type": "integer", "name": "timeInFarmDays", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/calves.calfResponse"}}},
                    "400": {"description": "invalid filter"},
                    "500": {"description": "internal error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calves"],
                "summary": "Alta de ternero",
                "parameters": [
                    {"description": "ternero", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/calves.calfResponse"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/calves.calfResponse"}},
                    "400": {"description": "ValidationError | DuplicateKey"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/calves/{calfID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calves"],
                "summary": "Ternero por id",
                "parameters": [{"type": "string", "name": "calfID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/calves.calfResponse"}},
                    "404": {"description": "calf not found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calves"],
                "summary": "Actualización completa de ternero",
                "parameters": [
                    {"type": "string", "name": "calfID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/calves.calfResponse"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/calves.calfResponse"}},
                    "400": {"description": "ValidationError | DuplicateKey"},
                    "404": {"description": "calf not found"}
                }
            },
            "delete": {
                "tags": ["calves"],
                "summary": "Baja de ternero (lo desvincula de las vacas)",
                "parameters": [{"type": "string", "name": "calfID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "calf not found"}
                }
            }
        },
        "/cows": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cows"],
                "summary": "Lista vacas",
                "parameters": [
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "string", "name": "isSick", "in": "query"},
                    {"type": "string", "name": "isPregnant", "in": "query"},
                    {"type": "string", "name": "isFertilityConfirmed", "in": "query"},
                    {"type": "number", "name": "ageMin", "in": "query"},
                    {"type": "number", "name": "ageMax", "in": "query"},
                    {"type": "number", "name": "weightMin", "in": "query"},
                    {"type": "number", "name": "weightMax", "in": "query"},
                    {"type": "number", "name": "milkProductionMin", "in": "query"},
                    {"type": "number", "name": "milkProductionMax", "in": "query"},
                    {"type": "integer", "name": "timeInFarmDays", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/cows.cowResponse"}}},
                    "400": {"description": "invalid filter"},
                    "500": {"description": "internal error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cows"],
                "summary": "Alta de vaca",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cows.cowResponse"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/cows.cowResponse"}},
                    "400": {"description": "ValidationError | DuplicateKey | InvalidReference | DuplicateLink"},
                    "404": {"description": "linked calf not found"},
                    "500": {"description": "internal error"}
                }
            }
        },
        "/cows/{cowID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cows"],
                "summary": "Vaca por id con terneros resueltos",
                "parameters": [{"type": "string", "name": "cowID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cows.cowResponse"}},
                    "404": {"description": "cow not found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cows"],
                "summary": "Actualización completa de vaca (reemplaza linkedCalves)",
                "parameters": [
                    {"type": "string", "name": "cowID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cows.cowResponse"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cows.cowResponse"}},
                    "400": {"description": "ValidationError | DuplicateKey | InvalidReference | DuplicateLink"},
                    "404": {"description": "cow or linked calf not found"}
                }
            },
            "delete": {
                "tags": ["cows"],
                "summary": "Baja de vaca",
                "parameters": [{"type": "string", "name": "cowID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "cow not found"}
                }
            }
        },
        "/cows/{cowID}/calves": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cows"],
                "summary": "Alta de ternero vinculado a la vaca",
                "parameters": [
                    {"type": "string", "name": "cowID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/calves.calfResponse"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "ValidationError | DuplicateKey"},
                    "404": {"description": "cow not found"}
                }
            }
        },
        "/reports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Reporte agregado del rodeo",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/reports.Report"}},
                    "500": {"description": "internal error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Carga masiva de registros reproductivos",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/reports.ReproductionResult"}},
                    "400": {"description": "invalid report data format"}
                }
            }
        },
        "/reports/{section}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Sección del reporte",
                "parameters": [
                    {"enum": ["overview", "basic-info", "reproductive", "health", "medicines"], "type": "string", "name": "section", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "invalid report type"}
                }
            }
        }
    },
    "definitions": {
        "calves.calfResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "calfId": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "number"},
                "weight": {"type": "number"},
                "image1": {"type": "string"},
                "image2": {"type": "string"},
                "medicines": {"type": "array", "items": {"$ref": "#/definitions/livestock.Medicine"}},
                "medicineToConsume": {"type": "array", "items": {"$ref": "#/definitions/livestock.PlannedMedicine"}},
                "isPregnant": {"type": "boolean"},
                "isSick": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "cows.cowResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "cowId": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "number"},
                "weight": {"type": "number"},
                "milkProduction": {"type": "number"},
                "image1": {"type": "string"},
                "image2": {"type": "string"},
                "medicines": {"type": "array", "items": {"$ref": "#/definitions/livestock.Medicine"}},
                "medicineToConsume": {"type": "array", "items": {"$ref": "#/definitions/livestock.PlannedMedicine"}},
                "pregnancies": {"type": "array", "items": {"$ref": "#/definitions/cows.Pregnancy"}},
                "breedingDate": {"type": "string"},
                "embryonicDeathDate": {"type": "string"},
                "expectedCalvingDate": {"type": "string"},
                "earlyDewormingDate": {"type": "string"},
                "preCalvingMetabolicSupplimentDate": {"type": "string"},
                "lateDewormingDate": {"type": "string"},
                "calvingDate": {"type": "string"},
                "calvingCount": {"type": "integer"},
                "isFertilityConfirmed": {"type": "boolean"},
                "linkedCalves": {"type": "array", "items": {"$ref": "#/definitions/cows.linkedCalfResponse"}},
                "isPregnant": {"type": "boolean"},
                "isSick": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "cows.linkedCalfResponse": {
            "type": "object",
            "properties": {
                "calfId": {"type": "string"},
                "name": {"type": "string"},
                "image1": {"type": "string"}
            }
        },
        "cows.Pregnancy": {
            "type": "object",
            "properties": {
                "attempt": {"type": "integer"},
                "startDate": {"type": "string"},
                "dueDate": {"type": "string"},
                "delivered": {"type": "boolean"},
                "notes": {"type": "string"}
            }
        },
        "livestock.Medicine": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "dateGiven": {"type": "string"},
                "dosage": {"type": "string"},
                "hasTaken": {"type": "boolean"},
                "note": {"type": "string"}
            }
        },
        "livestock.PlannedMedicine": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "medicineNote": {"type": "string"}
            }
        },
        "reports.Report": {
            "type": "object",
            "properties": {
                "generatedAt": {"type": "string"},
                "totalCows": {"type": "integer"},
                "totalPregnant": {"type": "integer"},
                "totalFertilized": {"type": "integer"},
                "totalSick": {"type": "integer"},
                "totalMilk": {"type": "number"},
                "averageMilkProduced": {"type": "number"},
                "minMilkProduced": {"type": "number"},
                "maxMilkProduced": {"type": "number"},
                "nearCalving": {"type": "integer"},
                "recentlyCalved": {"type": "integer"},
                "totalCalves": {"type": "integer"},
                "totalSickCalves": {"type": "integer"},
                "averageCalfWeight": {"type": "number"},
                "basicInfo": {"type": "array", "items": {"type": "object"}},
                "reproductiveRecords": {"type": "array", "items": {"type": "object"}},
                "health": {"type": "object"},
                "medicines": {"type": "object"}
            }
        },
        "reports.ReproductionResult": {
            "type": "object",
            "properties": {
                "updated": {"type": "integer"},
                "skipped": {"type": "array", "items": {"type": "string"}}
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
	Title:            "Livestock Records API",
	Description:      "Registro de vacas y terneros: salud, preñez, medicación, producción de leche y reportes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
