package manifest

// ManifestSchemaJSON documents the shape BuildContext expects, for editors
// and external tooling that want to validate a manifest before it reaches
// this package. It is not consulted by Load or BuildContext.
const ManifestSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "hindley.manifest/v1",
  "title": "Type Environment Manifest",
  "description": "Declares the primitives, function signatures, and algebraic data types a program is checked against",
  "type": "object",
  "required": ["schema"],
  "properties": {
    "schema": {
      "type": "string",
      "const": "hindley.manifest/v1"
    },
    "primitives": {
      "type": "array",
      "items": {"type": "string"},
      "description": "Primitive type names available as NamedVariable"
    },
    "functions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "type"],
        "properties": {
          "name": {"type": "string"},
          "forall": {
            "type": "array",
            "items": {"type": "string"},
            "description": "Quantified type-variable names scoped to this signature"
          },
          "type": {"$ref": "#/definitions/typeExpr"}
        }
      }
    },
    "types": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "constructors"],
        "properties": {
          "name": {"type": "string"},
          "params": {
            "type": "array",
            "items": {"type": "string"}
          },
          "constructors": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {
                "name": {"type": "string"},
                "fields": {
                  "type": "array",
                  "items": {"$ref": "#/definitions/typeExpr"}
                }
              }
            }
          }
        }
      }
    }
  },
  "definitions": {
    "typeExpr": {
      "type": "object",
      "description": "Exactly one of var, unit, tuple, arrow, app is set",
      "properties": {
        "var": {"type": "string"},
        "unit": {"type": "boolean"},
        "tuple": {"type": "array", "items": {"$ref": "#/definitions/typeExpr"}},
        "arrow": {"type": "array", "items": {"$ref": "#/definitions/typeExpr"}},
        "app": {
          "type": "object",
          "required": ["ctor"],
          "properties": {
            "ctor": {"type": "string"},
            "args": {"type": "array", "items": {"$ref": "#/definitions/typeExpr"}}
          }
        }
      }
    }
  }
}`
