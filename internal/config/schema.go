package config

// descriptorSchema is the JSON Schema (draft 2020-12) for permission
// descriptor documents. Structural rules that need cross-field context
// (semver compatibility, name format) live in Validate instead.
const descriptorSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Permission descriptor",
  "type": "object",
  "required": ["descriptor", "applications"],
  "additionalProperties": false,
  "properties": {
    "descriptor": {
      "type": "object",
      "required": ["name", "version"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "version": { "type": "string", "minLength": 1 },
        "description": { "type": "string" }
      }
    },
    "applications": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["application"],
        "additionalProperties": false,
        "properties": {
          "application": { "type": "string", "minLength": 1 },
          "actions": {
            "type": "array",
            "items": { "type": "string" }
          },
          "resources": {
            "type": "array",
            "items": { "type": "string" }
          }
        }
      }
    }
  }
}`
