package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var caseFileSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"cases": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"problem": {"type": "string", "enum": ["subarray-sum-equals-k", "product-of-array-except-self"]},
					"nums": {"type": "array", "items": {"type": "integer"}},
					"k": {"type": "integer"},
					"want": {
						"oneOf": [
							{"type": "integer"},
							{"type": "array", "items": {"type": "integer"}}
						]
					}
				},
				"required": ["problem", "nums", "want"],
				"additionalProperties": false,
				"allOf": [
					{
						"if": {"properties": {"problem": {"const": "subarray-sum-equals-k"}}},
						"then": {"required": ["k"], "properties": {"want": {"type": "integer", "minimum": 0}}}
					},
					{
						"if": {"properties": {"problem": {"const": "product-of-array-except-self"}}},
						"then": {"properties": {"nums": {"minItems": 1}, "want": {"type": "array"}}}
					}
				]
			}
		}
	},
	"required": ["cases"],
	"additionalProperties": false
}`

var schemaLoader = gojsonschema.NewStringLoader(caseFileSchema)

// ValidationResult lists every schema violation found in a case document.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateCaseDocument checks a YAML case document against the case file schema.
func ValidateCaseDocument(data []byte) ValidationResult {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ValidationResult{Errors: []string{fmt.Sprintf("yaml: %v", err)}}
	}
	if doc == nil {
		return ValidationResult{Errors: []string{"document is empty"}}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return ValidationResult{Errors: []string{fmt.Sprintf("schema validation error: %v", err)}}
	}

	var allErrors []string
	if !result.Valid() {
		for _, e := range result.Errors() {
			allErrors = append(allErrors, e.String())
		}
	}
	return ValidationResult{
		Valid:  len(allErrors) == 0,
		Errors: allErrors,
	}
}

// FormatValidationErrors joins the errors one per line, or returns "" when
// the document is valid.
func FormatValidationErrors(result ValidationResult) string {
	if result.Valid {
		return ""
	}
	return strings.Join(result.Errors, "\n")
}
