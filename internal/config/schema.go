package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// schemaDocument is the JSON Schema every loaded configuration must
// satisfy, independent of and prior to Config.Validate's semantic
// checks. It catches typos in keys and wrong-typed values that viper's
// loose unmarshalling would otherwise silently coerce or drop.
const schemaDocument = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "walker": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "forin": {"type": "boolean"},
        "logicalor": {"type": "boolean"},
        "newmi": {"type": "boolean"},
        "switchcase": {"type": "boolean"},
        "trycatch": {"type": "boolean"}
      }
    },
    "project": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "skip_calculation": {"type": "boolean"},
        "no_core_size": {"type": "boolean"}
      }
    },
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "format": {"type": "string", "enum": ["table", "json", "html"]},
        "color": {"type": "boolean"}
      }
    }
  }
}`

// ValidateSchema checks a raw, already-decoded configuration map against
// schemaDocument. raw is typically viper.AllSettings().
func ValidateSchema(raw map[string]any) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaDocument)
	docLoader := gojsonschema.NewGoLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("evaluate schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		messages = append(messages, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(messages, "; "))
}
