// Package schemas validates incoming submission payloads against the JSON
// Schema describing the wire format. A schema failure means the payload is
// malformed, independent of the form-level validation the wizard performs.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed submission.schema.json
var submissionSchema []byte

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every schema violation found in a payload.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("payload validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateSubmission checks a flattened submission payload against the
// embedded schema. It returns a *ValidationError listing every violation, or
// a plain error if the schema engine itself fails.
func ValidateSubmission(fields map[string]string) error {
	doc := make(map[string]any, len(fields))
	for k, v := range fields {
		doc[k] = v
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(submissionSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
