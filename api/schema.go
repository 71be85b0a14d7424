package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

// submissionSchemaJSON describes the shape of a listing submission. It only
// checks types; which fields must be present is decided by listing.Validator.
//
//go:embed schema/submission.json
var submissionSchemaJSON []byte

var submissionSchema = mustCompile(submissionSchemaJSON)

func mustCompile(b []byte) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		panic(fmt.Sprintf("compile submission schema: %v", err))
	}
	return rs
}

// checkShape validates body against the submission schema.
func checkShape(ctx context.Context, body []byte) error {
	verrs, err := submissionSchema.ValidateBytes(ctx, body)
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if len(verrs) > 0 {
		var sb strings.Builder
		for i, v := range verrs {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(v.PropertyPath)
			sb.WriteString(": ")
			sb.WriteString(v.Message)
		}
		return fmt.Errorf("body does not match schema: %s", sb.String())
	}
	return nil
}
