package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const maxBodyBytes = 1 << 20

const schemaSearch = `{
  "type": "object",
  "required": ["query"],
  "properties": {
    "query": {"type": "string", "minLength": 1, "maxLength": 500}
  }
}`

const schemaChatMessage = `{
  "type": "object",
  "required": ["message"],
  "properties": {
    "message":    {"type": "string", "minLength": 1, "maxLength": 2000},
    "context":    {"type": "string", "maxLength": 4000},
    "session_id": {"type": "string", "maxLength": 64}
  }
}`

var (
	searchLoader      = gojsonschema.NewStringLoader(schemaSearch)
	chatMessageLoader = gojsonschema.NewStringLoader(schemaChatMessage)
)

// readValidated reads the request body and checks it against the schema
func readValidated(r *http.Request, schemaLoader gojsonschema.JSONLoader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if err := validateJSONSchema(schemaLoader, body); err != nil {
		return nil, err
	}
	return body, nil
}

func validateJSONSchema(schemaLoader gojsonschema.JSONLoader, body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("request does not conform to schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}
