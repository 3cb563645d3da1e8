package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "records.schema.json"

// recordListSchema describes the export: an array of flat records with
// string fields and a unique id per element.
const recordListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "description"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "description": {"type": "string"},
      "state": {"enum": ["all", "open", "closed"]}
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, recordListSchema)

// Validate checks an exported document against the record list schema
// and that no id appears twice.
func Validate(b []byte) error {
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("schema: %s", leafMessages(ve))
		}
		return fmt.Errorf("schema: %w", err)
	}
	seen := map[string]bool{}
	for _, el := range doc.([]interface{}) {
		id := el.(map[string]interface{})["id"].(string)
		if seen[id] {
			return fmt.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}
	return nil
}

func leafMessages(ve *jsonschema.ValidationError) string {
	var msgs []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			msgs = append(msgs, e.InstanceLocation+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(msgs, "; ")
}
