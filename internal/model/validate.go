package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ValidateResume validates a raw resume payload against the embedded JSON
// schema before it is decoded into the typed records. The schema constrains
// shapes, not presence: missing sections and fields are fine, wrong types
// are not.
func ValidateResume(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
