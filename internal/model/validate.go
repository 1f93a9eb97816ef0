// Package model validates incoming resume payloads against the JSON
// schema shipped with the templates.
package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateMap validates a generic map against resume.schema.json in the
// given template directory. The schema is referenced by an absolute
// canonical file:// path so loaders on all platforms resolve it correctly.
func ValidateMap(tplDir string, m map[string]interface{}) error {
	abs, err := filepath.Abs(filepath.Join(tplDir, "resume.schema.json"))
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
