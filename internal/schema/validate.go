// Package schema provides JSON schema validation for cgoconf request and
// toolchains files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/cgoconf/schema"
)

const (
	requestSchemaFile    = "request.schema.json"
	toolchainsSchemaFile = "toolchains.schema.json"
)

var (
	requestSchema    *jsonschema.Schema
	toolchainsSchema *jsonschema.Schema
	compileOnce      sync.Once
	compileErr       error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{requestSchemaFile, toolchainsSchemaFile} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		requestSchema, err = compiler.Compile(requestSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("compile request schema: %w", err)
			return
		}

		toolchainsSchema, err = compiler.Compile(toolchainsSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("compile toolchains schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateRequest validates JSON data against the request schema.
func ValidateRequest(data []byte) error {
	return validate(data, func() *jsonschema.Schema { return requestSchema }, "request")
}

// ValidateToolchains validates JSON data against the toolchains schema.
func ValidateToolchains(data []byte) error {
	return validate(data, func() *jsonschema.Schema { return toolchainsSchema }, "toolchains")
}

func validate(data []byte, sch func() *jsonschema.Schema, what string) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := sch().Validate(v); err != nil {
		return fmt.Errorf("%s validation failed: %w", what, err)
	}

	return nil
}
