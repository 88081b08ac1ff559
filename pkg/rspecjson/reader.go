package rspecjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/dkoosis/rspecsum/pkg/rspecjson/schema"
)

const schemaName = "result.schema.json"

var (
	resultSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

func compileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile(schemaName)
		if err != nil {
			compileErr = fmt.Errorf("read result schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal result schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, doc); err != nil {
			compileErr = fmt.Errorf("add result schema resource: %w", err)
			return
		}
		resultSchema, err = compiler.Compile(schemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile result schema: %w", err)
		}
	})
	return resultSchema, compileErr
}

// ReadFile reads and validates one result document from fsys.
func ReadFile(fsys fs.FS, name string) (*ResultFile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read result file: %w", err)
	}
	f, err := ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Read parses a result document from an io.Reader.
func Read(r io.Reader) (*ResultFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes validates data against the result schema and decodes it.
func ReadBytes(data []byte) (*ResultFile, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var f ResultFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &f, nil
}

// Validate checks that data is a JSON document matching the result schema.
func Validate(data []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("result validation failed: %w", err)
	}
	return nil
}
