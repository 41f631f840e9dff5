// Package writer serializes downgraded OpenAPI documents.
//
// Three output formats are supported:
//
//   - json: indented JSON (the default)
//   - yaml: YAML
//   - redoc: a standalone HTML page that renders the document with Redoc
//
// The writer is a pure serialization layer: it receives the document tree the
// downgrader produced and an explicit format selector, and writes bytes. When
// no output path is supplied, WriteFile derives one from the source path
// (api.yaml becomes api.3.0.3.yaml), keeping the default an explicit value
// rather than process-wide state.
package writer
