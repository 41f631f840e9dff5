// Package oasdowngrade provides tools for downgrading OpenAPI 3.1 specification
// documents to OpenAPI 3.0.3, so that they can be used with generators and
// renderers that still lack full support for 3.1 (including the popular
// openapi-generator).
//
// OpenAPI 3.1 adopted JSON Schema Draft 2020-12, which introduced constructs
// that the Draft-04-derived dialect used by 3.0.x tooling does not understand.
// oasdowngrade rewrites the two that break real-world generators:
//
//   - const definitions   -> enum with a single value
//   - null types          -> removed, with the sibling nullable property set
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Load OpenAPI documents from files, URLs, or readers (JSON or YAML)
//   - downgrader: Rewrite a parsed document from OAS 3.1.x to OAS 3.0.3
//   - writer: Serialize the downgraded document as JSON, YAML, or a Redoc HTML page
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasdowngrade
//
// # Quick Start
//
// Downgrade a specification file:
//
//	import "github.com/erraggy/oasdowngrade/downgrader"
//
//	result, err := downgrader.Downgrade("openapi-3.1.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Rewrites applied: %d\n", result.InfoCount)
//
// Write the result:
//
//	import "github.com/erraggy/oasdowngrade/writer"
//
//	err = writer.WriteFile(result.Document, "openapi-3.0.3.json", writer.FormatJSON)
//
// The CLI at cmd/oasdowngrade wires the three packages together:
//
//	oasdowngrade -o openapi-3.0.3.json openapi-3.1.yaml
//
// The downgrade is best-effort: schema nodes the rewriter cannot interpret are
// left untouched rather than failing the whole document, and every rewrite is
// reported as an issue on the result so callers can audit what changed.
package oasdowngrade
