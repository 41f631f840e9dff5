// Package downgrader rewrites OpenAPI 3.1 documents to OpenAPI 3.0.3.
//
// OpenAPI 3.1 schemas follow JSON Schema Draft 2020-12, while OpenAPI 3.0.x
// tooling expects the older Draft-04-derived dialect. The downgrader walks
// every schema reachable from the document tree and applies workarounds for
// the incompatibilities that break common generators:
//
//   - const definitions are rewritten to a single-value enum
//     (const: null becomes nullable: true, since enum: [null] is not
//     portable across 3.0.3 validators)
//   - "null" entries in type values are removed and the sibling
//     nullable: true is set instead
//   - anyOf branches consisting only of {type: "null"} are removed, with
//     nullable: true set on the surviving branches (the encoding FastAPI
//     and similar generators emit)
//
// The top-level openapi field is set to "3.0.3". The rewrite is best-effort
// and purely local: nodes the downgrader cannot interpret are left untouched,
// and a second pass over an already-downgraded document is a no-op.
//
// # Quick Start
//
// Downgrade a file:
//
//	result, err := downgrader.Downgrade("openapi-3.1.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// Or use a reusable Downgrader instance with an already-parsed document:
//
//	d := downgrader.New()
//	d.StrictMode = true
//	parseResult, _ := parser.New().Parse("openapi-3.1.yaml")
//	result, err := d.DowngradeParsed(*parseResult)
//
// Every rewrite is reported as an Issue with the dotted document path of the
// rewritten schema node, so callers can audit exactly what changed.
//
// # Related Packages
//
//   - [github.com/erraggy/oasdowngrade/parser] - Load specifications before downgrading
//   - [github.com/erraggy/oasdowngrade/writer] - Serialize downgraded specifications
package downgrader
