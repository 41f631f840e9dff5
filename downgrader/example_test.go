package downgrader_test

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/erraggy/oasdowngrade/downgrader"
	"github.com/erraggy/oasdowngrade/parser"
)

// ExampleDowngradeParsed demonstrates downgrading an in-memory document.
func ExampleDowngradeParsed() {
	spec := `{
		"openapi": "3.1.0",
		"info": {"title": "Example", "version": "1.0.0"},
		"components": {
			"schemas": {
				"Status": {
					"type": ["string", "null"],
					"const": "FIXED"
				}
			}
		}
	}`

	parseResult, err := parser.New().ParseBytes([]byte(spec))
	if err != nil {
		log.Fatal(err)
	}

	result, err := downgrader.DowngradeParsed(*parseResult)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("openapi:", result.Document["openapi"])

	schema := result.Document["components"].(map[string]any)["schemas"].(map[string]any)["Status"]
	out, _ := json.Marshal(schema)
	fmt.Println(string(out))

	// Output:
	// openapi: 3.0.3
	// {"enum":["FIXED"],"nullable":true,"type":"string"}
}

// ExampleDowngrader_DowngradeParsed demonstrates auditing the applied rewrites.
func ExampleDowngrader_DowngradeParsed() {
	spec := `{
		"openapi": "3.1.0",
		"info": {"title": "Example", "version": "1.0.0"},
		"components": {
			"schemas": {
				"Tag": {"type": ["string", "null"]}
			}
		}
	}`

	parseResult, err := parser.New().ParseBytes([]byte(spec))
	if err != nil {
		log.Fatal(err)
	}

	d := downgrader.New()
	result, err := d.DowngradeParsed(*parseResult)
	if err != nil {
		log.Fatal(err)
	}

	for _, issue := range result.Issues {
		fmt.Println(issue.Path + ": " + issue.Message)
	}

	// Output:
	// openapi: Updated version from 3.1.0 to 3.0.3
	// components.schemas.Tag: Removed 'null' from type array
}
