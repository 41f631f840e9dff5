// This file implements the recursive schema rewrite from the JSON Schema
// Draft 2020-12 dialect used by OAS 3.1 to the Draft-04-derived dialect
// used by OAS 3.0.3.

package downgrader

import (
	"fmt"

	"github.com/erraggy/oasdowngrade/parser"
)

// rewriter carries the per-downgrade state for one document walk
type rewriter struct {
	result *Result
	log    parser.Logger
}

// rewriteDocument stamps the target version and walks the whole tree for schemas
func (w *rewriter) rewriteDocument(doc map[string]any) {
	if v, ok := doc["openapi"]; ok {
		doc["openapi"] = TargetVersion
		w.addInfo("openapi", fmt.Sprintf("Updated version from %v to %s", v, TargetVersion), "")
	} else {
		doc["openapi"] = TargetVersion
		w.addInfo("openapi", fmt.Sprintf("Set missing version field to %s", TargetVersion), "")
	}

	w.findSchemas(doc, "")
}

// findSchemas walks the non-schema regions of the document. Two keys enter
// schema context: 'schema' (a single schema, as in parameters, media types,
// and headers) and 'schemas' (a named map of schemas, as in components).
// Everything else is traversed generically, so schemas are found at any
// depth: paths, webhooks, callbacks, component parameters, and so on.
func (w *rewriter) findSchemas(v any, path string) {
	switch node := v.(type) {
	case map[string]any:
		for key, child := range node {
			childPath := joinPath(path, key)
			switch key {
			case "schema":
				if m, ok := child.(map[string]any); ok {
					w.rewriteSchema(m, childPath)
					continue
				}
			case "schemas":
				if m, ok := child.(map[string]any); ok {
					for name, s := range m {
						if sm, ok := s.(map[string]any); ok {
							w.rewriteSchema(sm, joinPath(childPath, name))
						}
					}
					continue
				}
			}
			w.findSchemas(child, childPath)
		}
	case []any:
		for i, child := range node {
			w.findSchemas(child, fmt.Sprintf("%s[%d]", path, i))
		}
	}
}

// rewriteSchema applies the downgrade rules to one schema node, then recurses
// into the keywords that hold sub-schemas. The rules are purely local to the
// node, so parent/child rewrite order does not matter.
func (w *rewriter) rewriteSchema(node map[string]any, path string) {
	w.rewriteConst(node, path)
	w.rewriteNullType(node, path)
	w.rewriteNullAnyOf(node, path)

	if props, ok := node["properties"].(map[string]any); ok {
		for name, s := range props {
			if sm, ok := s.(map[string]any); ok {
				w.rewriteSchema(sm, joinPath(path+".properties", name))
			}
		}
	}

	switch items := node["items"].(type) {
	case map[string]any:
		w.rewriteSchema(items, path+".items")
	case []any:
		// Tuple typing: items as a sequence of schemas
		for i, s := range items {
			if sm, ok := s.(map[string]any); ok {
				w.rewriteSchema(sm, fmt.Sprintf("%s.items[%d]", path, i))
			}
		}
	}

	// additionalProperties may be a schema or a boolean; booleans are untouched
	if ap, ok := node["additionalProperties"].(map[string]any); ok {
		w.rewriteSchema(ap, path+".additionalProperties")
	}

	for _, key := range []string{"allOf", "oneOf", "anyOf"} {
		if seq, ok := node[key].([]any); ok {
			for i, s := range seq {
				if sm, ok := s.(map[string]any); ok {
					w.rewriteSchema(sm, fmt.Sprintf("%s.%s[%d]", path, key, i))
				}
			}
		}
	}

	if not, ok := node["not"].(map[string]any); ok {
		w.rewriteSchema(not, path+".not")
	}
}

// rewriteConst eliminates the 'const' keyword, which the 3.0.3 dialect lacks.
// A single-value enum accepts exactly the same values, so const: v becomes
// enum: [v]. Any pre-existing enum is collapsed: const is strictly narrower,
// and the enum must never gain values.
//
// const: null is special-cased to nullable: true with no enum, because
// enum: [null] without a type is not portable across 3.0.3 validators.
func (w *rewriter) rewriteConst(node map[string]any, path string) {
	constVal, ok := node["const"]
	if !ok {
		return
	}

	delete(node, "const")

	if constVal == nil {
		node["nullable"] = true
		w.log.Debug("rewrote const: null", "path", path)
		w.addInfo(path, "Rewrote 'const: null' to 'nullable: true'", "")
		return
	}

	node["enum"] = []any{constVal}
	w.log.Debug("rewrote const", "path", path)
	w.addInfo(path, "Rewrote 'const' to a single-value 'enum'", "")
}

// rewriteNullType eliminates "null" from 'type' values. 3.0.3 has no null
// type and no array-valued type; nullability is recorded out-of-band via the
// sibling nullable keyword, and the remaining type collapses to a single
// string when possible. Types not mentioning "null" are left untouched.
func (w *rewriter) rewriteNullType(node map[string]any, path string) {
	switch tv := node["type"].(type) {
	case string:
		if tv != "null" {
			return
		}
		delete(node, "type")
		node["nullable"] = true
		w.log.Debug("rewrote type: null", "path", path)
		w.addInfo(path, "Removed 'type: null'", "set nullable: true")

	case []any:
		kept := make([]any, 0, len(tv))
		hadNull := false
		for _, t := range tv {
			if t == "null" {
				hadNull = true
				continue
			}
			kept = append(kept, t)
		}
		if !hadNull {
			return
		}

		switch len(kept) {
		case 0:
			delete(node, "type")
		case 1:
			node["type"] = kept[0]
		default:
			// Still array-valued; 3.0.3 tooling may reject this, but dropping
			// type information entirely would be worse
			node["type"] = kept
		}
		node["nullable"] = true
		w.log.Debug("rewrote null type array", "path", path)
		w.addInfo(path, "Removed 'null' from type array", "set nullable: true")
	}
}

// rewriteNullAnyOf handles the anyOf encoding of nullability that FastAPI and
// similar generators emit:
//
//	anyOf: [{type: string}, {type: "null"}]
//
// Members typed "null" are removed and nullable: true is set on the surviving
// mapping members. If no members survive, the anyOf itself is dropped and the
// enclosing schema becomes nullable.
func (w *rewriter) rewriteNullAnyOf(node map[string]any, path string) {
	seq, ok := node["anyOf"].([]any)
	if !ok {
		return
	}

	hadNull := false
	kept := make([]any, 0, len(seq))
	for _, member := range seq {
		if m, ok := member.(map[string]any); ok && m["type"] == "null" {
			hadNull = true
			continue
		}
		kept = append(kept, member)
	}
	if !hadNull {
		return
	}

	if len(kept) == 0 {
		delete(node, "anyOf")
		node["nullable"] = true
		w.addInfo(path, "Removed 'anyOf' consisting only of null types", "set nullable: true")
		return
	}

	for _, member := range kept {
		if m, ok := member.(map[string]any); ok {
			m["nullable"] = true
		}
	}
	node["anyOf"] = kept
	w.log.Debug("rewrote null anyOf member", "path", path)
	w.addInfo(path, "Removed null-typed 'anyOf' member", "set nullable: true on remaining members")
}

// addInfo appends an informational issue for a rewrite that was applied
func (w *rewriter) addInfo(path, message, context string) {
	w.result.Issues = append(w.result.Issues, Issue{
		Path:     path,
		Message:  message,
		Severity: SeverityInfo,
		Context:  context,
	})
}

// joinPath joins a parent path and a key with a dot, handling the empty root
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
