// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"regexp"
	"strings"

	"github.com/routedoc/routedoc/pkg/types"
)

var (
	// bodyAssignRegex matches "const body = await request.json()" and
	// "const data = req.body", capturing the assigned identifier.
	bodyAssignRegex = regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*(?::[^=]+)?=\s*(?:await\s+)?(?:\w+\.json\(\s*\)|(?:req|request)\.body\b)`)

	// jsonDestructureRegex matches "const { a, b } = await request.json()".
	jsonDestructureRegex = regexp.MustCompile(`(?:const|let|var)\s*\{([^}]*)\}\s*(?::[^=]+)?=\s*await\s+\w+\.json\(\s*\)`)

	// jsonDotRegex matches "(await request.json()).field".
	jsonDotRegex = regexp.MustCompile(`\(\s*await\s+\w+\.json\(\s*\)\s*\)\.(\w+)`)

	identRegex = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

	preferredBodyTypeRegex = regexp.MustCompile(`Request|Body|Input|Payload|Create|Update|Dto|DTO`)
)

// nonFieldMembers are member accesses on a body value that are not fields.
var nonFieldMembers = map[string]bool{
	"json": true, "text": true, "then": true, "get": true, "has": true,
	"keys": true, "length": true, "map": true, "forEach": true, "toString": true,
}

// bodyField is one property of an inferred request body.
type bodyField struct {
	Name     string
	Schema   *types.Schema
	Required bool
}

// bodyStrategies are tried in order; the first one to find fields wins.
var bodyStrategies = []func(*Context) []bodyField{
	bodyFromDestructuring,
	bodyFromReferences,
	bodyFromDeclarations,
}

// extractRequestBody infers the request body of a mutating handler.
func extractRequestBody(ctx *Context) {
	if !bodyTriggered(ctx) {
		return
	}

	contentType := "application/json"
	if strings.Contains(ctx.Source, ".formData(") {
		contentType = "multipart/form-data"
	}

	for _, strategy := range bodyStrategies {
		if fields := strategy(ctx); len(fields) > 0 {
			schema, example := buildBody(fields)
			ctx.Endpoint.RequestBody = &types.RequestBodySpec{
				ContentType: contentType,
				Schema:      schema,
				Example:     example.Ptr(),
			}
			return
		}
	}

	ctx.Endpoint.RequestBody = &types.RequestBodySpec{
		ContentType: contentType,
		Schema:      types.ObjectSchema(),
	}
}

func buildBody(fields []bodyField) (*types.Schema, types.Value) {
	schema := types.ObjectSchema()
	example := types.Object()
	for _, f := range fields {
		schema.Properties[f.Name] = f.Schema
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
		example = example.With(f.Name, exampleForSchema(f.Name, f.Schema))
	}
	return schema, example
}

// bodyIdentifiers returns the names the body is bound to: "body" plus every
// identifier assigned from a JSON parse or req.body.
func bodyIdentifiers(src string) []string {
	idents := []string{"body"}
	seen := map[string]bool{"body": true}
	for _, m := range bodyAssignRegex.FindAllStringSubmatch(src, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			idents = append(idents, m[1])
		}
	}
	return idents
}

// bodyRefPattern builds an alternation matching any body identifier.
func bodyRefPattern(src string) string {
	alts := []string{`(?:req|request)\.body`}
	for _, ident := range bodyIdentifiers(src) {
		alts = append(alts, `\b`+regexp.QuoteMeta(ident))
	}
	return `(?:` + strings.Join(alts, "|") + `)\b`
}

// bodyFromDestructuring reads "const { a, b? } = body", typing each property
// from a matching interface field.
func bodyFromDestructuring(ctx *Context) []bodyField {
	re := regexp.MustCompile(`(?:const|let|var)\s*\{([^}]*)\}\s*(?::[^=]+)?=\s*(?:await\s+)?` + bodyRefPattern(ctx.Source))
	m := re.FindStringSubmatch(ctx.Source)
	if m == nil {
		return nil
	}

	ifaces := parseInterfaces(ctx.Source)
	var fields []bodyField
	for _, p := range parseDestructuring(m[1]) {
		schema := &types.Schema{Type: "string"}
		if t, ok := fieldType(ifaces, p.Name); ok {
			schema = typeToSchema(t)
		}
		fields = append(fields, bodyField{Name: p.Name, Schema: schema, Required: p.Required})
	}
	return fields
}

// bodyFromReferences collects names read from the body by dot access or by
// destructuring an awaited JSON parse. Types follow the example values.
func bodyFromReferences(ctx *Context) []bodyField {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] && !nonFieldMembers[name] && identRegex.MatchString(name) {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, m := range jsonDestructureRegex.FindAllStringSubmatch(ctx.Source, -1) {
		for _, p := range parseDestructuring(m[1]) {
			add(p.Name)
		}
	}
	for _, m := range jsonDotRegex.FindAllStringSubmatch(ctx.Source, -1) {
		add(m[1])
	}
	dot := regexp.MustCompile(bodyRefPattern(ctx.Source) + `\??\.(\w+)`)
	for _, m := range dot.FindAllStringSubmatch(ctx.Source, -1) {
		add(m[1])
	}

	fields := make([]bodyField, 0, len(names))
	for _, name := range names {
		fields = append(fields, bodyField{
			Name:     name,
			Schema:   &types.Schema{Type: schemaTypeOf(exampleForName(name))},
			Required: true,
		})
	}
	return fields
}

// bodyFromDeclarations builds the body from a local interface, preferring
// names that look like request payloads.
func bodyFromDeclarations(ctx *Context) []bodyField {
	ifaces := parseInterfaces(ctx.Source)
	if len(ifaces) == 0 {
		return nil
	}

	chosen := ifaces[0]
	for _, iface := range ifaces {
		if preferredBodyTypeRegex.MatchString(iface.Name) {
			chosen = iface
			break
		}
	}

	fields := make([]bodyField, 0, len(chosen.Fields))
	for _, f := range chosen.Fields {
		fields = append(fields, bodyField{
			Name:     f.Name,
			Schema:   typeToSchema(f.Type),
			Required: !f.Optional,
		})
	}
	return fields
}

// destructuredProperty is one entry of a destructuring pattern.
type destructuredProperty struct {
	Name     string
	Required bool
}

// parseDestructuring parses "a, b?, c = 1, d: alias, ...rest". A trailing
// '?' or a default value makes the property optional; rest elements are
// skipped.
func parseDestructuring(list string) []destructuredProperty {
	var out []destructuredProperty
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" || strings.HasPrefix(item, "...") {
			continue
		}

		required := true
		if key, _, found := strings.Cut(item, "="); found {
			required = false
			item = key
		}
		if key, _, found := strings.Cut(item, ":"); found {
			item = key
		}
		name := strings.TrimSpace(item)
		if strings.HasSuffix(name, "?") {
			required = false
			name = strings.TrimSpace(strings.TrimSuffix(name, "?"))
		}
		if identRegex.MatchString(name) {
			out = append(out, destructuredProperty{Name: name, Required: required})
		}
	}
	return out
}

func schemaTypeOf(v types.Value) string {
	switch v.Kind() {
	case types.KindBool:
		return "boolean"
	case types.KindNumber:
		return "number"
	case types.KindList:
		return "array"
	case types.KindObject:
		return "object"
	}
	return "string"
}
