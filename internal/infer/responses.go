// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/routedoc/routedoc/pkg/types"
)

var (
	// responseCallRegex matches NextResponse.json(, Response.json( and
	// res.status(N).json(. Group 1 is the chained status, if any.
	responseCallRegex = regexp.MustCompile(`\b(?:NextResponse|Response)\.json\(|\bres(?:\.status\(\s*(\d{3})\s*\))?\.(?:json|send)\(`)

	statusOptionRegex  = regexp.MustCompile(`\bstatus\s*:\s*(\d{3})\b`)
	errorMessageRegex  = regexp.MustCompile(`\b(?:error|message)\s*:\s*['"\x60]([^'"\x60]+)['"\x60]`)
	payloadPathRegex   = regexp.MustCompile(`^[A-Za-z_$][\w$]*(?:\??\.[A-Za-z_$][\w$]*)*$`)
	objectKeyRegex     = regexp.MustCompile(`^['"]?([A-Za-z_$][\w$]*)['"]?\s*(?::|$)`)
	responseAnnotation = regexp.MustCompile(`@response\s+(\d{3})\b[ \t]*([^\n]*)`)
)

// Field names whose presence in the source marks them required or optional
// in every response.
var (
	requiredVocabulary = []string{"id", "createdAt", "status"}
	optionalVocabulary = []string{"description", "notes", "tags"}
)

// responseCall is one response construction found in the source.
type responseCall struct {
	Status  int
	Payload string
}

func extractResponses(ctx *Context) {
	responses := detectedSuccess(ctx.Source)
	if len(responses) == 0 {
		responses = defaultResponses(ctx.Route.Method)
	}
	for code, spec := range detectedErrors(ctx.Source) {
		responses[code] = spec
	}
	for code, spec := range responseAnnotations(ctx.annotationSource()) {
		responses[code] = spec
	}

	required := vocabularyIn(ctx.Source, requiredVocabulary)
	optional := vocabularyIn(ctx.Source, optionalVocabulary)
	for code, spec := range responses {
		spec.RequiredFields = append([]string(nil), required...)
		spec.OptionalFields = append([]string(nil), optional...)
		responses[code] = spec
	}
	ctx.Endpoint.Responses = responses
}

// findResponseCalls returns every response construction in source order.
func findResponseCalls(src string) []responseCall {
	var calls []responseCall
	for _, loc := range responseCallRegex.FindAllStringSubmatchIndex(src, -1) {
		args := callArguments(src, loc[1]-1)
		call := responseCall{Status: http.StatusOK}
		if len(args) > 0 {
			call.Payload = args[0]
		}
		if s := submatch(src, loc, 1); s != "" {
			call.Status, _ = strconv.Atoi(s)
		} else if len(args) > 1 {
			if m := statusOptionRegex.FindStringSubmatch(args[1]); m != nil {
				call.Status, _ = strconv.Atoi(m[1])
			}
		}
		calls = append(calls, call)
	}
	return calls
}

// detectedSuccess returns the entry for the first success payload whose
// names are recognised, or nil when none is.
func detectedSuccess(src string) map[string]types.ResponseSpec {
	for _, call := range findResponseCalls(src) {
		if call.Status >= 400 {
			continue
		}
		example, ok := payloadExample(call.Payload)
		if !ok {
			continue
		}
		return map[string]types.ResponseSpec{
			strconv.Itoa(call.Status): {
				Description: successDescription(call.Status),
				Example:     example.Ptr(),
			},
		}
	}
	return nil
}

// payloadExample maps a payload expression to an example value. Object
// literals and identifiers are looked up in the catalog; object literals
// with unknown keys get a generic object.
func payloadExample(payload string) (types.Value, bool) {
	payload = strings.TrimSpace(payload)
	switch {
	case strings.HasPrefix(payload, "{"):
		keys := objectLiteralKeys(payload)
		if len(keys) == 0 {
			return types.Value{}, false
		}
		if v, ok := catalogExample(keys); ok {
			return v, true
		}
		v := types.Object()
		for _, key := range keys {
			v = v.With(key, exampleForName(key))
		}
		return v, true
	case payloadPathRegex.MatchString(payload):
		parts := strings.Split(strings.ReplaceAll(payload, "?", ""), ".")
		return catalogExample([]string{parts[len(parts)-1]})
	}
	return types.Value{}, false
}

// objectLiteralKeys returns the top-level keys of an object literal,
// skipping spread elements.
func objectLiteralKeys(literal string) []string {
	body, ok := balancedBlock(literal, 0)
	if !ok {
		return nil
	}
	var keys []string
	for _, member := range splitMembers(body) {
		if strings.HasPrefix(member, "...") {
			continue
		}
		if m := objectKeyRegex.FindStringSubmatch(member); m != nil {
			keys = append(keys, m[1])
		}
	}
	return keys
}

// detectedErrors returns an entry per error status constructed in the
// source. The first construction of each status wins.
func detectedErrors(src string) map[string]types.ResponseSpec {
	out := make(map[string]types.ResponseSpec)
	for _, call := range findResponseCalls(src) {
		if call.Status < 400 {
			continue
		}
		code := strconv.Itoa(call.Status)
		if _, ok := out[code]; ok {
			continue
		}
		message := http.StatusText(call.Status)
		if m := errorMessageRegex.FindStringSubmatch(call.Payload); m != nil {
			message = m[1]
		}
		out[code] = types.ResponseSpec{
			Description: statusDescription(call.Status),
			Example:     errorExample(message).Ptr(),
		}
	}
	return out
}

// defaultResponses is the method-specific fallback.
func defaultResponses(method string) map[string]types.ResponseSpec {
	notFound := types.ResponseSpec{
		Description: "Resource not found",
		Example:     errorExample("Not found").Ptr(),
	}
	badRequest := types.ResponseSpec{
		Description: "Invalid request",
		Example:     errorExample("Invalid request body").Ptr(),
	}
	resource := types.Object(
		types.M("id", types.String("123")),
		types.M("createdAt", types.String(sampleTimestamp)),
	)

	switch method {
	case types.MethodGet:
		return map[string]types.ResponseSpec{
			"200": {Description: "Successful response", Example: genericListExample().Ptr()},
			"404": notFound,
		}
	case types.MethodPost:
		return map[string]types.ResponseSpec{
			"201": {Description: "Resource created", Example: resource.Ptr()},
			"400": badRequest,
		}
	case types.MethodPut, types.MethodPatch:
		return map[string]types.ResponseSpec{
			"200": {Description: "Resource updated", Example: resource.Ptr()},
			"400": badRequest,
		}
	case types.MethodDelete:
		return map[string]types.ResponseSpec{
			"200": {Description: "Resource deleted", Example: types.Object(
				types.M("success", types.Bool(true)),
				types.M("message", types.String("Resource deleted")),
			).Ptr()},
			"404": notFound,
		}
	}
	return map[string]types.ResponseSpec{
		"200": {Description: "Successful response"},
	}
}

// responseAnnotations parses "@response 200 description {json}" lines. When
// the trailing JSON does not parse, the whole remainder is the description.
func responseAnnotations(text string) map[string]types.ResponseSpec {
	out := make(map[string]types.ResponseSpec)
	for _, m := range responseAnnotation.FindAllStringSubmatch(text, -1) {
		code := m[1]
		rest := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[2]), "*/"))

		spec := types.ResponseSpec{Description: rest}
		if i := strings.Index(rest, "{"); i >= 0 {
			if v, err := types.ParseJSON([]byte(rest[i:])); err == nil {
				spec.Description = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest[:i]), "-:"))
				spec.Example = v.Ptr()
			}
		}
		if spec.Description == "" {
			status, _ := strconv.Atoi(code)
			spec.Description = statusDescription(status)
		}
		out[code] = spec
	}
	return out
}

func vocabularyIn(src string, vocabulary []string) []string {
	var found []string
	for _, word := range vocabulary {
		if strings.Contains(src, word) {
			found = append(found, word)
		}
	}
	return found
}

func successDescription(status int) string {
	switch status {
	case http.StatusCreated:
		return "Resource created"
	case http.StatusAccepted:
		return "Request accepted"
	case http.StatusNoContent:
		return "No content"
	}
	return "Successful response"
}

func statusDescription(status int) string {
	if status < 400 {
		return successDescription(status)
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Error response"
}

// callArguments splits the top-level arguments of the call whose opening
// parenthesis is at open. String literals are skipped over.
func callArguments(src string, open int) []string {
	if open < 0 || open >= len(src) || src[open] != '(' {
		return nil
	}
	var args []string
	depth := 0
	start := open + 1
	for i := open; i < len(src); i++ {
		switch c := src[i]; c {
		case '\'', '"', '`':
			i = skipString(src, i)
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				if arg := strings.TrimSpace(src[start:i]); arg != "" {
					args = append(args, arg)
				}
				return args
			}
		case ',':
			if depth == 1 {
				args = append(args, strings.TrimSpace(src[start:i]))
				start = i + 1
			}
		}
	}
	return args
}

// skipString returns the index of the quote closing the literal at i.
func skipString(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}
	return len(src) - 1
}
