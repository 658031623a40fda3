// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"regexp"

	"github.com/routedoc/routedoc/pkg/types"
)

var (
	authMarkerRegex = regexp.MustCompile(`getServerSession|getSession|\bauth\(\s*\)|currentUser|requireAuth|withAuth|verifyToken|\b401\b|(?i:unauthorized)`)
	apiKeyRegex     = regexp.MustCompile(`(?i)x-api-key|api[-_]?key`)
	basicAuthRegex  = regexp.MustCompile(`(?i)\bbasic\s|['"\x60]Basic\b`)
)

// authTemplates are the descriptive records for each detected scheme.
var authTemplates = map[string]types.AuthSpec{
	types.AuthBearer: {
		Required:      true,
		Type:          types.AuthBearer,
		HeaderName:    "Authorization",
		HeaderExample: "Bearer <token>",
		LoginEndpoint: "/api/auth/signin",
		Description:   "Requires a valid session or bearer token",
		Steps: []string{
			"Sign in through the login endpoint",
			"Copy the session token from the response",
			"Send it in the Authorization header as \"Bearer <token>\"",
		},
	},
	types.AuthAPIKey: {
		Required:      true,
		Type:          types.AuthAPIKey,
		HeaderName:    "X-API-Key",
		HeaderExample: "<api-key>",
		Description:   "Requires an API key",
		Steps: []string{
			"Create an API key in the account settings",
			"Send it in the X-API-Key header",
		},
	},
	types.AuthBasic: {
		Required:      true,
		Type:          types.AuthBasic,
		HeaderName:    "Authorization",
		HeaderExample: "Basic base64(username:password)",
		Description:   "Requires HTTP basic credentials",
		Steps: []string{
			"Join the username and password with a colon",
			"Base64-encode the result",
			"Send it in the Authorization header as \"Basic <credentials>\"",
		},
	},
}

// extractAuth classifies the authentication a handler expects. Without any
// marker the endpoint is recorded as requiring none.
func extractAuth(ctx *Context) {
	ctx.Endpoint.Authentication = DetectAuth(ctx.Source)
}

// DetectAuth returns the authentication record for handler source.
func DetectAuth(src string) types.AuthSpec {
	if !authMarkerRegex.MatchString(src) {
		return types.AuthSpec{
			Required:    false,
			Type:        types.AuthNone,
			Description: "No authentication required",
		}
	}

	kind := types.AuthBearer
	switch {
	case apiKeyRegex.MatchString(src):
		kind = types.AuthAPIKey
	case basicAuthRegex.MatchString(src):
		kind = types.AuthBasic
	}

	spec := authTemplates[kind]
	spec.Steps = append([]string(nil), spec.Steps...)
	return spec
}
