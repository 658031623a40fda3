// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package infer derives endpoint metadata from route handler source text.
//
// Inference is a fixed pipeline of extractors. Each extractor reads the
// handler source and fills one part of the endpoint; an extractor that finds
// nothing leaves its field empty or at its default, and a failing extractor
// never affects the others.
package infer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/routedoc/routedoc/internal/methods"
	"github.com/routedoc/routedoc/internal/scanner"
	"github.com/routedoc/routedoc/pkg/types"
)

// Context is the state shared by the extractors of one inference run.
type Context struct {
	// Route is the (file, verb) pair being documented
	Route types.ParsedRoute

	// Source is the handler file text
	Source string

	// Offset is the byte offset of the verb's export signature, or -1
	Offset int

	// Doc is the doc comment attached to the handler, nil if none
	Doc *DocBlock

	// Endpoint is the record under construction
	Endpoint *types.Endpoint
}

// annotationSource returns the text @param and @response annotations are
// read from: the attached doc comment when present, else the whole file.
func (c *Context) annotationSource() string {
	if c.Doc != nil {
		return c.Doc.Raw
	}
	return c.Source
}

// Extractor fills one endpoint field.
type Extractor struct {
	Name string
	Run  func(*Context)
}

// DefaultExtractors is the inference pipeline in execution order.
// Authentication runs before headers, which consult it.
var DefaultExtractors = []Extractor{
	{Name: "summary", Run: extractSummary},
	{Name: "authentication", Run: extractAuth},
	{Name: "path-parameters", Run: extractPathParams},
	{Name: "query-parameters", Run: extractQueryParams},
	{Name: "body-parameters", Run: extractBodyParams},
	{Name: "headers", Run: extractHeaders},
	{Name: "request-body", Run: extractRequestBody},
	{Name: "responses", Run: extractResponses},
	{Name: "tags", Run: extractTags},
}

// Engine runs the extractor pipeline.
type Engine struct {
	extractors []Extractor
	logger     *slog.Logger
}

// New creates an Engine with the default pipeline. A nil logger discards.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		extractors: DefaultExtractors,
		logger:     logger,
	}
}

// WithExtractors returns a copy of e running the given pipeline.
func (e *Engine) WithExtractors(extractors []Extractor) *Engine {
	return &Engine{
		extractors: extractors,
		logger:     e.logger,
	}
}

// Infer builds the endpoint for route. Method, Path and File are always set.
func (e *Engine) Infer(route types.ParsedRoute) types.Endpoint {
	ep := types.Endpoint{
		Method:     route.Method,
		Path:       route.URL,
		File:       route.SourceFile,
		Parameters: []types.Parameter{},
		Responses:  make(map[string]types.ResponseSpec),
		Authentication: types.AuthSpec{
			Type: types.AuthNone,
		},
	}

	ctx := &Context{
		Route:    route,
		Source:   route.Content,
		Offset:   methods.Locate(route.Content, route.Method),
		Endpoint: &ep,
	}
	ctx.Doc = FindDocBlock(ctx.Source, ctx.Offset)

	for _, ex := range e.extractors {
		if err := run(ex, ctx); err != nil {
			e.logger.Warn("extractor failed",
				"extractor", ex.Name,
				"file", route.SourceFile,
				"method", route.Method,
				"error", err)
		}
	}

	if ep.Title == "" {
		ep.Title = SynthesizeTitle(route.Method, route.URL)
	}
	return ep
}

// run executes one extractor, converting a panic into an error.
func run(ex Extractor, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	ex.Run(ctx)
	return nil
}

// extractTags uses the first directory below the api anchor.
func extractTags(ctx *Context) {
	p := ctx.Route.RoutePath
	if p == "" {
		p = ctx.Route.SourceFile
	}
	if tag := scanner.TagFromPath(p); tag != "" {
		ctx.Endpoint.Tags = []string{tag}
	}
}
