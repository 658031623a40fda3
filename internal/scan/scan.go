// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scan assembles a Documentation from a route tree.
//
// A scan locates handler files, extracts the verbs each one exports and runs
// inference once per (file, verb) pair. Endpoints appear in file order, then
// verb order, whatever the number of workers.
package scan

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/routedoc/routedoc/internal/infer"
	"github.com/routedoc/routedoc/internal/methods"
	"github.com/routedoc/routedoc/internal/scanner"
	"github.com/routedoc/routedoc/pkg/types"
)

// ErrRootNotFound is matched by errors.Is when the scan root is missing.
var ErrRootNotFound = scanner.ErrRootNotFound

// Default info block values.
const (
	DefaultTitle   = "API Documentation"
	DefaultVersion = "1.0.0"
)

// ScanError is an internal failure that aborted a scan.
type ScanError struct {
	Op  string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan failed during %s: %v", e.Op, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Clock supplies the generation timestamp.
type Clock func() time.Time

// Options configures a scan.
type Options struct {
	// RootPath is the project directory (defaults to ".")
	RootPath string

	// Ignore are doublestar patterns for files to skip
	// (defaults to scanner.DefaultIgnore)
	Ignore []string

	// Info is copied into the result; empty fields get defaults
	Info types.Info

	// Workers bounds the number of files processed concurrently.
	// Values below 2 process files one at a time.
	Workers int

	// Clock defaults to time.Now
	Clock Clock

	// FS defaults to the local disk
	FS scanner.FileSystem

	// Engine defaults to infer.New(Logger)
	Engine *infer.Engine

	// Logger receives per-file and per-route failures. Nil discards.
	Logger *slog.Logger
}

// Run scans opts.RootPath and returns the documentation model.
//
// A missing root yields a *scanner.RootNotFoundError wrapping
// ErrRootNotFound. Any other returned error is a *ScanError. Unreadable
// files and failing routes are logged and skipped.
func Run(opts Options) (*types.Documentation, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	engine := opts.Engine
	if engine == nil {
		engine = infer.New(logger)
	}

	s := scanner.New(scanner.Config{
		RootPath: opts.RootPath,
		Ignore:   opts.Ignore,
		FS:       opts.FS,
	})
	if err := s.CheckRoot(); err != nil {
		return nil, err
	}

	files, err := s.Locate()
	if err != nil {
		return nil, &ScanError{Op: "locate", Err: err}
	}
	logger.Debug("located handler files", "root", s.Root(), "count", len(files))

	w := &worker{scanner: s, engine: engine, logger: logger}
	results := make([][]types.Endpoint, len(files))

	var g errgroup.Group
	if opts.Workers > 1 {
		g.SetLimit(opts.Workers)
	} else {
		g.SetLimit(1)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			results[i] = w.process(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &ScanError{Op: "process", Err: err}
	}

	endpoints := []types.Endpoint{}
	for _, eps := range results {
		endpoints = append(endpoints, eps...)
	}

	return &types.Documentation{
		Info:           withDefaults(opts.Info),
		Endpoints:      endpoints,
		TotalEndpoints: len(endpoints),
		GeneratedAt:    clock().UTC(),
	}, nil
}

func withDefaults(info types.Info) types.Info {
	if info.Title == "" {
		info.Title = DefaultTitle
	}
	if info.Version == "" {
		info.Version = DefaultVersion
	}
	return info
}

// worker turns one handler file into endpoints.
type worker struct {
	scanner *scanner.Scanner
	engine  *infer.Engine
	logger  *slog.Logger
}

// read loads one handler file.
func (w *worker) read(file string) (types.RouteFile, error) {
	content, err := w.scanner.Read(file)
	if err != nil {
		return types.RouteFile{}, err
	}
	return types.RouteFile{Path: file, Content: content}, nil
}

// process returns the endpoints of file in verb order. It never fails; read
// errors and route panics are logged and the affected part is omitted.
func (w *worker) process(file string) []types.Endpoint {
	rf, err := w.read(file)
	if err != nil {
		w.logger.Warn("skipping unreadable file", "file", file, "error", err)
		return nil
	}

	verbs := methods.Extract(rf.Content)
	if len(verbs) == 0 {
		w.logger.Debug("no handler exports", "file", rf.Path)
		return nil
	}

	routePath := w.scanner.RoutePath(rf.Path)
	url := scanner.PathToURL(routePath)
	endpoints := make([]types.Endpoint, 0, len(verbs))
	for _, verb := range verbs {
		route := types.ParsedRoute{
			Method:     verb,
			URL:        url,
			SourceFile: rf.Path,
			Content:    rf.Content,
			RoutePath:  routePath,
		}
		ep, err := w.infer(route)
		if err != nil {
			w.logger.Warn("skipping route", "file", rf.Path, "method", verb, "error", err)
			continue
		}
		w.logger.Debug("documented route", "method", verb, "path", url)
		endpoints = append(endpoints, ep)
	}
	return endpoints
}

func (w *worker) infer(route types.ParsedRoute) (ep types.Endpoint, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("inference panicked: %v", r)
		}
	}()
	return w.engine.Infer(route), nil
}
