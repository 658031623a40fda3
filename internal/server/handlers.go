// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/routedoc/routedoc/internal/render"
	"github.com/routedoc/routedoc/pkg/types"
)

// EndpointPatch is the body of PATCH /api/docs/endpoints/:index.
// Absent fields are left unchanged.
type EndpointPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getDocs(c echo.Context) error {
	doc, err := s.store.Load()
	if err != nil {
		return s.storeError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *Server) putDocs(c echo.Context) error {
	doc, err := render.ReadJSON(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validateDocumentation(doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.store.Replace(doc); err != nil {
		return s.storeError(err)
	}
	s.logger.Info("documentation replaced", "endpoints", doc.TotalEndpoints)
	return c.JSON(http.StatusOK, doc)
}

func (s *Server) getEndpoint(c echo.Context) error {
	i, err := indexParam(c)
	if err != nil {
		return err
	}
	doc, err := s.store.Load()
	if err != nil {
		return s.storeError(err)
	}
	if i >= len(doc.Endpoints) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("endpoint %d not found", i))
	}
	return c.JSON(http.StatusOK, doc.Endpoints[i])
}

func (s *Server) patchEndpoint(c echo.Context) error {
	i, err := indexParam(c)
	if err != nil {
		return err
	}
	var patch EndpointPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patch body")
	}

	var updated types.Endpoint
	_, err = s.store.Update(func(doc *types.Documentation) error {
		if i >= len(doc.Endpoints) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("endpoint %d not found", i))
		}
		ep := &doc.Endpoints[i]
		if patch.Title != nil {
			ep.Title = *patch.Title
		}
		if patch.Description != nil {
			ep.Description = *patch.Description
		}
		if patch.Tags != nil {
			ep.Tags = append([]string{}, (*patch.Tags)...)
		}
		updated = *ep
		return nil
	})
	if err != nil {
		return s.storeError(err)
	}
	s.logger.Info("endpoint updated", "index", i, "endpoint", updated.Key())
	return c.JSON(http.StatusOK, updated)
}

func indexParam(c echo.Context) (int, error) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "index must be a non-negative integer")
	}
	return i, nil
}

// storeError maps store failures to HTTP errors.
func (s *Server) storeError(err error) error {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, ErrNoDocument):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	s.logger.Error("documentation store failure", "err", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "failed to access documentation file")
}

// validateDocumentation checks the fields every endpoint must carry.
func validateDocumentation(doc *types.Documentation) error {
	for i, ep := range doc.Endpoints {
		if !types.IsHTTPMethod(ep.Method) {
			return fmt.Errorf("endpoint %d: invalid method %q", i, ep.Method)
		}
		if ep.Path == "" {
			return fmt.Errorf("endpoint %d: path is required", i)
		}
	}
	return nil
}
