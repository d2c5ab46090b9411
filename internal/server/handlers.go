package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jsnanigans/textquote/pkg/textquote"
)

// DocumentRequest replaces the cached content of a document.
type DocumentRequest struct {
	Content string `json:"content"`
}

// DocumentResponse acknowledges a cached document.
type DocumentResponse struct {
	Name     string `json:"name"`
	Length   int    `json:"length"`
	Replaced bool   `json:"replaced"`
}

// ExtractRequest asks for a selector covering [Start, End).
type ExtractRequest struct {
	Start         *int `json:"start"`
	End           *int `json:"end"`
	ContextLength *int `json:"context_length,omitempty"`
}

// ResolveRequest asks for the current range of a selector.
type ResolveRequest struct {
	Selector *textquote.Selector `json:"selector"`
	Hint     *int                `json:"hint,omitempty"`
}

// ErrorResponse is returned for failed resolutions.
type ErrorResponse struct {
	Error    string `json:"error"`
	Orphaned bool   `json:"orphaned,omitempty"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Documents int    `json:"documents"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Documents: s.docs.Len()})
}

func (s *Server) handlePutDocument(c echo.Context) error {
	name := c.Param("name")

	var req DocumentRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid document request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	old, replaced := s.docs.Peek(name)
	s.docs.Add(name, req.Content)

	if replaced {
		s.logger.Debug("document replaced",
			zap.String("name", name),
			zap.Int("old_length", len(old)),
			zap.Int("new_length", len(req.Content)),
		)
	} else {
		s.logger.Debug("document cached", zap.String("name", name), zap.Int("length", len(req.Content)))
	}

	return c.JSON(http.StatusOK, DocumentResponse{Name: name, Length: len(req.Content), Replaced: replaced})
}

func (s *Server) document(c echo.Context) (string, error) {
	name := c.Param("name")
	text, ok := s.docs.Get(name)
	if !ok {
		return "", echo.NewHTTPError(http.StatusNotFound, "unknown document "+name)
	}
	return text, nil
}

func (s *Server) handleExtract(c echo.Context) error {
	text, err := s.document(c)
	if err != nil {
		return err
	}

	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Start == nil || req.End == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start and end are required")
	}

	contextLength := s.config.ContextLength
	if req.ContextLength != nil {
		contextLength = *req.ContextLength
	}

	sel, err := textquote.Extract(text, textquote.Range{Start: *req.Start, End: *req.End}, contextLength)
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, sel)
}

func (s *Server) handleResolve(c echo.Context) error {
	text, err := s.document(c)
	if err != nil {
		return err
	}

	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Selector == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "selector is required")
	}
	if err := req.Selector.Validate(); err != nil {
		return s.mapError(err)
	}

	var opts []textquote.ResolveOption
	if req.Hint != nil {
		opts = append(opts, textquote.WithHint(*req.Hint))
	}

	r, err := s.resolver.Resolve(text, *req.Selector, opts...)
	if errors.Is(err, textquote.ErrNoMatch) {
		s.logger.Info("quote orphaned", zap.String("document", c.Param("name")), zap.String("exact", req.Selector.Exact))
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Orphaned: true})
	}
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (s *Server) mapError(err error) error {
	switch {
	case errors.Is(err, textquote.ErrMissingParameter),
		errors.Is(err, textquote.ErrInvalidRange),
		errors.Is(err, textquote.ErrInvalidSelector):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.logger.Error("unexpected error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
