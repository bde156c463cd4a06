package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dentalanalytics/clinicas/clinicas"
)

const (
	ClinicasPath  = "/clinicas"
	ClinicaPath   = ClinicasPath + "/*"
	SearchParam   = "search"
	wildcardParam = "*"
)

type Handler struct {
	clinicas clinicas.Service
	logger   *zap.SugaredLogger
}

func NewHandler(clinicas clinicas.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		clinicas: clinicas,
		logger:   logger,
	}
}

type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
}

// Routes returns the route table. Static paths take precedence over the
// wildcard ones, requests matching no entry are answered with "route not found".
func (h *Handler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: ClinicasPath, Handler: h.ListClinicas},
		{Method: http.MethodGet, Path: ClinicaPath, Handler: h.GetClinica},
		{Method: http.MethodPost, Path: ClinicasPath, Handler: h.CreateClinica},
		{Method: http.MethodPut, Path: ClinicaPath, Handler: h.UpdateClinica},
		{Method: http.MethodDelete, Path: ClinicaPath, Handler: h.DeleteClinica},
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	for _, route := range h.Routes() {
		e.Add(route.Method, route.Path, route.Handler)
	}
}

type InsertResult struct {
	InsertedId interface{} `json:"insertedId"`
}

type UpdateResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (h *Handler) ListClinicas(ec echo.Context) error {
	ctx := ec.Request().Context()

	filter := clinicas.Filter{}
	if search := ec.QueryParam(SearchParam); search != "" {
		filter.Search = &search
	}

	list, err := h.clinicas.List(ctx, &filter)
	if err != nil {
		return err
	}
	if list == nil {
		list = []clinicas.Clinica{}
	}

	return ec.JSON(http.StatusOK, list)
}

func (h *Handler) GetClinica(ec echo.Context) error {
	ctx := ec.Request().Context()
	clinica, err := h.clinicas.Get(ctx, clinicaId(ec))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, clinica)
}

func (h *Handler) CreateClinica(ec echo.Context) error {
	ctx := ec.Request().Context()
	clinica, err := readDocument(ec)
	if err != nil {
		return err
	}

	insertedId, err := h.clinicas.Create(ctx, clinica)
	if err != nil {
		return err
	}

	h.logger.Debugw("created clinica", "insertedId", insertedId)
	return ec.JSON(http.StatusCreated, InsertResult{InsertedId: insertedId})
}

func (h *Handler) UpdateClinica(ec echo.Context) error {
	ctx := ec.Request().Context()
	id := clinicaId(ec)
	update, err := readDocument(ec)
	if err != nil {
		return err
	}

	modifiedCount, err := h.clinicas.Update(ctx, id, update)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, UpdateResult{ModifiedCount: modifiedCount})
}

func (h *Handler) DeleteClinica(ec echo.Context) error {
	ctx := ec.Request().Context()
	deletedCount, err := h.clinicas.Delete(ctx, clinicaId(ec))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, DeleteResult{DeletedCount: deletedCount})
}

// clinicaId returns the first path segment after /clinicas/, unvalidated.
func clinicaId(ec echo.Context) string {
	id, _, _ := strings.Cut(ec.Param(wildcardParam), "/")
	return id
}

// readDocument buffers the whole request body. An empty body is an empty
// document.
func readDocument(ec echo.Context) (clinicas.Clinica, error) {
	body, err := io.ReadAll(ec.Request().Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read request body: %w", err)
	}

	document := clinicas.Clinica{}
	if len(body) == 0 {
		return document, nil
	}
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if document == nil {
		return nil, fmt.Errorf("invalid request body: expected an object")
	}

	return document, nil
}
