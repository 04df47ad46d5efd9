package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/simaogato/banksynth/internal/adapter/export"
	"github.com/simaogato/banksynth/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultPreviewLimit = 10
	maxPreviewLimit     = 1000
)

// Generator produces datasets
type Generator interface {
	Generate(ctx context.Context, params domain.GenerateParams) (*domain.Dataset, error)
}

// DatasetHandler serves generation and retrieval of datasets
type DatasetHandler struct {
	generator Generator
	store     domain.DatasetStore
	logger    *zap.Logger
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(generator Generator, store domain.DatasetStore, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

// TablePreview is the payload of a table preview
type TablePreview struct {
	Table     string              `json:"table"`
	TotalRows int                 `json:"total_rows"`
	Header    []string            `json:"header"`
	Rows      []map[string]string `json:"rows"`
}

// Generate handles POST /datasets.
// The body is optional; fields it sets override the defaults.
func (h *DatasetHandler) Generate(c *gin.Context) {
	params := domain.DefaultGenerateParams()
	if err := c.ShouldBindJSON(&params); err != nil && !errors.Is(err, io.EOF) {
		Error(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ds, err := h.generator.Generate(c.Request.Context(), params)
	if err != nil {
		failure(c, h.logger, "failed to generate dataset", err)
		return
	}

	Success(c, http.StatusCreated, "dataset generated", ds.Stats)
}

// List handles GET /datasets
func (h *DatasetHandler) List(c *gin.Context) {
	Success(c, http.StatusOK, "datasets retrieved", h.store.List())
}

// Get handles GET /datasets/:id
func (h *DatasetHandler) Get(c *gin.Context) {
	ds, err := h.store.Get(c.Param("id"))
	if err != nil {
		failure(c, h.logger, "failed to get dataset", err)
		return
	}

	Success(c, http.StatusOK, "dataset retrieved", ds.Stats)
}

// Table handles GET /datasets/:id/tables/:table?limit=N.
// limit defaults to 10 and may not exceed 1000.
func (h *DatasetHandler) Table(c *gin.Context) {
	limit := defaultPreviewLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPreviewLimit {
			Error(c, http.StatusBadRequest, "invalid limit",
				fmt.Errorf("limit must be an integer between 1 and %d", maxPreviewLimit))
			return
		}
		limit = n
	}

	ds, err := h.store.Get(c.Param("id"))
	if err != nil {
		failure(c, h.logger, "failed to get dataset", err)
		return
	}

	table, err := export.TableByName(ds, c.Param("table"))
	if err != nil {
		failure(c, h.logger, "failed to get table", err)
		return
	}

	Success(c, http.StatusOK, "table retrieved", TablePreview{
		Table:     string(table.Name),
		TotalRows: table.Len(),
		Header:    table.Header,
		Rows:      table.Preview(limit),
	})
}

// Archive handles GET /datasets/:id/archive?format=csv|json.
// format defaults to csv.
func (h *DatasetHandler) Archive(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatCSV)))
	if err != nil {
		failure(c, h.logger, "invalid format", err)
		return
	}

	ds, err := h.store.Get(c.Param("id"))
	if err != nil {
		failure(c, h.logger, "failed to get dataset", err)
		return
	}

	data, err := export.BuildArchive(ds, format)
	if err != nil {
		failure(c, h.logger, "failed to build archive", fmt.Errorf("failed to build archive: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.ArchiveName(ds, format)))
	c.Data(http.StatusOK, "application/zip", data)
}

// Health handles GET /healthz
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
