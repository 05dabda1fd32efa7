package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/circuitbreaker"
	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/i18n"
	"github.com/guttosm/load-planner/internal/middleware"
	"github.com/guttosm/load-planner/internal/repository"
	"github.com/guttosm/load-planner/internal/service"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	// anonymousClient is recorded as the author of catalog updates made without an API key.
	anonymousClient = "anonymous"
)

// CatalogHandler serves the stored vehicle catalog.
type CatalogHandler struct {
	catalogs       service.VehicleCatalogService
	planner        service.LoadPlanner
	loggingService service.LoggingService
}

// NewCatalogHandler creates a CatalogHandler. planner supplies the in-memory
// catalog when nothing can be read from the store.
func NewCatalogHandler(catalogs service.VehicleCatalogService, planner service.LoadPlanner, loggingService service.LoggingService) *CatalogHandler {
	return &CatalogHandler{
		catalogs:       catalogs,
		planner:        planner,
		loggingService: loggingService,
	}
}

// GetActive handles GET /api/vehicle-catalog requests.
//
// @Summary      Get the active vehicle catalog
// @Description  Returns the active stored catalog. While nothing is stored or the store is unreachable, the catalog the planner is using is returned with version 0.
// @Tags         Vehicle Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.VehicleCatalogResponse} "Active catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/vehicle-catalog [get]
func (h *CatalogHandler) GetActive(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cfg, err := h.catalogs.Active(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if cfg == nil {
		builder.SuccessOK(dto.VehicleCatalogResponse{
			Active:  true,
			Classes: h.currentCatalog(),
		})
		return
	}

	builder.SuccessOK(toCatalogResponse(*cfg))
}

// Update handles PUT /api/vehicle-catalog requests.
//
// @Summary      Replace the vehicle catalog
// @Description  Stores the classes as a new active catalog version and starts planning with it. Earlier versions are kept for history.
// @Tags         Vehicle Catalog
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CatalogUpdateRequest true "Vehicle classes"
// @Success      200 {object} dto.SuccessResponse{data=dto.VehicleCatalogResponse} "Stored catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Catalog store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/vehicle-catalog [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CatalogUpdateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.ValidationFailed(err)
		return
	}

	createdBy := middleware.GetClientID(c)
	if createdBy == "" {
		createdBy = anonymousClient
	}

	cfg, err := h.catalogs.Update(c.Request.Context(), req.Classes, createdBy, req.Note)
	if err != nil {
		middleware.AuditLogError(h.loggingService, c, model.ActionUpdateCatalog, "Vehicle catalog update failed", err, nil)
		h.storeError(builder, err)
		return
	}

	middleware.AuditLog(h.loggingService, c, model.ActionUpdateCatalog, "Vehicle catalog updated", map[string]interface{}{
		"version": cfg.Version,
		"classes": len(cfg.Classes),
	})
	builder.SuccessOK(toCatalogResponse(*cfg))
}

// History handles GET /api/vehicle-catalog/history requests.
//
// @Summary      List vehicle catalog versions
// @Description  Returns stored catalog versions, newest first.
// @Tags         Vehicle Catalog
// @Produce      json
// @Param        limit query int false "Maximum number of versions (1-100)" default(20)
// @Success      200 {object} dto.SuccessResponse{data=[]dto.VehicleCatalogResponse} "Catalog versions"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid limit"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Catalog store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/vehicle-catalog/history [get]
func (h *CatalogHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
			return
		}
		limit = n
	}

	configs, err := h.catalogs.History(c.Request.Context(), limit)
	if err != nil {
		h.storeError(builder, err)
		return
	}

	versions := make([]dto.VehicleCatalogResponse, 0, len(configs))
	for _, cfg := range configs {
		versions = append(versions, toCatalogResponse(cfg))
	}
	builder.SuccessOK(versions)
}

func (h *CatalogHandler) storeError(builder *ResponseBuilder, err error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

func (h *CatalogHandler) currentCatalog() []model.VehicleClass {
	if h.planner == nil {
		return model.DefaultVehicleCatalog()
	}
	return h.planner.Catalog()
}

func toCatalogResponse(cfg repository.VehicleCatalogConfig) dto.VehicleCatalogResponse {
	return dto.VehicleCatalogResponse{
		Version:   cfg.Version,
		Active:    cfg.Active,
		Classes:   cfg.Classes,
		CreatedAt: cfg.CreatedAt,
		CreatedBy: cfg.CreatedBy,
		Note:      cfg.Note,
	}
}
