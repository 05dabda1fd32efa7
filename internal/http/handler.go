package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/export"
	"github.com/guttosm/load-planner/internal/i18n"
	"github.com/guttosm/load-planner/internal/metrics"
	"github.com/guttosm/load-planner/internal/middleware"
	"github.com/guttosm/load-planner/internal/service"
)

// Handler serves the planning endpoints.
type Handler struct {
	planner        service.LoadPlanner
	limits         dto.Limits
	loggingService service.LoggingService
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLimits sets the request size limits.
func WithLimits(limits dto.Limits) HandlerOption {
	return func(h *Handler) {
		h.limits = limits
	}
}

// WithAuditLogging records plan and export actions through loggingService.
func WithAuditLogging(loggingService service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.loggingService = loggingService
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(planner service.LoadPlanner, opts ...HandlerOption) *Handler {
	h := &Handler{planner: planner}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Plan handles POST /api/plan requests.
//
// @Summary      Plan vehicles for an inventory
// @Description  Expands the inventory into physical units, packs them into the fewest and smallest vehicles of the catalog and returns each vehicle's loading sequence. The active catalog is used unless vehicle_catalog is given. Supports idempotency via Idempotency-Key header.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PlanRequest true "Inventory"
// @Success      200 {object} dto.SuccessResponse{data=model.PlanResult} "Load plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/plan [post]
func (h *Handler) Plan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.bindPlanRequest(c, builder)
	if !ok {
		return
	}

	result := h.planner.Plan(req.Items, req.VehicleCatalog)
	middleware.AuditLog(h.loggingService, c, model.ActionPlan, "Load plan created", planFields(req.Items, result))
	builder.SuccessOK(result)
}

// PlanRooms handles POST /api/plan/rooms requests.
//
// @Summary      Plan vehicles for several rooms
// @Description  Merges the items of every room, guesses each room's type from its items and plans the merged inventory.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body dto.RoomsPlanRequest true "Rooms"
// @Success      200 {object} dto.SuccessResponse{data=model.RoomsPlanResult} "Multi-room plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/plan/rooms [post]
func (h *Handler) PlanRooms(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.RoomsPlanRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(h.limits); err != nil {
		builder.ValidationFailed(err)
		return
	}

	result := h.planner.PlanRooms(req.Rooms, req.VehicleCatalog)
	fields := planFields(result.Items, result.Plan)
	fields["rooms"] = len(req.Rooms)
	middleware.AuditLog(h.loggingService, c, model.ActionPlanRooms, "Multi-room load plan created", fields)
	builder.SuccessOK(result)
}

// ExportPlan handles POST /api/plan/export requests.
//
// @Summary      Export a load plan as a crew sheet
// @Description  Plans the inventory like /api/plan and returns an XLSX workbook with a summary sheet and one load sheet per vehicle.
// @Tags         Plans
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request body dto.PlanRequest true "Inventory"
// @Success      200 {file} file "Load sheet workbook"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Workbook could not be generated"
// @Security     ApiKeyAuth
// @Router       /api/plan/export [post]
func (h *Handler) ExportPlan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.bindPlanRequest(c, builder)
	if !ok {
		return
	}

	result := h.planner.Plan(req.Items, req.VehicleCatalog)

	var buf bytes.Buffer
	if err := export.Write(&buf, result); err != nil {
		metrics.RecordExport("error")
		middleware.AuditLogError(h.loggingService, c, model.ActionExport, "Load sheet export failed", err, nil)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyExportFailed, err)
		return
	}

	metrics.RecordExport("success")
	middleware.AuditLog(h.loggingService, c, model.ActionExport, "Load sheet exported", planFields(req.Items, result))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(c)))
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}

// Aggregate handles POST /api/aggregate requests.
//
// @Summary      Merge item lists
// @Description  Merges several item lists into one. Items with the same name, ignoring case and surrounding spaces, have their quantities summed, and the first occurrence keeps its spelling and per-unit volume.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body dto.AggregateRequest true "Item lists"
// @Success      200 {object} dto.SuccessResponse{data=dto.AggregateResponse} "Merged inventory"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Security     ApiKeyAuth
// @Router       /api/aggregate [post]
func (h *Handler) Aggregate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.AggregateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(h.limits); err != nil {
		builder.ValidationFailed(err)
		return
	}

	builder.SuccessOK(dto.AggregateResponse{Items: h.planner.Aggregate(req.Sources)})
}

// InferRoom handles POST /api/rooms/infer requests.
//
// @Summary      Guess a room from its items
// @Description  Returns the room type whose keywords match the most item names.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body dto.InferRoomRequest true "Room items"
// @Success      200 {object} dto.SuccessResponse{data=dto.InferRoomResponse} "Room guess"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Security     ApiKeyAuth
// @Router       /api/rooms/infer [post]
func (h *Handler) InferRoom(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.InferRoomRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(h.limits); err != nil {
		builder.ValidationFailed(err)
		return
	}

	room, matched := h.planner.InferRoom(req.Items)
	builder.SuccessOK(dto.InferRoomResponse{Room: room, Matched: matched})
}

func (h *Handler) bindPlanRequest(c *gin.Context, builder *ResponseBuilder) (*dto.PlanRequest, bool) {
	req, err := BuildRequest[dto.PlanRequest](c)
	if err != nil {
		metrics.PlansTotal.WithLabelValues("invalid").Inc()
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	if err := req.Validate(h.limits); err != nil {
		metrics.PlansTotal.WithLabelValues("invalid").Inc()
		builder.ValidationFailed(err)
		return nil, false
	}
	return req, true
}

func planFields(items []model.InventoryItem, result model.PlanResult) map[string]interface{} {
	return map[string]interface{}{
		"items":     len(items),
		"units":     result.Summary.TotalItems,
		"vehicles":  result.Summary.VehicleCount,
		"volume_m3": result.Summary.TotalVolumeM3,
	}
}

// exportFilename names the workbook after the request ID, keeping only
// characters that are safe inside a quoted header value.
func exportFilename(c *gin.Context) string {
	id := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return -1
	}, middleware.GetRequestID(c))
	if id == "" {
		return "load-plan.xlsx"
	}
	return "load-plan-" + id + ".xlsx"
}
