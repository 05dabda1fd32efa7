package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup registers a set of API routes on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// PlanRoutes registers the planning endpoints.
type PlanRoutes struct {
	handler *Handler
}

// NewPlanRoutes creates PlanRoutes for handler.
func NewPlanRoutes(handler *Handler) *PlanRoutes {
	return &PlanRoutes{handler: handler}
}

// RegisterRoutes registers the planning endpoints.
func (r *PlanRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/plan", r.handler.Plan)
	rg.POST("/plan/rooms", r.handler.PlanRooms)
	rg.POST("/plan/export", r.handler.ExportPlan)
	rg.POST("/aggregate", r.handler.Aggregate)
	rg.POST("/rooms/infer", r.handler.InferRoom)
}

// CatalogRoutes registers the vehicle catalog endpoints.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates CatalogRoutes for handler.
func NewCatalogRoutes(handler *CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterRoutes registers the vehicle catalog endpoints.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/vehicle-catalog")
	catalog.GET("", r.handler.GetActive)
	catalog.PUT("", r.handler.Update)
	catalog.GET("/history", r.handler.History)
}
