package handler

import (
	"net/http"

	"osadash/internal/apierror"
	"osadash/internal/service"

	"github.com/gin-gonic/gin"
)

type KpiHandler struct{ svc service.KpiService }

func NewKpiHandler(svc service.KpiService) *KpiHandler {
	return &KpiHandler{svc: svc}
}

// Obtener handles GET /api/kpis?store=&date_from=&date_to=
func (h *KpiHandler) Obtener(c *gin.Context) {
	f, ok := parseKpiFilter(c)
	if !ok {
		return
	}
	report, err := h.svc.Calcular(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular KPIs"))
		return
	}
	c.JSON(http.StatusOK, report)
}
