package handler

import (
	"net/http"
	"strconv"

	"osadash/internal/apierror"
	"osadash/internal/dto"
	"osadash/internal/service"

	"github.com/gin-gonic/gin"
)

type MedicionesHandler struct{ svc service.MedicionService }

func NewMedicionesHandler(svc service.MedicionService) *MedicionesHandler {
	return &MedicionesHandler{svc: svc}
}

// Listar handles GET /api/measurements?store=&date_from=&date_to=&limit=
func (h *MedicionesHandler) Listar(c *gin.Context) {
	kf, ok := parseKpiFilter(c)
	if !ok {
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, apierror.New("limit invalido"))
			return
		}
		limit = n
	}

	resp, err := h.svc.Listar(c.Request.Context(), dto.MedicionFilter{
		Store:    kf.Store,
		DateFrom: kf.DateFrom,
		DateTo:   kf.DateTo,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar mediciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
