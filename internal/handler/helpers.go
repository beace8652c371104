package handler

import (
	"net/http"
	"strings"
	"time"

	"osadash/internal/apierror"
	"osadash/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseKpiFilter reads the store/date_from/date_to query params shared by the
// KPI and measurement endpoints. Dates are ISO-8601; a malformed date writes
// the 400 response and returns false.
func parseKpiFilter(c *gin.Context) (dto.KpiFilter, bool) {
	f := dto.KpiFilter{Store: strings.TrimSpace(c.Query("store"))}

	if v := c.Query("date_from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("date_from invalida (YYYY-MM-DD)"))
			return f, false
		}
		f.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("date_to invalida (YYYY-MM-DD)"))
			return f, false
		}
		f.DateTo = &t
	}
	return f, true
}
