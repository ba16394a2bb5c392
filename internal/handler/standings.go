package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/racha-stats-service/internal/service"
	"github.com/maxviazov/racha-stats-service/pkg/response"
)

type StandingsHandler struct {
	svc service.StandingsService
}

func NewStandingsHandler(svc service.StandingsService) *StandingsHandler {
	return &StandingsHandler{svc: svc}
}

func (h *StandingsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/rachas/:racha_id/standings")
	{
		g.GET("", h.get)
		g.GET("/years", h.years)
	}
}

// get serves ?period=all|year|quadrimester&year=Y&quadrimester=Q.
// Parsing and validation live in the service so the field errors stay uniform.
func (h *StandingsHandler) get(c *gin.Context) {
	q := service.PeriodQuery{
		Period:       c.Query("period"),
		Year:         c.Query("year"),
		Quadrimester: c.Query("quadrimester"),
	}
	out, err := h.svc.GetStandings(c.Request.Context(), c.Param("racha_id"), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

type yearsResponse struct {
	Years []int `json:"years"`
}

func (h *StandingsHandler) years(c *gin.Context) {
	years, err := h.svc.ListYears(c.Request.Context(), c.Param("racha_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if years == nil {
		years = []int{}
	}
	response.WriteData(c, http.StatusOK, yearsResponse{Years: years})
}
