package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

func (c *StatsController) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.AdminStats(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("admin stats failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	response.OK(w, stats)
}

func (c *StatsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.OrderStats(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("order stats failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	response.OK(w, stats)
}
