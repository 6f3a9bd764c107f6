package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"banksim/internal/core/ports"
	"banksim/internal/dto"
	"banksim/internal/middleware"
)

type SimulationHandler struct {
	runner ports.SimulationRunner
}

func NewSimulationHandler(runner ports.SimulationRunner) *SimulationHandler {
	return &SimulationHandler{runner: runner}
}

// RunSimulation godoc
// @Summary Run a banking command batch
// @Description Seeds a fresh ledger with users and exchange rates, applies the commands in order and returns the response records
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   batch body dto.SimulationRequest true "Users, exchange rates and commands"
// @Success 200 {array} dto.Response
// @Failure 400 {object} map[string]string
// @Router /simulations [post]
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid simulation request", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	responses := h.runner.Run(c.Request.Context(), req)
	c.JSON(http.StatusOK, responses)
}

// RegisterSimulationRoutes mounts the simulation API on the given group.
func RegisterSimulationRoutes(group *gin.RouterGroup, runner ports.SimulationRunner) {
	handler := NewSimulationHandler(runner)
	simulations := group.Group("/simulations")
	simulations.POST("", handler.RunSimulation)
}
