package controllers

import (
	"net/http"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/request_models"
	"github.com/bxttttt/AI-TravelPlanner/internal/services"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type PlanController struct {
	planner services.PlannerServiceInterface
	log     zerolog.Logger
}

func NewPlanController(planner services.PlannerServiceInterface, log zerolog.Logger) *PlanController {
	return &PlanController{
		planner: planner,
		log:     log.With().Str("component", "plan_controller").Logger(),
	}
}

func (pc *PlanController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	plan, err := pc.planner.Run(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, pc.log, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

func (pc *PlanController) GetDestinationHandler(c *gin.Context) {
	profile, err := pc.planner.DestinationProfile(c.Param("name"))
	if err != nil {
		utils.HandleServiceError(c, pc.log, err)
		return
	}

	utils.RespondSuccess(c, profile, "Fetched destination successfully")
}

func (pc *PlanController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"mode": pc.planner.Mode()}, "ok")
}
