package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanchar/internal/models/domain_models"
	"sanchar/internal/models/request_models"
	"sanchar/internal/models/response_models"
	"sanchar/internal/repositories"
	"sanchar/internal/services"
	"sanchar/pkg/utils"
)

type PlanController struct {
	planner     services.PlannerServiceInterface
	chatService services.ChatServiceInterface
	sharedPlans repositories.SharedPlanStore
	sessions    repositories.SessionStore
}

func NewPlanController(
	planner services.PlannerServiceInterface,
	chatService services.ChatServiceInterface,
	sharedPlans repositories.SharedPlanStore,
	sessions repositories.SessionStore,
) *PlanController {
	return &PlanController{
		planner:     planner,
		chatService: chatService,
		sharedPlans: sharedPlans,
		sessions:    sessions,
	}
}

func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := domain_models.PlanInput{
		Mood:               req.Mood,
		Budget:             req.Budget,
		BudgetTier:         req.BudgetTier,
		TimeRange:          req.TimeAvailable,
		Message:            req.Message,
		Weather:            req.Weather,
		PreferredLocation:  req.PreferredLocation,
		UseCurrentLocation: req.UseCurrentLocation,
		StartLat:           req.StartLat,
		StartLon:           req.StartLon,
		MaxPlaces:          req.MaxPlaces,
	}

	plan, search, err := p.planner.GeneratePlan(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = p.chatService.StartSession(req.StartLat, req.StartLon).SessionID
	}
	if err := p.chatService.AttachPlan(sessionID, plan.Intent, plan, search); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildPlanResponse(sessionID, plan, search), "Plan generated")
}

func (p *PlanController) SharePlan(c *gin.Context) {
	var req request_models.SharePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	record, ok := p.sessions.Get(req.SessionID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}
	if record.Plan == nil {
		utils.HandleServiceError(c, utils.ErrPlanNotFound)
		return
	}

	title := req.Title
	if title == "" {
		title = "Hangout Plan"
	}
	mood := req.Mood
	if mood == "" && len(record.Intent.Vibe) > 0 {
		mood = record.Intent.Vibe[0]
	}

	code := p.sharedPlans.Save(title, mood, record.Plan)
	shared, _ := p.sharedPlans.Get(code)

	utils.RespondSuccess(c, response_models.SharedPlanResponse{
		ShareCode: code,
		Plan:      *shared,
	}, "Plan shared")
}

func (p *PlanController) GetSharedPlan(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share code is required")
		return
	}

	shared, ok := p.sharedPlans.Get(code)
	if !ok {
		utils.HandleServiceError(c, utils.ErrPlanNotFound)
		return
	}

	utils.RespondSuccess(c, shared, "Shared plan fetched")
}
