package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanchar/internal/models/request_models"
	"sanchar/internal/repositories"
	"sanchar/internal/services"
	"sanchar/pkg/utils"
)

type PlacesController struct {
	placeRepo  repositories.PlaceRepository
	hiddenGems services.HiddenGemServiceInterface
}

func NewPlacesController(placeRepo repositories.PlaceRepository, hiddenGems services.HiddenGemServiceInterface) *PlacesController {
	return &PlacesController{
		placeRepo:  placeRepo,
		hiddenGems: hiddenGems,
	}
}

func (p *PlacesController) ExploreHiddenGems(c *gin.Context) {
	var req request_models.ExploreHiddenGemsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PreferredLocation == "" {
		utils.RespondError(c, http.StatusBadRequest, "preferred_location is required")
		return
	}

	gems, err := p.hiddenGems.Explore(c.Request.Context(), req.PreferredLocation)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gems, "Hidden gems fetched")
}

func (p *PlacesController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"places_loaded": p.placeRepo.Count()}, "OK")
}
