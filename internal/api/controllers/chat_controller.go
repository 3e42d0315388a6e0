package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanchar/internal/models/request_models"
	"sanchar/internal/models/response_models"
	"sanchar/internal/services"
	"sanchar/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

func (ch *ChatController) StartChat(c *gin.Context) {
	var req request_models.StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	record := ch.chatService.StartSession(req.StartLat, req.StartLon)

	utils.RespondSuccess(c, response_models.StartChatResponse{SessionID: record.SessionID}, "Session started")
}

func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Message == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id and message are required")
		return
	}

	plan, err := ch.chatService.HandleMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated")
}
