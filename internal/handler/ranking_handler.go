package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/colorwalk/colorwalk-backend-go/internal/service"
	"github.com/colorwalk/colorwalk-backend-go/pkg/response"
)

// RankingHandler handles HTTP requests for the walk leaderboard
type RankingHandler struct {
	rankingService *service.RankingService
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(rankingService *service.RankingService) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
	}
}

// Leaderboard handles GET /api/v1/ranking
func (h *RankingHandler) Leaderboard(c *gin.Context) {
	result, err := h.rankingService.Leaderboard()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
