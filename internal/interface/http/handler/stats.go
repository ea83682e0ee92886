package handler

import (
	"github.com/gin-gonic/gin"

	appstats "github.com/jenishs/library/internal/application/stats"
	"github.com/jenishs/library/internal/interface/http/dto"
	"github.com/jenishs/library/pkg/response"
)

// StatsHandler 统计面板HTTP处理器
type StatsHandler struct {
	getStatsUseCase *appstats.GetStatsUseCase
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(getStatsUseCase *appstats.GetStatsUseCase) *StatsHandler {
	return &StatsHandler{getStatsUseCase: getStatsUseCase}
}

// GetStats 统计面板
// @Summary      统计面板
// @Description  实时统计图书总数、会员总数、在借数与逾期数(逾期为读取时推导)
// @Tags         统计
// @Produce      json
// @Success      200 {object} dto.StatsResponse
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToStatsResponse(result))
}
