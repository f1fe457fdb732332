package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	services "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/dashboard/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/utility"
)

// DashboardHandler xử lý các request thống kê kênh của người dùng hiện tại
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler tạo instance mới của DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := services.NewDashboardService()
	if err != nil {
		return nil, err
	}
	return &DashboardHandler{dashboardService: dashboardService}, nil
}

// channelID lấy channel từ path param, mặc định là người gọi khi không truyền
func channelID(c fiber.Ctx) (primitive.ObjectID, error) {
	if c.Params("channelId") != "" {
		return basehdl.ParamID(c, "channelId")
	}
	return basehdl.CallerID(c)
}

// HandleGetChannelStats trả về số liệu tổng hợp của một kênh
func (h *DashboardHandler) HandleGetChannelStats(c fiber.Ctx) error {
	chID, err := channelID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	stats, err := h.dashboardService.GetChannelStats(c.Context(), chID)
	if err != nil {
		return basehdl.SendError(c, err)
	}
	return basehdl.SendSuccess(c, common.StatusOK, stats, common.MsgSuccess)
}

// HandleGetChannelVideos liệt kê toàn bộ video của một kênh,
// kể cả video chưa công khai (phân trang).
func (h *DashboardHandler) HandleGetChannelVideos(c fiber.Ctx) error {
	chID, err := channelID(c)
	if err != nil {
		return basehdl.SendError(c, err)
	}

	page := utility.P2Int64(c.Query("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit := utility.P2Int64(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	result, err := h.dashboardService.GetChannelVideos(c.Context(), chID, page, limit)
	if err != nil {
		return basehdl.SendError(c, err)
	}
	return basehdl.SendSuccess(c, common.StatusOK, result, common.MsgSuccess)
}
