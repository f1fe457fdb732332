package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/like/models"
	services "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/like/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
)

// LikeHandler xử lý các request liên quan đến lượt thích
type LikeHandler struct {
	*basehdl.BaseHandler[models.Like, models.Like, models.Like]
	likeService *services.LikeService
}

// NewLikeHandler tạo instance mới của LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := services.NewLikeService()
	if err != nil {
		return nil, err
	}
	return &LikeHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Like, models.Like, models.Like](likeService),
		likeService: likeService,
	}, nil
}

// toggle xử lý chung cho các endpoint toggle theo loại đối tượng.
// Thích mới trả về 201, bỏ thích trả về 200.
func (h *LikeHandler) toggle(c fiber.Ctx, target string, paramName string) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		targetID, err := basehdl.ParamID(c, paramName)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		liked, err := h.likeService.ToggleLike(c.Context(), target, targetID, callerID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogToggle(target, targetID.Hex(), liked, c)
		if liked {
			_ = basehdl.SendSuccess(c, common.StatusCreated, fiber.Map{"liked": true}, "liked")
		} else {
			_ = basehdl.SendSuccess(c, common.StatusOK, fiber.Map{"liked": false}, "unliked")
		}
		return nil
	})
}

// HandleToggleVideoLike đảo trạng thái thích trên video
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	return h.toggle(c, services.LikeTargetVideo, "videoId")
}

// HandleToggleCommentLike đảo trạng thái thích trên bình luận
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	return h.toggle(c, services.LikeTargetComment, "commentId")
}

// HandleToggleTweetLike đảo trạng thái thích trên tweet
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	return h.toggle(c, services.LikeTargetTweet, "tweetId")
}

// HandleGetLikedVideos liệt kê video đã thích của người gọi (phân trang)
func (h *LikeHandler) HandleGetLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.likeService.GetLikedVideos(c.Context(), callerID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
