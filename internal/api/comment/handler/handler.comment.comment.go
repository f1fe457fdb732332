package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/models"
	services "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/service"
	videosvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/service"
)

// CommentHandler xử lý các request liên quan đến bình luận
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment, dto.CommentAddInput, dto.CommentUpdateInput]
	commentService *services.CommentService
	videoService   *videosvc.VideoService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := services.NewCommentService()
	if err != nil {
		return nil, err
	}
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, err
	}
	return &CommentHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Comment, dto.CommentAddInput, dto.CommentUpdateInput](commentService),
		commentService: commentService,
		videoService:   videoService,
	}, nil
}

// HandleGetVideoComments liệt kê bình luận của một video (phân trang)
func (h *CommentHandler) HandleGetVideoComments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := basehdl.ParamID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.commentService.GetVideoComments(c.Context(), videoID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAddComment thêm bình luận mới vào video
func (h *CommentHandler) HandleAddComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := basehdl.ParamID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.CommentAddInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Không cho bình luận trên video không tồn tại
		if _, err := h.videoService.FindOneById(c.Context(), videoID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.AddComment(c.Context(), videoID, callerID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, comment, nil)
		return nil
	})
}

// HandleUpdateComment sửa nội dung bình luận (chỉ chủ sở hữu)
func (h *CommentHandler) HandleUpdateComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		commentID, err := basehdl.ParamID(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.CommentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.UpdateComment(c.Context(), commentID, callerID, &input)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDeleteComment xóa bình luận (chỉ chủ sở hữu)
func (h *CommentHandler) HandleDeleteComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		commentID, err := basehdl.ParamID(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.commentService.DeleteComment(c.Context(), commentID, callerID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
