package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/models"
	services "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/service"
)

// TweetHandler xử lý các request liên quan đến tweet
type TweetHandler struct {
	*basehdl.BaseHandler[models.Tweet, dto.TweetCreateInput, dto.TweetUpdateInput]
	tweetService *services.TweetService
}

// NewTweetHandler tạo instance mới của TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := services.NewTweetService()
	if err != nil {
		return nil, err
	}
	return &TweetHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Tweet, dto.TweetCreateInput, dto.TweetUpdateInput](tweetService),
		tweetService: tweetService,
	}, nil
}

// HandleCreateTweet đăng tweet mới
func (h *TweetHandler) HandleCreateTweet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.TweetCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.CreateTweet(c.Context(), callerID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, tweet, nil)
		return nil
	})
}

// HandleGetUserTweets liệt kê tweet của một người dùng (phân trang)
func (h *TweetHandler) HandleGetUserTweets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.ParamID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.tweetService.GetUserTweets(c.Context(), userID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdateTweet sửa nội dung tweet (chỉ chủ sở hữu)
func (h *TweetHandler) HandleUpdateTweet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := basehdl.ParamID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.TweetUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.UpdateTweet(c.Context(), tweetID, callerID, &input)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleDeleteTweet xóa tweet (chỉ chủ sở hữu)
func (h *TweetHandler) HandleDeleteTweet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := basehdl.ParamID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.tweetService.DeleteTweet(c.Context(), tweetID, callerID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
