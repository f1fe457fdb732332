package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/subscription/models"
	services "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/subscription/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
)

// SubscriptionHandler xử lý các request liên quan đến đăng ký kênh
type SubscriptionHandler struct {
	*basehdl.BaseHandler[models.Subscription, models.Subscription, models.Subscription]
	subscriptionService *services.SubscriptionService
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := services.NewSubscriptionService()
	if err != nil {
		return nil, err
	}
	return &SubscriptionHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.Subscription, models.Subscription, models.Subscription](subscriptionService),
		subscriptionService: subscriptionService,
	}, nil
}

// HandleToggleSubscription đảo trạng thái đăng ký kênh của người gọi.
// Đăng ký mới trả về 201, hủy đăng ký trả về 200.
func (h *SubscriptionHandler) HandleToggleSubscription(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		channelID, err := basehdl.ParamID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		subscribed, err := h.subscriptionService.ToggleSubscription(c.Context(), callerID, channelID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogToggle("subscription", channelID.Hex(), subscribed, c)
		if subscribed {
			_ = basehdl.SendSuccess(c, common.StatusCreated, fiber.Map{"subscribed": true}, "subscribed")
		} else {
			_ = basehdl.SendSuccess(c, common.StatusOK, fiber.Map{"subscribed": false}, "unsubscribed")
		}
		return nil
	})
}

// HandleGetChannelSubscribers liệt kê người đăng ký của một kênh (phân trang)
func (h *SubscriptionHandler) HandleGetChannelSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := basehdl.ParamID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.subscriptionService.GetChannelSubscribers(c.Context(), channelID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetSubscribedChannels liệt kê các kênh một người dùng đã đăng ký (phân trang)
func (h *SubscriptionHandler) HandleGetSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := basehdl.ParamID(c, "subscriberId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.subscriptionService.GetSubscribedChannels(c.Context(), subscriberID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
