// Package router đăng ký các route thuộc domain subscription.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
	subhdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/subscription/handler"
)

// Register đăng ký các route /subscriptions lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	subscriptionHandler, err := subhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %v", err)
	}

	authed := []fiber.Handler{middleware.GetAuthManager().AuthRequired()}

	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/c/:channelId", authed, subscriptionHandler.HandleToggleSubscription)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/u/:channelId", authed, subscriptionHandler.HandleGetChannelSubscribers)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/c/:subscriberId", authed, subscriptionHandler.HandleGetSubscribedChannels)

	return nil
}
