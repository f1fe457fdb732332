// Package router đăng ký các route thuộc domain tweet.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
	tweethdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/handler"
)

// Register đăng ký các route /tweets lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	tweetHandler, err := tweethdl.NewTweetHandler()
	if err != nil {
		return fmt.Errorf("failed to create tweet handler: %v", err)
	}

	authed := []fiber.Handler{middleware.GetAuthManager().AuthRequired()}

	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "POST", "/", authed, tweetHandler.HandleCreateTweet)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "GET", "/user/:userId", authed, tweetHandler.HandleGetUserTweets)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "PATCH", "/:tweetId", authed, tweetHandler.HandleUpdateTweet)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "DELETE", "/:tweetId", authed, tweetHandler.HandleDeleteTweet)

	return nil
}
