// Package router đăng ký các route thuộc domain like.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	likehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/like/handler"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
)

// Register đăng ký các route /likes lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	likeHandler, err := likehdl.NewLikeHandler()
	if err != nil {
		return fmt.Errorf("failed to create like handler: %v", err)
	}

	authed := []fiber.Handler{middleware.GetAuthManager().AuthRequired()}

	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/v/:videoId", authed, likeHandler.HandleToggleVideoLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/c/:commentId", authed, likeHandler.HandleToggleCommentLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/t/:tweetId", authed, likeHandler.HandleToggleTweetLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "GET", "/videos", authed, likeHandler.HandleGetLikedVideos)

	return nil
}
