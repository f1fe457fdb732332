// Package router đăng ký các route thuộc domain comment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/handler"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
)

// Register đăng ký các route /comments lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %v", err)
	}

	authed := []fiber.Handler{middleware.GetAuthManager().AuthRequired()}

	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "GET", "/:videoId", authed, commentHandler.HandleGetVideoComments)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/:videoId", authed, commentHandler.HandleAddComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "PATCH", "/c/:commentId", authed, commentHandler.HandleUpdateComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "DELETE", "/c/:commentId", authed, commentHandler.HandleDeleteComment)

	return nil
}
