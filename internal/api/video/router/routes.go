// Package router đăng ký các route thuộc domain video.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
	videohdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/handler"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/storage"
)

// Register trả về hàm đăng ký các route /videos lên v1.
func Register(store storage.Provider) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		videoHandler, err := videohdl.NewVideoHandler(store)
		if err != nil {
			return fmt.Errorf("failed to create video handler: %v", err)
		}

		authMiddleware := middleware.GetAuthManager().AuthRequired()
		authed := []fiber.Handler{authMiddleware}

		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/", authed, videoHandler.HandleListVideos)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/", authed, videoHandler.HandlePublishVideo)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/toggle/publish/:id", authed, videoHandler.HandleTogglePublish)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/:id", authed, videoHandler.HandleGetVideoByID)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:id", authed, videoHandler.HandleUpdateVideo)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "DELETE", "/:id", authed, videoHandler.HandleDeleteVideo)

		// Bề mặt CRUD dùng chung cho tra cứu nâng cao (filter, options, phân trang)
		r.RegisterCRUDRoutes(v1, "/videos/query", videoHandler.BaseHandler, apirouter.ReadOnlyConfig, authMiddleware)

		return nil
	}
}
