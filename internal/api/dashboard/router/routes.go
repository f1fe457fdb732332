// Package router đăng ký các route thuộc domain dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/dashboard/handler"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
)

// Register đăng ký các route /dashboard lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	dashboardHandler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %v", err)
	}

	authed := []fiber.Handler{middleware.GetAuthManager().AuthRequired()}

	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", authed, dashboardHandler.HandleGetChannelStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats/:channelId", authed, dashboardHandler.HandleGetChannelStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/videos", authed, dashboardHandler.HandleGetChannelVideos)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/videos/:channelId", authed, dashboardHandler.HandleGetChannelVideos)

	return nil
}
