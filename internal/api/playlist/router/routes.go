// Package router đăng ký các route thuộc domain playlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	playlisthdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/handler"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
)

// Register đăng ký các route /playlists lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	playlistHandler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("failed to create playlist handler: %v", err)
	}

	authed := []fiber.Handler{middleware.GetAuthManager().AuthRequired()}

	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "POST", "/", authed, playlistHandler.HandleCreatePlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "GET", "/user/:userId", authed, playlistHandler.HandleGetUserPlaylists)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/add/:videoId/:playlistId", authed, playlistHandler.HandleAddVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/remove/:videoId/:playlistId", authed, playlistHandler.HandleRemoveVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "GET", "/:playlistId", authed, playlistHandler.HandleGetPlaylistByID)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/:playlistId", authed, playlistHandler.HandleUpdatePlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "DELETE", "/:playlistId", authed, playlistHandler.HandleDeletePlaylist)

	return nil
}
