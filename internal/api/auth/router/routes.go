// Package router đăng ký các route thuộc domain auth: đăng ký, đăng nhập, token, tài khoản.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/handler"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/middleware"
	apirouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/storage"
)

// Register trả về hàm đăng ký các route /users lên v1.
func Register(store storage.Provider) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		userHandler, err := authhdl.NewUserHandler(store)
		if err != nil {
			return fmt.Errorf("failed to create user handler: %v", err)
		}

		// Route công khai đăng ký trực tiếp, trước các group có middleware
		v1.Post("/users/register", userHandler.HandleRegister)
		v1.Post("/users/login", userHandler.HandleLogin)
		v1.Post("/users/refresh-token", userHandler.HandleRefreshToken)

		authed := []fiber.Handler{middleware.GetAuthManager().AuthRequired()}

		// Route yêu cầu xác thực
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/logout", authed, userHandler.HandleLogout)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/change-password", authed, userHandler.HandleChangePassword)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/current-user", authed, userHandler.HandleCurrentUser)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/update-account", authed, userHandler.HandleUpdateAccount)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/avatar", authed, userHandler.HandleUpdateAvatar)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/cover-image", authed, userHandler.HandleUpdateCoverImage)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/history", authed, userHandler.HandleWatchHistory)

		return nil
	}
}
