package middleware

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authsvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
)

// AuthManager giữ service người dùng cho middleware xác thực
type AuthManager struct {
	UserCRUD *authsvc.UserService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			panic(err)
		}
		authManagerInstance = &AuthManager{UserCRUD: userService}
	})
	return authManagerInstance
}

// extractToken lấy access token từ header Authorization (Bearer) hoặc cookie "accessToken"
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Cookies("accessToken")
}

// AuthRequired middleware xác thực JWT cho Fiber.
// Sau khi xác thực thành công, userID (hex) và user được lưu vào Locals.
func (am *AuthManager) AuthRequired() fiber.Handler {
	authManager := am

	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu access token")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		userID, err := authsvc.VerifyAccessToken(token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Xác nhận người dùng vẫn tồn tại (token có thể sống lâu hơn tài khoản)
		user, err := authManager.UserCRUD.FindOneById(c.Context(), userID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": userID.Hex(),
			}).Warn("Token hợp lệ nhưng không tìm thấy người dùng")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		user.Password = ""
		user.RefreshToken = ""

		c.Locals("userID", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}
