package authhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/models"
	authsvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/service"
	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/storage"
)

// UserHandler xử lý các request xác thực và quản lý tài khoản
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UpdateAccountInput]
	userService *authsvc.UserService
	store       storage.Provider
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler(store storage.Provider) (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UpdateAccountInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
		store:       store,
	}, nil
}

// setAuthCookies ghi cặp token vào cookie HttpOnly
func setAuthCookies(c fiber.Ctx, accessToken, refreshToken string) {
	cfg := global.ServerConfig
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   cfg.EnableTLS,
		Expires:  time.Now().Add(time.Duration(cfg.AccessTokenExpiry) * time.Second),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   cfg.EnableTLS,
		Expires:  time.Now().Add(time.Duration(cfg.RefreshTokenExpiry) * time.Second),
	})
}

// clearAuthCookies xóa cặp cookie token
func clearAuthCookies(c fiber.Ctx) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Expires:  time.Now().Add(-time.Hour),
		})
	}
}

// HandleRegister đăng ký người dùng mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Register(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAuth("register", c, map[string]interface{}{"username": user.Username})
		h.HandleCreated(c, user, nil)
		return nil
	})
}

// HandleLogin đăng nhập, trả về user cùng cặp token và ghi cookie
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, accessToken, refreshToken, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, accessToken, refreshToken)
		logger.LogAuth("login", c, map[string]interface{}{"username": user.Username})

		h.HandleResponse(c, fiber.Map{
			"user":         user,
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		}, nil)
		return nil
	})
}

// HandleLogout đăng xuất, vô hiệu hóa refresh token và xóa cookie
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.Logout(c.Context(), userID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clearAuthCookies(c)
		logger.LogAuth("logout", c, nil)
		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleRefreshToken làm mới cặp token.
// Refresh token được lấy từ body hoặc cookie "refreshToken".
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RefreshTokenInput
		// Body rỗng là hợp lệ khi token nằm trong cookie
		_ = h.ParseRequestBody(c, &input)
		incoming := input.RefreshToken
		if incoming == "" {
			incoming = c.Cookies("refreshToken")
		}

		accessToken, refreshToken, err := h.userService.RefreshTokens(c.Context(), incoming)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, accessToken, refreshToken)
		h.HandleResponse(c, fiber.Map{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		}, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng hiện tại
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ChangePassword(c.Context(), userID, &input)
		if err == nil {
			logger.LogAuth("change_password", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleCurrentUser trả về thông tin người dùng hiện tại (đã được middleware nạp vào Locals)
func (h *UserHandler) HandleCurrentUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateAccount cập nhật thông tin tài khoản (fullName, email)
func (h *UserHandler) HandleUpdateAccount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UpdateAccountInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UpdateAccount(c.Context(), userID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAvatar cập nhật avatar từ multipart form (field "avatar")
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	return h.updateImage(c, "avatar")
}

// HandleUpdateCoverImage cập nhật ảnh bìa từ multipart form (field "coverImage")
func (h *UserHandler) HandleUpdateCoverImage(c fiber.Ctx) error {
	return h.updateImage(c, "coverImage")
}

// updateImage upload file ảnh lên storage rồi cập nhật URL vào document người dùng.
// Ảnh cũ được xóa best-effort sau khi cập nhật thành công.
func (h *UserHandler) updateImage(c fiber.Ctx, field string) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		fileHeader, err := c.FormFile(field)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Thiếu file '%s' trong form data", field),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		defer file.Close()

		uploaded, err := h.store.Upload(c.Context(), file, fileHeader.Size, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Giữ lại URL cũ để dọn dẹp sau khi cập nhật
		current, err := h.userService.FindOneById(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		oldURL := current.Avatar
		if field == "coverImage" {
			oldURL = current.CoverImage
		}

		user, err := h.userService.UpdateImage(c.Context(), userID, field, uploaded.URL)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Xóa ảnh cũ best-effort, lỗi không chặn response
		if oldURL != "" {
			if key := h.store.ObjectKeyFromURL(oldURL); key != "" {
				_ = h.store.Remove(c.Context(), key)
			}
		}

		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleWatchHistory trả về lịch sử xem của người dùng hiện tại (phân trang)
func (h *UserHandler) HandleWatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		history, err := h.userService.GetWatchHistory(c.Context(), userID, page, limit)
		h.HandleResponse(c, history, err)
		return nil
	})
}
