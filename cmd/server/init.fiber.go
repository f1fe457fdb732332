package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/router"
	commentrouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/router"
	dashboardrouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/dashboard/router"
	likerouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/like/router"
	playlistrouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/router"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/api/router"
	subrouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/subscription/router"
	tweetrouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/router"
	videorouter "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/router"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/storage"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp(store storage.Provider) *fiber.App {
	// Khởi tạo app với cấu hình nâng cao
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "VideoVault API", // Tên ứng dụng hiển thị
		ServerHeader:  "VideoVault API", // Header server trong response
		StrictRouting: false,            // /foo và /foo/ là một
		CaseSensitive: true,             // /Foo và /foo là khác nhau
		UnescapePath:  true,             // Tự động decode URL-encoded paths

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit:       200 * 1024 * 1024, // Max size của request body (200MB, upload video)
		Concurrency:     256 * 1024,        // Số lượng goroutines tối đa
		ReadBufferSize:  4096,              // Buffer size cho request reading
		WriteBufferSize: 4096,              // Buffer size cho response writing

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  60 * time.Second,  // Timeout đọc request (upload file lớn)
		WriteTimeout: 60 * time.Second,  // Timeout ghi response
		IdleTimeout:  120 * time.Second, // Timeout cho idle connections

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"path":   c.Path(),
				"method": c.Method(),
				"status": code,
			}).Error(message)

			return c.Status(code).JSON(fiber.Map{
				"statusCode": code,
				"message":    message,
				"success":    false,
				"errors":     []interface{}{},
			})
		},
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS Middleware - đặt trước các middleware khác để xử lý preflight
	corsOrigins := global.ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // Thời gian cache preflight requests (24 giờ)
	}))

	// 3. Security Headers Middleware
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate Limiting Middleware - Giới hạn số request theo IP
	if global.ServerConfig.RateLimit_Enabled && global.ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"statusCode": fiber.StatusTooManyRequests,
					"message":    "Quá nhiều yêu cầu, vui lòng thử lại sau",
					"success":    false,
					"errors":     []interface{}{},
				})
			},
			SkipFailedRequests:     false,
			SkipSuccessfulRequests: false,
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua rate limit cho health check và OPTIONS requests (preflight)
				return c.Path() == "/api/v1/healthcheck" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, global.ServerConfig.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// 5. Recover Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic":  e,
				"path":   c.Path(),
				"method": c.Method(),
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"statusCode": fiber.StatusInternalServerError,
				"message":    "Internal Server Error",
				"success":    false,
				"errors":     []interface{}{fmt.Sprintf("%v", e)},
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/healthcheck"
		},
	}))

	// Đăng ký route của từng domain
	err := router.SetupRoutes(app,
		authrouter.Register(store),
		videorouter.Register(store),
		commentrouter.Register,
		likerouter.Register,
		subrouter.Register,
		playlistrouter.Register,
		tweetrouter.Register,
		dashboardrouter.Register,
	)
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
