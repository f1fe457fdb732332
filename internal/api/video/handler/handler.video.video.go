package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v3"

	authsvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/service"
	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/models"
	services "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/storage"
)

// VideoHandler xử lý các request liên quan đến video
type VideoHandler struct {
	*basehdl.BaseHandler[models.Video, dto.VideoPublishInput, dto.VideoUpdateInput]
	videoService *services.VideoService
	userService  *authsvc.UserService
	store        storage.Provider
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler(store storage.Provider) (*VideoHandler, error) {
	videoService, err := services.NewVideoService()
	if err != nil {
		return nil, err
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &VideoHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Video, dto.VideoPublishInput, dto.VideoUpdateInput](videoService),
		videoService: videoService,
		userService:  userService,
		store:        store,
	}, nil
}

// uploadFormFile upload một file từ multipart form lên storage
func (h *VideoHandler) uploadFormFile(c fiber.Ctx, fileHeader *multipart.FileHeader) (*storage.UploadResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, common.ErrInvalidInput
	}
	defer file.Close()
	return h.store.Upload(c.Context(), file, fileHeader.Size, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
}

// HandleListVideos liệt kê video công khai với tìm kiếm, sắp xếp và phân trang
func (h *VideoHandler) HandleListVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		q := &dto.VideoListQuery{
			Page:     page,
			Limit:    limit,
			Query:    c.Query("query"),
			SortBy:   c.Query("sortBy"),
			SortType: c.Query("sortType"),
			UserID:   c.Query("userId"),
		}

		result, err := h.videoService.ListVideos(c.Context(), q)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandlePublishVideo đăng video mới.
// Multipart form gồm: videoFile, thumbnail, title, description, duration (tùy chọn).
func (h *VideoHandler) HandlePublishVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := &dto.VideoPublishInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoHeader, err := c.FormFile("videoFile")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file 'videoFile' trong form data",
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		thumbHeader, err := c.FormFile("thumbnail")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file 'thumbnail' trong form data",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		uploadedVideo, err := h.uploadFormFile(c, videoHeader)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		uploadedThumb, err := h.uploadFormFile(c, thumbHeader)
		if err != nil {
			// Dọn file video đã upload khi thumbnail thất bại
			_ = h.store.Remove(c.Context(), uploadedVideo.ObjectKey)
			h.HandleResponse(c, nil, err)
			return nil
		}

		duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)

		video, err := h.videoService.PublishVideo(c.Context(), callerID, input, uploadedVideo.URL, uploadedThumb.URL, duration)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("video_publish", c, map[string]interface{}{"videoId": video.ID.Hex()})
		h.HandleCreated(c, video, nil)
		return nil
	})
}

// HandleGetVideoByID lấy chi tiết video, tăng lượt xem
// và ghi video vào lịch sử xem của người gọi.
func (h *VideoHandler) HandleGetVideoByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := basehdl.ParamID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.GetVideoByID(c.Context(), videoID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Ghi lịch sử xem best-effort, lỗi không chặn response
		if callerID, err := basehdl.CallerID(c); err == nil {
			_ = h.userService.AppendWatchHistory(c.Context(), callerID, videoID)
		}

		h.HandleResponse(c, video, nil)
		return nil
	})
}

// HandleUpdateVideo cập nhật tiêu đề, mô tả và thumbnail (chỉ chủ sở hữu).
// Thumbnail mới (nếu có) được gửi qua multipart form, field "thumbnail".
func (h *VideoHandler) HandleUpdateVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := basehdl.ParamID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := &dto.VideoUpdateInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Giữ thumbnail cũ để dọn dẹp nếu có thumbnail mới
		oldThumbnail := ""
		thumbnailURL := ""
		if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
			current, err := h.videoService.GetOwnedVideo(c.Context(), videoID, callerID)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			oldThumbnail = current.Thumbnail

			uploaded, err := h.uploadFormFile(c, thumbHeader)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			thumbnailURL = uploaded.URL
		}

		video, err := h.videoService.UpdateVideo(c.Context(), videoID, callerID, input, thumbnailURL)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.removeAssets(c, oldThumbnail)
		h.HandleResponse(c, video, nil)
		return nil
	})
}

// HandleDeleteVideo xóa video cùng các file trên storage (chỉ chủ sở hữu)
func (h *VideoHandler) HandleDeleteVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := basehdl.ParamID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.DeleteVideo(c.Context(), videoID, callerID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Dọn file best-effort, document đã xóa thành công
		h.removeAssets(c, video.VideoFile, video.Thumbnail)
		logger.LogAction("video_delete", c, map[string]interface{}{"videoId": videoID.Hex()})
		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleTogglePublish đảo trạng thái công khai của video (chỉ chủ sở hữu)
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := basehdl.ParamID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.TogglePublishStatus(c.Context(), videoID, callerID)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// removeAssets xóa các file trên storage theo URL, bỏ qua lỗi
func (h *VideoHandler) removeAssets(c fiber.Ctx, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if key := h.store.ObjectKeyFromURL(url); key != "" {
			if err := h.store.Remove(c.Context(), key); err != nil {
				logger.GetAppLogger().Warnf("Không thể xóa file %s: %v", key, err)
			}
		}
	}
}
