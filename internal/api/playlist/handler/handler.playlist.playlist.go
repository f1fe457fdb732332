package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/handler"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/models"
	services "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/service"
)

// PlaylistHandler xử lý các request liên quan đến playlist
type PlaylistHandler struct {
	*basehdl.BaseHandler[models.Playlist, dto.PlaylistCreateInput, dto.PlaylistUpdateInput]
	playlistService *services.PlaylistService
}

// NewPlaylistHandler tạo instance mới của PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := services.NewPlaylistService()
	if err != nil {
		return nil, err
	}
	return &PlaylistHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Playlist, dto.PlaylistCreateInput, dto.PlaylistUpdateInput](playlistService),
		playlistService: playlistService,
	}, nil
}

// playlistAndVideoIDs lấy cặp ID playlist và video từ URI params
func playlistAndVideoIDs(c fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	playlistID, err := basehdl.ParamID(c, "playlistId")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	videoID, err := basehdl.ParamID(c, "videoId")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return playlistID, videoID, nil
}

// HandleCreatePlaylist tạo playlist mới
func (h *PlaylistHandler) HandleCreatePlaylist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.PlaylistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.CreatePlaylist(c.Context(), callerID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, playlist, nil)
		return nil
	})
}

// HandleGetUserPlaylists liệt kê playlist của một người dùng (phân trang)
func (h *PlaylistHandler) HandleGetUserPlaylists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.ParamID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.playlistService.GetUserPlaylists(c.Context(), userID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetPlaylistByID lấy chi tiết playlist kèm danh sách video
func (h *PlaylistHandler) HandleGetPlaylistByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := basehdl.ParamID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.GetPlaylistByID(c.Context(), playlistID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleAddVideo thêm video vào playlist (chỉ chủ sở hữu)
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, videoID, err := playlistAndVideoIDs(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.AddVideoToPlaylist(c.Context(), playlistID, videoID, callerID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleRemoveVideo gỡ video khỏi playlist (chỉ chủ sở hữu)
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, videoID, err := playlistAndVideoIDs(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.RemoveVideoFromPlaylist(c.Context(), playlistID, videoID, callerID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleUpdatePlaylist cập nhật tên và mô tả playlist (chỉ chủ sở hữu)
func (h *PlaylistHandler) HandleUpdatePlaylist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := basehdl.ParamID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.PlaylistUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.UpdatePlaylist(c.Context(), playlistID, callerID, &input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleDeletePlaylist xóa playlist (chỉ chủ sở hữu)
func (h *PlaylistHandler) HandleDeletePlaylist(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		callerID, err := basehdl.CallerID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := basehdl.ParamID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.playlistService.DeletePlaylist(c.Context(), playlistID, callerID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
