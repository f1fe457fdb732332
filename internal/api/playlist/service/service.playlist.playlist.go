package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	basesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/service"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// PlaylistVideo thông tin video đã join trong chi tiết playlist
type PlaylistVideo struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Thumbnail string             `json:"thumbnail" bson:"thumbnail"`
	Duration  float64            `json:"duration" bson:"duration"`
	Views     int64              `json:"views" bson:"views"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// PlaylistDetail playlist kèm danh sách video đã join
type PlaylistDetail struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Videos      []PlaylistVideo    `json:"videos" bson:"videos"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
}

// PlaylistService cung cấp các nghiệp vụ liên quan đến playlist
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[models.Playlist]
}

// NewPlaylistService tạo instance mới của PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	playlistCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Playlist](playlistCol),
	}, nil
}

// CreatePlaylist tạo playlist mới cho người dùng
func (s *PlaylistService) CreatePlaylist(ctx context.Context, ownerID primitive.ObjectID, input *dto.PlaylistCreateInput) (models.Playlist, error) {
	playlist := models.Playlist{
		Name:        input.Name,
		Description: input.Description,
		Videos:      []primitive.ObjectID{},
		Owner:       ownerID,
	}
	return s.InsertOne(ctx, playlist)
}

// GetUserPlaylists liệt kê playlist của một người dùng (phân trang)
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Playlist], error) {
	return s.FindWithPagination(ctx, bson.M{"owner": userID}, page, limit, nil)
}

// GetPlaylistByID lấy chi tiết playlist kèm danh sách video đã join
func (s *PlaylistService) GetPlaylistByID(ctx context.Context, playlistID primitive.ObjectID) (*PlaylistDetail, error) {
	p := pipeline.New().
		Match(bson.M{"_id": playlistID}).
		Lookup(global.MongoDB_ColNames.Videos, "videos", "_id", "videos").
		Project(bson.M{
			"name":        1,
			"description": 1,
			"owner":       1,
			"createdAt":   1,
			"videos": bson.M{
				"_id":       1,
				"title":     1,
				"thumbnail": 1,
				"duration":  1,
				"views":     1,
				"createdAt": 1,
			},
		})

	var results []PlaylistDetail
	if err := s.Aggregate(ctx, p, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}

// getOwnedPlaylist lấy playlist và kiểm tra quyền sở hữu.
// Playlist của người khác trả về ErrNotOwner (ẩn sự tồn tại của tài nguyên).
func (s *PlaylistService) getOwnedPlaylist(ctx context.Context, playlistID primitive.ObjectID, callerID primitive.ObjectID) (models.Playlist, error) {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return playlist, err
	}
	if playlist.Owner != callerID {
		return models.Playlist{}, common.ErrNotOwner
	}
	return playlist, nil
}

// AddVideoToPlaylist thêm video vào playlist (chỉ chủ sở hữu).
// Video đã có trong playlist không bị thêm trùng.
func (s *PlaylistService) AddVideoToPlaylist(ctx context.Context, playlistID, videoID primitive.ObjectID, callerID primitive.ObjectID) (models.Playlist, error) {
	if _, err := s.getOwnedPlaylist(ctx, playlistID, callerID); err != nil {
		return models.Playlist{}, err
	}
	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"videos": videoID},
	})
}

// RemoveVideoFromPlaylist gỡ video khỏi playlist (chỉ chủ sở hữu)
func (s *PlaylistService) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID primitive.ObjectID, callerID primitive.ObjectID) (models.Playlist, error) {
	if _, err := s.getOwnedPlaylist(ctx, playlistID, callerID); err != nil {
		return models.Playlist{}, err
	}
	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	})
}

// UpdatePlaylist cập nhật tên và mô tả playlist (chỉ chủ sở hữu)
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistID primitive.ObjectID, callerID primitive.ObjectID, input *dto.PlaylistUpdateInput) (models.Playlist, error) {
	if _, err := s.getOwnedPlaylist(ctx, playlistID, callerID); err != nil {
		return models.Playlist{}, err
	}

	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		return models.Playlist{}, common.ErrInvalidInput
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{Set: set})
}

// DeletePlaylist xóa playlist (chỉ chủ sở hữu)
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID, callerID primitive.ObjectID) error {
	if _, err := s.getOwnedPlaylist(ctx, playlistID, callerID); err != nil {
		return err
	}
	return s.DeleteById(ctx, playlistID)
}
