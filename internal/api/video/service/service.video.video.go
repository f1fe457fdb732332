package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	basesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/service"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// VideoOwner thông tin rút gọn của chủ video trong kết quả aggregation
type VideoOwner struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// VideoWithOwner video kèm thông tin chủ sở hữu đã join
type VideoWithOwner struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       VideoOwner         `json:"owner" bson:"owner"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
}

// VideoService cung cấp các nghiệp vụ liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
}

// NewVideoService tạo instance mới của VideoService
func NewVideoService() (*VideoService, error) {
	videoCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videoCol),
	}, nil
}

// ownerLookupStages thêm các stage join chủ sở hữu vào pipeline
func ownerLookupStages(p *pipeline.Pipeline) *pipeline.Pipeline {
	return p.
		Lookup(global.MongoDB_ColNames.Users, "owner", "_id", "owner").
		Unwind("$owner").
		Project(bson.M{
			"videoFile":   1,
			"thumbnail":   1,
			"title":       1,
			"description": 1,
			"duration":    1,
			"views":       1,
			"isPublished": 1,
			"createdAt":   1,
			"owner": bson.M{
				"_id":      1,
				"username": 1,
				"fullName": 1,
				"avatar":   1,
			},
		})
}

// ListVideos liệt kê video công khai với tìm kiếm, lọc theo chủ sở hữu,
// sắp xếp và phân trang qua aggregation.
//
// Parameters:
// - ctx: Context để kiểm soát thời gian chờ
// - q: Tham số truy vấn (query, sortBy, sortType, userId, page, limit)
//
// Returns:
// - *basemodels.PaginateResult[VideoWithOwner]: Trang kết quả
// - error: Lỗi nếu có
func (s *VideoService) ListVideos(ctx context.Context, q *dto.VideoListQuery) (*basemodels.PaginateResult[VideoWithOwner], error) {
	match := bson.M{"isPublished": true}

	if q.Query != "" {
		regex := primitive.Regex{Pattern: q.Query, Options: "i"}
		match["$or"] = []bson.M{
			{"title": bson.M{"$regex": regex}},
			{"description": bson.M{"$regex": regex}},
		}
	}

	// userId không hợp lệ thì bỏ qua filter, không báo lỗi
	if q.UserID != "" {
		if ownerID, err := primitive.ObjectIDFromHex(q.UserID); err == nil {
			match["owner"] = ownerID
		}
	}

	sortField := "createdAt"
	if q.SortBy != "" {
		sortField = q.SortBy
	}
	sortOrder := -1
	if q.SortType == "asc" {
		sortOrder = 1
	}

	p := pipeline.New().
		Match(match).
		Sort(bson.D{{Key: sortField, Value: sortOrder}})
	p = ownerLookupStages(p)

	return basesvc.AggregatePaginate[VideoWithOwner](ctx, s.Collection(), p, q.Page, q.Limit)
}

// GetVideoByID lấy chi tiết video kèm thông tin chủ sở hữu.
// Mỗi lần gọi tăng lượt xem của video lên 1.
func (s *VideoService) GetVideoByID(ctx context.Context, videoID primitive.ObjectID) (*VideoWithOwner, error) {
	// Tăng lượt xem trước khi đọc để kết quả trả về đã bao gồm view mới
	_, err := s.UpdateOne(ctx, bson.M{"_id": videoID}, &basesvc.UpdateData{
		Inc: map[string]interface{}{"views": 1},
	}, nil)
	if err != nil {
		return nil, err
	}

	p := pipeline.New().Match(bson.M{"_id": videoID})
	p = ownerLookupStages(p)

	var results []VideoWithOwner
	if err := s.Aggregate(ctx, p, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}

// PublishVideo tạo document video mới sau khi file đã upload lên storage
func (s *VideoService) PublishVideo(ctx context.Context, ownerID primitive.ObjectID, input *dto.VideoPublishInput, videoURL string, thumbnailURL string, duration float64) (models.Video, error) {
	video := models.Video{
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       input.Title,
		Description: input.Description,
		Duration:    duration,
		Views:       0,
		IsPublished: true,
		Owner:       ownerID,
	}
	return s.InsertOne(ctx, video)
}

// GetOwnedVideo lấy video và kiểm tra quyền sở hữu.
// Video thuộc người khác trả về ErrNotOwner (ẩn sự tồn tại của tài nguyên).
func (s *VideoService) GetOwnedVideo(ctx context.Context, videoID primitive.ObjectID, callerID primitive.ObjectID) (models.Video, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return video, err
	}
	if video.Owner != callerID {
		return models.Video{}, common.ErrNotOwner
	}
	return video, nil
}

// UpdateVideo cập nhật tiêu đề, mô tả và thumbnail của video (chỉ chủ sở hữu)
func (s *VideoService) UpdateVideo(ctx context.Context, videoID primitive.ObjectID, callerID primitive.ObjectID, input *dto.VideoUpdateInput, thumbnailURL string) (models.Video, error) {
	if _, err := s.GetOwnedVideo(ctx, videoID, callerID); err != nil {
		return models.Video{}, err
	}

	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if thumbnailURL != "" {
		set["thumbnail"] = thumbnailURL
	}
	if len(set) == 0 {
		return models.Video{}, common.ErrInvalidInput
	}

	return s.UpdateById(ctx, videoID, &basesvc.UpdateData{Set: set})
}

// DeleteVideo xóa document video (chỉ chủ sở hữu) và trả về video đã xóa
// để caller dọn dẹp các file trên storage.
func (s *VideoService) DeleteVideo(ctx context.Context, videoID primitive.ObjectID, callerID primitive.ObjectID) (models.Video, error) {
	video, err := s.GetOwnedVideo(ctx, videoID, callerID)
	if err != nil {
		return models.Video{}, err
	}
	if err := s.DeleteById(ctx, videoID); err != nil {
		return models.Video{}, err
	}
	return video, nil
}

// TogglePublishStatus đảo trạng thái công khai của video (chỉ chủ sở hữu)
func (s *VideoService) TogglePublishStatus(ctx context.Context, videoID primitive.ObjectID, callerID primitive.ObjectID) (models.Video, error) {
	video, err := s.GetOwnedVideo(ctx, videoID, callerID)
	if err != nil {
		return models.Video{}, err
	}
	return s.UpdateById(ctx, videoID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": !video.IsPublished},
	})
}
