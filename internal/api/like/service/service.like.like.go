package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	basesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/service"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/like/models"
	videosvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// Các loại đối tượng có thể thích
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// LikedVideoItem một video trong danh sách video đã thích
type LikedVideoItem struct {
	ID    primitive.ObjectID      `json:"id" bson:"_id"`
	Video videosvc.VideoWithOwner `json:"video" bson:"video"`
}

// LikeService cung cấp các nghiệp vụ liên quan đến lượt thích
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[models.Like]
}

// NewLikeService tạo instance mới của LikeService
func NewLikeService() (*LikeService, error) {
	likeCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Like](likeCol),
	}, nil
}

// ToggleLike đảo trạng thái thích trên một đối tượng.
// Trả về true nếu sau thao tác đối tượng được thích, false nếu đã bỏ thích.
// Insert đụng index unique (hai request đồng thời) được coi là đã thích.
func (s *LikeService) ToggleLike(ctx context.Context, target string, targetID primitive.ObjectID, likedBy primitive.ObjectID) (bool, error) {
	filter := bson.M{target: targetID, "likedBy": likedBy}

	existing, err := s.FindOne(ctx, filter, nil)
	if err == nil {
		if delErr := s.DeleteById(ctx, existing.ID); delErr != nil {
			return false, delErr
		}
		return false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return false, err
	}

	like := models.Like{LikedBy: likedBy}
	switch target {
	case LikeTargetVideo:
		like.Video = &targetID
	case LikeTargetComment:
		like.Comment = &targetID
	case LikeTargetTweet:
		like.Tweet = &targetID
	default:
		return false, common.ErrInvalidInput
	}

	if _, err := s.InsertOne(ctx, like); err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// GetLikedVideos liệt kê các video mà người dùng đã thích, kèm thông tin
// video và chủ video, phân trang qua aggregation.
func (s *LikeService) GetLikedVideos(ctx context.Context, likedBy primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[LikedVideoItem], error) {
	p := pipeline.New().
		Match(bson.M{
			"likedBy": likedBy,
			"video":   bson.M{"$exists": true},
		}).
		Sort(bson.D{{Key: "createdAt", Value: -1}}).
		Lookup(global.MongoDB_ColNames.Videos, "video", "_id", "video").
		Unwind("$video").
		Lookup(global.MongoDB_ColNames.Users, "video.owner", "_id", "video.owner").
		Unwind("$video.owner").
		Project(bson.M{
			"video": bson.M{
				"_id":         1,
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
			},
		})

	return basesvc.AggregatePaginate[LikedVideoItem](ctx, s.Collection(), p, page, limit)
}
