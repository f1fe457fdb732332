package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	likesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/like/service"
	subsvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/subscription/service"
	videomodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/models"
	videosvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// ChannelStats số liệu tổng hợp của một kênh
type ChannelStats struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
}

// DashboardService tổng hợp số liệu kênh từ các collection khác nhau
type DashboardService struct {
	videoService        *videosvc.VideoService
	subscriptionService *subsvc.SubscriptionService
	likeService         *likesvc.LikeService
}

// NewDashboardService tạo instance mới của DashboardService
func NewDashboardService() (*DashboardService, error) {
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, err
	}
	subscriptionService, err := subsvc.NewSubscriptionService()
	if err != nil {
		return nil, err
	}
	likeService, err := likesvc.NewLikeService()
	if err != nil {
		return nil, err
	}
	return &DashboardService{
		videoService:        videoService,
		subscriptionService: subscriptionService,
		likeService:         likeService,
	}, nil
}

// videoTotals kết quả group đếm video và cộng lượt xem
type videoTotals struct {
	TotalVideos int64 `bson:"totalVideos"`
	TotalViews  int64 `bson:"totalViews"`
}

// likeTotal kết quả đếm lượt thích trên toàn bộ video của kênh
type likeTotal struct {
	Total int64 `bson:"total"`
}

// GetChannelStats tổng hợp số liệu của một kênh: số người đăng ký,
// số video, tổng lượt xem và tổng lượt thích trên các video của kênh.
// Kênh chưa có video trả về totalViews = 0.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID primitive.ObjectID) (*ChannelStats, error) {
	stats := &ChannelStats{}

	subscribers, err := s.subscriptionService.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	stats.TotalSubscribers = subscribers

	// Đếm video và cộng lượt xem trong một lần aggregate
	videoPipe := pipeline.New().
		Match(bson.M{"owner": channelID}).
		Group(nil, bson.M{
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
		})
	var vTotals []videoTotals
	if err := s.videoService.Aggregate(ctx, videoPipe, &vTotals); err != nil {
		return nil, err
	}
	if len(vTotals) > 0 {
		stats.TotalVideos = vTotals[0].TotalVideos
		stats.TotalViews = vTotals[0].TotalViews
	}

	// Đếm lượt thích trên các video thuộc kênh
	likePipe := pipeline.New().
		Match(bson.M{"video": bson.M{"$exists": true}}).
		Lookup(global.MongoDB_ColNames.Videos, "video", "_id", "video").
		Unwind("$video").
		Match(bson.M{"video.owner": channelID}).
		Count("total")
	var lTotals []likeTotal
	if err := s.likeService.Aggregate(ctx, likePipe, &lTotals); err != nil {
		return nil, err
	}
	if len(lTotals) > 0 {
		stats.TotalLikes = lTotals[0].Total
	}

	return stats, nil
}

// GetChannelVideos liệt kê toàn bộ video của kênh, kể cả video chưa công khai (phân trang)
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[videomodels.Video], error) {
	return s.videoService.FindWithPagination(ctx, bson.M{"owner": channelID}, page, limit, nil)
}
