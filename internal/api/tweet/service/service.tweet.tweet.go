package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	basesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/service"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// TweetOwner thông tin rút gọn của người đăng tweet
type TweetOwner struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// TweetWithOwner tweet kèm thông tin người đăng đã join
type TweetWithOwner struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Content   string             `json:"content" bson:"content"`
	Owner     TweetOwner         `json:"owner" bson:"owner"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// TweetService cung cấp các nghiệp vụ liên quan đến tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[models.Tweet]
}

// NewTweetService tạo instance mới của TweetService
func NewTweetService() (*TweetService, error) {
	tweetCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}
	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tweet](tweetCol),
	}, nil
}

// CreateTweet đăng tweet mới
func (s *TweetService) CreateTweet(ctx context.Context, ownerID primitive.ObjectID, input *dto.TweetCreateInput) (models.Tweet, error) {
	tweet := models.Tweet{
		Content: input.Content,
		Owner:   ownerID,
	}
	return s.InsertOne(ctx, tweet)
}

// GetUserTweets liệt kê tweet của một người dùng, mới nhất trước (phân trang).
// Người dùng chưa đăng tweet nào trả về ErrNotFound.
func (s *TweetService) GetUserTweets(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[TweetWithOwner], error) {
	p := pipeline.New().
		Match(bson.M{"owner": userID}).
		Sort(bson.D{{Key: "createdAt", Value: -1}}).
		Lookup(global.MongoDB_ColNames.Users, "owner", "_id", "owner").
		Unwind("$owner").
		Project(bson.M{
			"content":   1,
			"createdAt": 1,
			"owner": bson.M{
				"_id":      1,
				"username": 1,
				"fullName": 1,
				"avatar":   1,
			},
		})

	result, err := basesvc.AggregatePaginate[TweetWithOwner](ctx, s.Collection(), p, page, limit)
	if err != nil {
		return nil, err
	}
	if result.Total == 0 {
		return nil, common.ErrNotFound
	}
	return result, nil
}

// getOwnedTweet lấy tweet và kiểm tra quyền sở hữu.
// Tweet của người khác trả về ErrNotOwner (ẩn sự tồn tại của tài nguyên).
func (s *TweetService) getOwnedTweet(ctx context.Context, tweetID primitive.ObjectID, callerID primitive.ObjectID) (models.Tweet, error) {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return tweet, err
	}
	if tweet.Owner != callerID {
		return models.Tweet{}, common.ErrNotOwner
	}
	return tweet, nil
}

// UpdateTweet sửa nội dung tweet (chỉ chủ sở hữu)
func (s *TweetService) UpdateTweet(ctx context.Context, tweetID primitive.ObjectID, callerID primitive.ObjectID, input *dto.TweetUpdateInput) (models.Tweet, error) {
	if _, err := s.getOwnedTweet(ctx, tweetID, callerID); err != nil {
		return models.Tweet{}, err
	}
	return s.UpdateById(ctx, tweetID, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	})
}

// DeleteTweet xóa tweet (chỉ chủ sở hữu)
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID primitive.ObjectID, callerID primitive.ObjectID) error {
	if _, err := s.getOwnedTweet(ctx, tweetID, callerID); err != nil {
		return err
	}
	return s.DeleteById(ctx, tweetID)
}
