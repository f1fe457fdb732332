package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	basesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/service"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/subscription/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// ChannelRef thông tin rút gọn của một kênh hoặc người đăng ký
type ChannelRef struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
}

// SubscriberItem một người đăng ký trong danh sách subscriber của kênh
type SubscriberItem struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Subscriber ChannelRef         `json:"subscriber" bson:"subscriber"`
}

// SubscribedChannelItem một kênh trong danh sách kênh đã đăng ký
type SubscribedChannelItem struct {
	ID      primitive.ObjectID `json:"id" bson:"_id"`
	Channel ChannelRef         `json:"channel" bson:"channel"`
}

// SubscriptionService cung cấp các nghiệp vụ liên quan đến đăng ký kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscription]
}

// NewSubscriptionService tạo instance mới của SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscription](subCol),
	}, nil
}

// ToggleSubscription đảo trạng thái đăng ký kênh của người gọi.
// Không cho tự đăng ký kênh của chính mình.
// Trả về true nếu sau thao tác đã đăng ký, false nếu đã hủy.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberID primitive.ObjectID, channelID primitive.ObjectID) (bool, error) {
	if subscriberID == channelID {
		return false, common.ErrInvalidInput
	}

	filter := bson.M{"subscriber": subscriberID, "channel": channelID}
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

	sub := models.Subscription{Subscriber: subscriberID, Channel: channelID}
	if _, err := s.InsertOne(ctx, sub); err != nil {
		// Hai request đồng thời đụng index unique, coi như đã đăng ký
		if errors.Is(err, common.ErrMongoDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// GetChannelSubscribers liệt kê người đăng ký của một kênh (phân trang).
// Kênh chưa có người đăng ký trả về ErrNotFound.
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[SubscriberItem], error) {
	p := pipeline.New().
		Match(bson.M{"channel": channelID}).
		Lookup(global.MongoDB_ColNames.Users, "subscriber", "_id", "subscriber").
		Unwind("$subscriber").
		Project(bson.M{
			"subscriber": bson.M{
				"_id":      1,
				"username": 1,
			},
		})

	result, err := basesvc.AggregatePaginate[SubscriberItem](ctx, s.Collection(), p, page, limit)
	if err != nil {
		return nil, err
	}
	if result.Total == 0 {
		return nil, common.ErrNotFound
	}
	return result, nil
}

// GetSubscribedChannels liệt kê các kênh mà người dùng đã đăng ký (phân trang).
// Chưa đăng ký kênh nào trả về ErrNotFound.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[SubscribedChannelItem], error) {
	p := pipeline.New().
		Match(bson.M{"subscriber": subscriberID}).
		Lookup(global.MongoDB_ColNames.Users, "channel", "_id", "channel").
		Unwind("$channel").
		Project(bson.M{
			"channel": bson.M{
				"_id":      1,
				"username": 1,
			},
		})

	result, err := basesvc.AggregatePaginate[SubscribedChannelItem](ctx, s.Collection(), p, page, limit)
	if err != nil {
		return nil, err
	}
	if result.Total == 0 {
		return nil, common.ErrNotFound
	}
	return result, nil
}

// CountSubscribers đếm số người đăng ký của một kênh
func (s *SubscriptionService) CountSubscribers(ctx context.Context, channelID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"channel": channelID})
}
