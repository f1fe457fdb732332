package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	basesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/service"
	dto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// CommentOwner thông tin rút gọn của người bình luận, chỉ gồm username
type CommentOwner struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
}

// CommentWithOwner bình luận kèm thông tin người viết đã join
type CommentWithOwner struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video"`
	Owner     CommentOwner       `json:"owner" bson:"owner"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// CommentService cung cấp các nghiệp vụ liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
}

// NewCommentService tạo instance mới của CommentService
func NewCommentService() (*CommentService, error) {
	commentCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](commentCol),
	}, nil
}

// GetVideoComments liệt kê bình luận của một video, mới nhất trước,
// kèm thông tin người viết và phân trang qua aggregation.
func (s *CommentService) GetVideoComments(ctx context.Context, videoID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[CommentWithOwner], error) {
	p := pipeline.New().
		Match(bson.M{"video": videoID}).
		Sort(bson.D{{Key: "createdAt", Value: -1}}).
		Lookup(global.MongoDB_ColNames.Users, "owner", "_id", "owner").
		Unwind("$owner").
		Project(bson.M{
			"content":   1,
			"video":     1,
			"createdAt": 1,
			"owner": bson.M{
				"_id":      1,
				"username": 1,
			},
		})

	return basesvc.AggregatePaginate[CommentWithOwner](ctx, s.Collection(), p, page, limit)
}

// AddComment tạo bình luận mới trên video
func (s *CommentService) AddComment(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID, input *dto.CommentAddInput) (models.Comment, error) {
	comment := models.Comment{
		Content: input.Content,
		Video:   videoID,
		Owner:   ownerID,
	}
	return s.InsertOne(ctx, comment)
}

// getOwnedComment lấy bình luận và kiểm tra quyền sở hữu.
// Bình luận của người khác trả về ErrNotOwner (ẩn sự tồn tại của tài nguyên).
func (s *CommentService) getOwnedComment(ctx context.Context, commentID primitive.ObjectID, callerID primitive.ObjectID) (models.Comment, error) {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return comment, err
	}
	if comment.Owner != callerID {
		return models.Comment{}, common.ErrNotOwner
	}
	return comment, nil
}

// UpdateComment sửa nội dung bình luận (chỉ chủ sở hữu)
func (s *CommentService) UpdateComment(ctx context.Context, commentID primitive.ObjectID, callerID primitive.ObjectID, input *dto.CommentUpdateInput) (models.Comment, error) {
	if _, err := s.getOwnedComment(ctx, commentID, callerID); err != nil {
		return models.Comment{}, err
	}
	return s.UpdateById(ctx, commentID, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	})
}

// DeleteComment xóa bình luận (chỉ chủ sở hữu)
func (s *CommentService) DeleteComment(ctx context.Context, commentID primitive.ObjectID, callerID primitive.ObjectID) error {
	if _, err := s.getOwnedComment(ctx, commentID, callerID); err != nil {
		return err
	}
	return s.DeleteById(ctx, commentID)
}
