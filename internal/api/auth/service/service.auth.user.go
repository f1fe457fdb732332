// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/dto"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/models"
	basemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/models"
	basesvc "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/base/service"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/pipeline"
)

// WatchHistoryItem là một video trong lịch sử xem, kèm thông tin chủ kênh
type WatchHistoryItem struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	Owner       struct {
		Username string `json:"username" bson:"username"`
		FullName string `json:"fullName" bson:"fullName"`
		Avatar   string `json:"avatar" bson:"avatar"`
	} `json:"owner" bson:"owner"`
}

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới. Username được chuẩn hóa về chữ thường.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))

	// Kiểm tra trùng trước để trả thông báo rõ ràng, unique index vẫn là chốt chặn cuối
	exists, err := s.DocumentExists(ctx, bson.M{"$or": []bson.M{
		{"username": username},
		{"email": input.Email},
	}})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeValidationInput, "Username hoặc email đã được sử dụng", common.StatusConflict, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Username:     username,
		Email:        input.Email,
		FullName:     input.FullName,
		Password:     string(hashed),
		WatchHistory: []primitive.ObjectID{},
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Username hoặc email đã được sử dụng", common.StatusConflict, nil)
		}
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"user_id":  created.ID.Hex(),
		"username": created.Username,
	}).Info("Đăng ký người dùng thành công")

	created.Password = ""
	created.RefreshToken = ""
	return &created, nil
}

// Login đăng nhập bằng username hoặc email, trả về user cùng cặp token.
// Refresh token được lưu vào document người dùng.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, string, string, error) {
	if input.Username == "" && input.Email == "" {
		return nil, "", "", common.NewError(common.ErrCodeValidationInput, "Cần cung cấp username hoặc email", common.StatusBadRequest, nil)
	}

	filter := bson.M{"$or": []bson.M{
		{"username": strings.ToLower(input.Username)},
		{"email": input.Email},
	}}

	user, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", "", common.ErrUserNotFound
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", "", common.ErrInvalidCredentials
	}

	accessToken, err := CreateAccessToken(&user)
	if err != nil {
		return nil, "", "", err
	}
	refreshToken, err := CreateRefreshToken(&user)
	if err != nil {
		return nil, "", "", err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	})
	if err != nil {
		return nil, "", "", err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"user_id":  updated.ID.Hex(),
		"username": updated.Username,
	}).Info("Đăng nhập thành công")

	updated.Password = ""
	updated.RefreshToken = ""
	return &updated, accessToken, refreshToken, nil
}

// Logout xóa refresh token của người dùng, vô hiệu hóa phiên hiện tại
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": ""},
	})
	return err
}

// RefreshTokens xác minh refresh token, so khớp với token đã lưu và phát hành cặp token mới
func (s *UserService) RefreshTokens(ctx context.Context, incoming string) (string, string, error) {
	if incoming == "" {
		return "", "", common.ErrTokenMissing
	}

	userID, err := VerifyRefreshToken(incoming)
	if err != nil {
		return "", "", err
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return "", "", common.ErrTokenInvalid
	}

	// Token hợp lệ về mặt chữ ký nhưng đã bị thay thế bởi lần login mới hơn
	if user.RefreshToken != incoming {
		return "", "", common.ErrTokenExpired
	}

	accessToken, err := CreateAccessToken(&user)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := CreateRefreshToken(&user)
	if err != nil {
		return "", "", err
	}

	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	}); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ChangePassword đổi mật khẩu sau khi xác minh mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusBadRequest, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": string(hashed)},
	})
	return err
}

// UpdateAccount cập nhật thông tin tài khoản (fullName, email)
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateAccountInput) (*models.User, error) {
	set := map[string]interface{}{}
	if input.FullName != "" {
		set["fullName"] = input.FullName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if len(set) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Email đã được sử dụng", common.StatusConflict, nil)
		}
		return nil, err
	}

	updated.Password = ""
	updated.RefreshToken = ""
	return &updated, nil
}

// UpdateImage cập nhật URL avatar hoặc coverImage của người dùng.
// field chỉ nhận "avatar" hoặc "coverImage".
func (s *UserService) UpdateImage(ctx context.Context, userID primitive.ObjectID, field string, url string) (*models.User, error) {
	if field != "avatar" && field != "coverImage" {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{field: url},
	})
	if err != nil {
		return nil, err
	}

	updated.Password = ""
	updated.RefreshToken = ""
	return &updated, nil
}

// AppendWatchHistory thêm video vào lịch sử xem, không tạo bản ghi trùng
func (s *UserService) AppendWatchHistory(ctx context.Context, userID primitive.ObjectID, videoID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"watchHistory": videoID},
	})
	return err
}

// GetWatchHistory trả về danh sách video trong lịch sử xem, kèm thông tin chủ kênh
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[WatchHistoryItem], error) {
	p := pipeline.New().
		Match(bson.M{"_id": userID}).
		Lookup(global.MongoDB_ColNames.Videos, "watchHistory", "_id", "watchHistory").
		Unwind("$watchHistory").
		Lookup(global.MongoDB_ColNames.Users, "watchHistory.owner", "_id", "ownerDoc").
		Unwind("$ownerDoc").
		Project(bson.M{
			"_id":         "$watchHistory._id",
			"title":       "$watchHistory.title",
			"description": "$watchHistory.description",
			"videoFile":   "$watchHistory.videoFile",
			"thumbnail":   "$watchHistory.thumbnail",
			"duration":    "$watchHistory.duration",
			"views":       "$watchHistory.views",
			"createdAt":   "$watchHistory.createdAt",
			"owner": bson.M{
				"username": "$ownerDoc.username",
				"fullName": "$ownerDoc.fullName",
				"avatar":   "$ownerDoc.avatar",
			},
		})

	return basesvc.AggregatePaginate[WatchHistoryItem](ctx, s.Collection(), p, page, limit)
}
