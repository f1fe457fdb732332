// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng kiêm kênh (channel).
// WatchHistory chứa danh sách video đã xem, phần tử mới nhất nằm cuối.
// RefreshToken là token làm mới phiên hiện tại, bị xóa khi logout.
type User struct {
	ID           primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string               `json:"username" bson:"username" index:"unique"`
	Email        string               `json:"email" bson:"email" index:"unique"`
	FullName     string               `json:"fullName" bson:"fullName"`
	Avatar       string               `json:"avatar" bson:"avatar"`
	CoverImage   string               `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	WatchHistory []primitive.ObjectID `json:"watchHistory" bson:"watchHistory"`
	Password     string               `json:"-" bson:"password,omitempty"`
	RefreshToken string               `json:"-" bson:"refreshToken,omitempty"`
	CreatedAt    int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt" bson:"updatedAt"`
}
