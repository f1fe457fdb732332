package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet đại diện cho một bài đăng ngắn của người dùng
type Tweet struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của tweet

	Content string `json:"content" bson:"content"` // Nội dung tweet

	Owner primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"` // ID người đăng

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
