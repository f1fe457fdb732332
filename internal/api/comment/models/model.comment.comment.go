package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment đại diện cho một bình luận trên video
type Comment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bình luận

	Content string `json:"content" bson:"content"` // Nội dung bình luận

	// ===== REFERENCES =====
	Video primitive.ObjectID `json:"video" bson:"video" index:"compound:video_createdAt"` // ID video được bình luận
	Owner primitive.ObjectID `json:"owner" bson:"owner"`                                  // ID người bình luận

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"compound:video_createdAt,order:-1"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                                           // Thời gian cập nhật
}
