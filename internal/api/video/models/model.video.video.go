package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video đại diện cho một video đã upload lên hệ thống
type Video struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của video

	// ===== ASSETS =====
	VideoFile string `json:"videoFile" bson:"videoFile"` // URL của file video
	Thumbnail string `json:"thumbnail" bson:"thumbnail"` // URL của thumbnail

	// ===== METADATA =====
	Title       string  `json:"title" bson:"title"`             // Tiêu đề video
	Description string  `json:"description" bson:"description"` // Mô tả video
	Duration    float64 `json:"duration" bson:"duration"`       // Thời lượng (giây)
	Views       int64   `json:"views" bson:"views"`             // Số lượt xem
	IsPublished bool    `json:"isPublished" bson:"isPublished"` // Trạng thái công khai

	// ===== OWNERSHIP =====
	Owner primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"` // ID người đăng video

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single,order:-1"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                         // Thời gian cập nhật
}
