package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist đại diện cho một danh sách phát do người dùng tạo
type Playlist struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của playlist

	Name        string `json:"name" bson:"name"`               // Tên playlist
	Description string `json:"description" bson:"description"` // Mô tả playlist

	Videos []primitive.ObjectID `json:"videos" bson:"videos"` // Danh sách ID video trong playlist

	Owner primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"` // ID người tạo playlist

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
