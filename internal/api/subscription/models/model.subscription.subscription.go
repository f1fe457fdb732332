package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription đại diện cho một lượt đăng ký kênh.
// Index unique trên cặp (subscriber, channel) chặn đăng ký trùng.
type Subscription struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của lượt đăng ký

	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber" index:"compound:subscriber_channel_unique"` // ID người đăng ký
	Channel    primitive.ObjectID `json:"channel" bson:"channel" index:"compound:subscriber_channel_unique"`       // ID kênh được đăng ký

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
