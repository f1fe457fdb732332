package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like đại diện cho một lượt thích. Mỗi document chỉ trỏ đến đúng một
// loại đối tượng (video, comment hoặc tweet), hai field còn lại bỏ trống.
// Index unique sparse trên từng cặp (đối tượng, likedBy) chặn thích trùng.
type Like struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của lượt thích

	// ===== TARGET (đúng một field khác nil) =====
	Video   *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty" index:"compound:video_likedBy_unique,sparse"`       // ID video được thích
	Comment *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty" index:"compound:comment_likedBy_unique,sparse"` // ID bình luận được thích
	Tweet   *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty" index:"compound:tweet_likedBy_unique,sparse"`       // ID tweet được thích

	LikedBy primitive.ObjectID `json:"likedBy" bson:"likedBy" index:"compound:video_likedBy_unique;compound:comment_likedBy_unique;compound:tweet_likedBy_unique"` // ID người thích

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
