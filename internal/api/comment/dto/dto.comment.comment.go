package dto

// CommentAddInput dữ liệu đầu vào khi thêm bình luận
type CommentAddInput struct {
	Content string `json:"content" validate:"required,min=1,max=1000,no_xss"`
}

// CommentUpdateInput dữ liệu đầu vào khi sửa bình luận
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,min=1,max=1000,no_xss"`
}
