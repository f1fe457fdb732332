package dto

// TweetCreateInput dữ liệu đầu vào khi đăng tweet
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,min=1,max=280,no_xss"`
}

// TweetUpdateInput dữ liệu đầu vào khi sửa tweet
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,min=1,max=280,no_xss"`
}
