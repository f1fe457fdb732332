package dto

// VideoPublishInput dữ liệu đầu vào khi đăng video mới.
// File video và thumbnail được gửi kèm qua multipart form.
type VideoPublishInput struct {
	Title       string `json:"title" validate:"required,min=1,max=200,no_xss"`
	Description string `json:"description" validate:"required,no_xss"`
}

// VideoUpdateInput dữ liệu đầu vào khi cập nhật thông tin video
type VideoUpdateInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// VideoListQuery tham số truy vấn danh sách video
type VideoListQuery struct {
	Page     int64  `json:"page"`
	Limit    int64  `json:"limit"`
	Query    string `json:"query"`    // Tìm kiếm theo tiêu đề hoặc mô tả
	SortBy   string `json:"sortBy"`   // Field sắp xếp, mặc định createdAt
	SortType string `json:"sortType"` // asc hoặc desc, mặc định desc
	UserID   string `json:"userId"`   // Lọc theo chủ sở hữu
}
