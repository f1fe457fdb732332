package dto

// PlaylistCreateInput dữ liệu đầu vào khi tạo playlist
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100,no_xss"`
	Description string `json:"description" validate:"omitempty,max=500,no_xss"`
}

// PlaylistUpdateInput dữ liệu đầu vào khi cập nhật playlist
type PlaylistUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=100,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500,no_xss"`
}
