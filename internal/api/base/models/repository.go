// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang, đếm).
package models

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Trang hiện tại (1-indexed)
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục khớp điều kiện lọc
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPages" bson:"totalPages"`
	// Có trang tiếp theo không
	HasNextPage bool `json:"hasNextPage" bson:"hasNextPage"`
	// Có trang trước không
	HasPrevPage bool `json:"hasPrevPage" bson:"hasPrevPage"`
}

// NewPaginateResult tính toán metadata phân trang từ page/limit/total và items.
// TotalPage = 0 khi không có mục nào khớp.
func NewPaginateResult[T any](page, limit, total int64, items []T) PaginateResult[T] {
	totalPage := int64(0)
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return PaginateResult[T]{
		Page:        page,
		Limit:       limit,
		ItemCount:   int64(len(items)),
		Items:       items,
		Total:       total,
		TotalPage:   totalPage,
		HasNextPage: page < totalPage,
		HasPrevPage: page > 1 && total > 0,
	}
}

// CountResult đại diện cho kết quả đếm
type CountResult struct {
	// Tổng số lượng mục
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
