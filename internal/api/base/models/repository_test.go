// Package models - Test tính toán metadata phân trang.
package models

import "testing"

func TestNewPaginateResult_TinhTotalPage(t *testing.T) {
	result := NewPaginateResult(1, 2, 5, []string{"a", "b"})

	if result.TotalPage != 3 {
		t.Errorf("TotalPage = %d, mong đợi 3 (total 5, limit 2)", result.TotalPage)
	}
	if !result.HasNextPage {
		t.Error("trang 1/3 phải có HasNextPage = true")
	}
	if result.HasPrevPage {
		t.Error("trang đầu không được có HasPrevPage")
	}
	if result.ItemCount != 2 {
		t.Errorf("ItemCount = %d, mong đợi 2", result.ItemCount)
	}
}

func TestNewPaginateResult_TrangCuoi(t *testing.T) {
	result := NewPaginateResult(3, 2, 5, []string{"e"})

	if result.HasNextPage {
		t.Error("trang cuối không được có HasNextPage")
	}
	if !result.HasPrevPage {
		t.Error("trang 3 phải có HasPrevPage = true")
	}
}

func TestNewPaginateResult_KhongCoDuLieu(t *testing.T) {
	result := NewPaginateResult(1, 10, 0, []string{})

	if result.TotalPage != 0 {
		t.Errorf("TotalPage = %d, mong đợi 0 khi total = 0", result.TotalPage)
	}
	if result.HasNextPage || result.HasPrevPage {
		t.Error("không có dữ liệu thì không có trang kế/trước")
	}
}
