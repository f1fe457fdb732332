// Package pipeline cung cấp các stage có kiểu cho MongoDB aggregation pipeline.
// Mỗi stage là một biến thể riêng, pipeline là một chuỗi stage có thứ tự,
// nhờ đó thứ tự và ngữ nghĩa của từng bước có thể kiểm thử độc lập với database.
package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Stage là một bước trong aggregation pipeline.
// Document trả về bson.D tương ứng với stage đó.
type Stage interface {
	Document() bson.D
}

// MatchStage lọc document theo điều kiện ($match)
type MatchStage struct {
	Filter bson.M // Điều kiện lọc
}

func (s MatchStage) Document() bson.D {
	return bson.D{{Key: "$match", Value: s.Filter}}
}

// SortStage sắp xếp document ($sort).
// Fields dùng bson.D để giữ thứ tự các khóa sắp xếp.
type SortStage struct {
	Fields bson.D // Các cặp field/thứ tự (1 tăng dần, -1 giảm dần)
}

func (s SortStage) Document() bson.D {
	return bson.D{{Key: "$sort", Value: s.Fields}}
}

// LookupStage join sang collection khác ($lookup)
type LookupStage struct {
	From         string // Collection nguồn của join
	LocalField   string // Field bên này
	ForeignField string // Field bên kia
	As           string // Tên field chứa kết quả join
}

func (s LookupStage) Document() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         s.From,
		"localField":   s.LocalField,
		"foreignField": s.ForeignField,
		"as":           s.As,
	}}}
}

// UnwindStage tách mảng thành từng document ($unwind)
type UnwindStage struct {
	Path string // Đường dẫn field mảng, có tiền tố "$"
}

func (s UnwindStage) Document() bson.D {
	return bson.D{{Key: "$unwind", Value: s.Path}}
}

// ProjectStage định hình lại document ($project)
type ProjectStage struct {
	Fields bson.M // Các field được giữ lại hoặc tính toán
}

func (s ProjectStage) Document() bson.D {
	return bson.D{{Key: "$project", Value: s.Fields}}
}

// GroupStage gom nhóm document ($group)
type GroupStage struct {
	ID     interface{} // Khóa gom nhóm, nil = gom toàn bộ
	Fields bson.M      // Các accumulator ($sum, $avg, ...)
}

func (s GroupStage) Document() bson.D {
	group := bson.M{"_id": s.ID}
	for k, v := range s.Fields {
		group[k] = v
	}
	return bson.D{{Key: "$group", Value: group}}
}

// SkipStage bỏ qua n document đầu ($skip)
type SkipStage struct {
	N int64
}

func (s SkipStage) Document() bson.D {
	return bson.D{{Key: "$skip", Value: s.N}}
}

// LimitStage giới hạn số document trả về ($limit)
type LimitStage struct {
	N int64
}

func (s LimitStage) Document() bson.D {
	return bson.D{{Key: "$limit", Value: s.N}}
}

// CountStage đếm số document ($count)
type CountStage struct {
	Field string // Tên field chứa kết quả đếm
}

func (s CountStage) Document() bson.D {
	return bson.D{{Key: "$count", Value: s.Field}}
}

// AddFieldsStage thêm field tính toán vào document ($addFields)
type AddFieldsStage struct {
	Fields bson.M
}

func (s AddFieldsStage) Document() bson.D {
	return bson.D{{Key: "$addFields", Value: s.Fields}}
}
