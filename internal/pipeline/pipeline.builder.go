package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pipeline là một chuỗi stage có thứ tự.
// Các method builder trả về chính pipeline để có thể gọi nối tiếp.
type Pipeline struct {
	stages []Stage
}

// New tạo một pipeline rỗng
func New() *Pipeline {
	return &Pipeline{}
}

// Append thêm một stage bất kỳ vào cuối pipeline
func (p *Pipeline) Append(stage Stage) *Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// Match thêm stage $match
func (p *Pipeline) Match(filter bson.M) *Pipeline {
	return p.Append(MatchStage{Filter: filter})
}

// Sort thêm stage $sort
func (p *Pipeline) Sort(fields bson.D) *Pipeline {
	return p.Append(SortStage{Fields: fields})
}

// Lookup thêm stage $lookup
func (p *Pipeline) Lookup(from, localField, foreignField, as string) *Pipeline {
	return p.Append(LookupStage{
		From:         from,
		LocalField:   localField,
		ForeignField: foreignField,
		As:           as,
	})
}

// Unwind thêm stage $unwind
func (p *Pipeline) Unwind(path string) *Pipeline {
	return p.Append(UnwindStage{Path: path})
}

// Project thêm stage $project
func (p *Pipeline) Project(fields bson.M) *Pipeline {
	return p.Append(ProjectStage{Fields: fields})
}

// Group thêm stage $group
func (p *Pipeline) Group(id interface{}, fields bson.M) *Pipeline {
	return p.Append(GroupStage{ID: id, Fields: fields})
}

// Skip thêm stage $skip
func (p *Pipeline) Skip(n int64) *Pipeline {
	return p.Append(SkipStage{N: n})
}

// Limit thêm stage $limit
func (p *Pipeline) Limit(n int64) *Pipeline {
	return p.Append(LimitStage{N: n})
}

// Count thêm stage $count
func (p *Pipeline) Count(field string) *Pipeline {
	return p.Append(CountStage{Field: field})
}

// AddFields thêm stage $addFields
func (p *Pipeline) AddFields(fields bson.M) *Pipeline {
	return p.Append(AddFieldsStage{Fields: fields})
}

// Paginate thêm cặp stage $skip/$limit theo page (1-indexed) và limit.
// Page và limit không hợp lệ được đưa về giá trị mặc định 1/10.
func (p *Pipeline) Paginate(page, limit int64) *Pipeline {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return p.Skip((page - 1) * limit).Limit(limit)
}

// Stages trả về danh sách stage theo thứ tự đã thêm
func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Clone tạo bản sao của pipeline, dùng khi cần chạy thêm $count
// trên cùng một tập filter
func (p *Pipeline) Clone() *Pipeline {
	cloned := &Pipeline{stages: make([]Stage, len(p.stages))}
	copy(cloned.stages, p.stages)
	return cloned
}

// Build chuyển pipeline thành mongo.Pipeline để đưa vào Aggregate
func (p *Pipeline) Build() mongo.Pipeline {
	result := make(mongo.Pipeline, 0, len(p.stages))
	for _, stage := range p.stages {
		result = append(result, stage.Document())
	}
	return result
}
