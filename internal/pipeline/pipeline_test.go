// Package pipeline - Test builder giữ đúng thứ tự stage, phân trang và clone.
package pipeline

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func stageKeys(p *Pipeline) []string {
	var keys []string
	for _, doc := range p.Build() {
		keys = append(keys, doc[0].Key)
	}
	return keys
}

func TestBuild_GiuThuTuStage(t *testing.T) {
	p := New().
		Match(bson.M{"isPublished": true}).
		Sort(bson.D{{Key: "createdAt", Value: -1}}).
		Lookup("users", "owner", "_id", "owner").
		Unwind("$owner").
		Project(bson.M{"title": 1})

	want := []string{"$match", "$sort", "$lookup", "$unwind", "$project"}
	got := stageKeys(p)
	if len(got) != len(want) {
		t.Fatalf("số stage = %d, mong đợi %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stage thứ %d là %s, mong đợi %s", i, got[i], want[i])
		}
	}
}

func TestPaginate_TinhSkipLimit(t *testing.T) {
	docs := New().Paginate(3, 10).Build()
	if len(docs) != 2 {
		t.Fatalf("Paginate phải tạo 2 stage, có %d", len(docs))
	}
	if docs[0][0].Key != "$skip" || docs[0][0].Value.(int64) != 20 {
		t.Errorf("$skip = %v, mong đợi 20", docs[0][0].Value)
	}
	if docs[1][0].Key != "$limit" || docs[1][0].Value.(int64) != 10 {
		t.Errorf("$limit = %v, mong đợi 10", docs[1][0].Value)
	}
}

func TestPaginate_GiaTriKhongHopLe(t *testing.T) {
	docs := New().Paginate(0, -5).Build()
	if docs[0][0].Value.(int64) != 0 {
		t.Errorf("page không hợp lệ phải đưa về skip 0, có %v", docs[0][0].Value)
	}
	if docs[1][0].Value.(int64) != 10 {
		t.Errorf("limit không hợp lệ phải đưa về 10, có %v", docs[1][0].Value)
	}
}

func TestClone_DocLapVoiBanGoc(t *testing.T) {
	original := New().Match(bson.M{"owner": "x"})
	cloned := original.Clone().Count("total")

	if len(original.Stages()) != 1 {
		t.Errorf("pipeline gốc bị thay đổi sau Clone, có %d stage", len(original.Stages()))
	}
	if len(cloned.Stages()) != 2 {
		t.Errorf("pipeline clone phải có 2 stage, có %d", len(cloned.Stages()))
	}
	if stageKeys(cloned)[1] != "$count" {
		t.Errorf("stage cuối của clone phải là $count, có %s", stageKeys(cloned)[1])
	}
}

func TestGroupStage_GomToanBoKhiIDNil(t *testing.T) {
	doc := GroupStage{ID: nil, Fields: bson.M{"totalViews": bson.M{"$sum": "$views"}}}.Document()
	group, ok := doc[0].Value.(bson.M)
	if !ok {
		t.Fatal("GroupStage.Document không trả về bson.M")
	}
	if group["_id"] != nil {
		t.Errorf("_id phải là nil khi gom toàn bộ, có %v", group["_id"])
	}
	if _, ok := group["totalViews"]; !ok {
		t.Error("GroupStage thiếu accumulator totalViews")
	}
}

func TestCountStage_TenField(t *testing.T) {
	doc := CountStage{Field: "total"}.Document()
	if doc[0].Key != "$count" || doc[0].Value != "total" {
		t.Errorf("CountStage sai: %v", doc)
	}
}
