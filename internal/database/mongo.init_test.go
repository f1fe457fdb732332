// Package database - Test phân tích tag index từ struct model.
package database

import (
	"reflect"
	"testing"
)

func TestParseIndexTag_MotCauHinh(t *testing.T) {
	configs := parseIndexTag("single,order:-1")
	if len(configs) != 1 {
		t.Fatalf("số cấu hình = %d, mong đợi 1", len(configs))
	}
	if _, ok := configs[0]["single"]; !ok {
		t.Error("thiếu key single")
	}
	if configs[0]["order"] != "-1" {
		t.Errorf("order = %q, mong đợi -1", configs[0]["order"])
	}
}

func TestParseIndexTag_NhieuCauHinh(t *testing.T) {
	configs := parseIndexTag("compound:video_likedBy_unique,sparse;compound:comment_likedBy_unique,sparse")
	if len(configs) != 2 {
		t.Fatalf("số cấu hình = %d, mong đợi 2", len(configs))
	}
	if configs[0]["compound"] != "video_likedBy_unique" {
		t.Errorf("compound thứ nhất = %q", configs[0]["compound"])
	}
	if _, ok := configs[1]["sparse"]; !ok {
		t.Error("cấu hình thứ hai thiếu sparse")
	}
}

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("parseOrder với order:-1 = %d, mong đợi -1", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("parseOrder mặc định = %d, mong đợi 1", got)
	}
}

func TestBsonFieldName_BoOptions(t *testing.T) {
	type sample struct {
		ID    string `bson:"_id,omitempty"`
		Title string `bson:"title"`
	}
	st := reflect.TypeOf(sample{})

	if got := bsonFieldName(st.Field(0)); got != "_id" {
		t.Errorf("bsonFieldName = %q, mong đợi _id", got)
	}
	if got := bsonFieldName(st.Field(1)); got != "title" {
		t.Errorf("bsonFieldName = %q, mong đợi title", got)
	}
}
