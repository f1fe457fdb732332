// Package utility - Test parse tag transform và chuyển đổi giá trị DTO sang Model.
package utility

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag_DayDuOptions(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional,default=abc,map=Owner")
	if err != nil {
		t.Fatalf("ParseTransformTag lỗi: %v", err)
	}
	if config.Type != "str_objectid" {
		t.Errorf("Type = %q, mong đợi str_objectid", config.Type)
	}
	if !config.Optional {
		t.Error("Optional phải là true")
	}
	if config.Default != "abc" {
		t.Errorf("Default = %q, mong đợi abc", config.Default)
	}
	if config.MapTo != "Owner" {
		t.Errorf("MapTo = %q, mong đợi Owner", config.MapTo)
	}
}

func TestParseTransformTag_TagRong(t *testing.T) {
	config, err := ParseTransformTag("")
	if err != nil {
		t.Fatalf("tag rỗng không được lỗi: %v", err)
	}
	if config.Type != "" || config.Optional || config.Required {
		t.Errorf("tag rỗng phải cho config rỗng, có %+v", config)
	}
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	config := &transformTagConfig{Type: "str_objectid"}

	got, err := TransformFieldValue(id.Hex(), config, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("TransformFieldValue lỗi: %v", err)
	}
	if got != id {
		t.Errorf("kết quả = %v, mong đợi %v", got, id)
	}
}

func TestTransformFieldValue_HexKhongHopLe(t *testing.T) {
	config := &transformTagConfig{Type: "str_objectid"}
	if _, err := TransformFieldValue("not-a-hex", config, reflect.TypeOf(primitive.ObjectID{})); err == nil {
		t.Error("hex không hợp lệ phải trả về lỗi")
	}
}

func TestTransformFieldValue_RequiredThieuGiaTri(t *testing.T) {
	config := &transformTagConfig{Type: "str_objectid", Required: true}
	if _, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{})); err == nil {
		t.Error("field required với giá trị rỗng phải trả về lỗi")
	}
}

func TestTransformFieldValue_OptionalBoQua(t *testing.T) {
	config := &transformTagConfig{Type: "str_objectid", Optional: true}
	got, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("field optional rỗng không được lỗi: %v", err)
	}
	if got != nil {
		t.Errorf("field optional rỗng phải trả về nil, có %v", got)
	}
}

func TestP2Int64(t *testing.T) {
	if got := P2Int64("42"); got != 42 {
		t.Errorf("P2Int64(\"42\") = %d, mong đợi 42", got)
	}
	if got := P2Int64("abc"); got != 0 {
		t.Errorf("P2Int64(\"abc\") = %d, mong đợi 0", got)
	}
	if got := P2Int64(float64(7.9)); got != 7 {
		t.Errorf("P2Int64(7.9) = %d, mong đợi 7", got)
	}
}

func TestString2ObjectID_KhongHopLe(t *testing.T) {
	if got := String2ObjectID("xyz"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải cho NilObjectID, có %v", got)
	}
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID round-trip sai: %v != %v", got, id)
	}
}
