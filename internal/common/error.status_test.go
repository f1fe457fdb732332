// Package common - Test chuyển đổi lỗi MongoDB sang lỗi ứng dụng.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NilTraVeNil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, mong đợi nil", got)
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	if got := ConvertMongoError(mongo.ErrNoDocuments); got != ErrNotFound {
		t.Errorf("ErrNoDocuments phải convert sang ErrNotFound, có %v", got)
	}
}

func TestConvertMongoError_GiuNguyenLoiDaConvert(t *testing.T) {
	if got := ConvertMongoError(ErrNotOwner); got != ErrNotOwner {
		t.Errorf("lỗi ứng dụng phải được giữ nguyên, có %v", got)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}},
	}
	if got := ConvertMongoError(dup); got != ErrMongoDuplicate {
		t.Errorf("duplicate key phải convert sang ErrMongoDuplicate, có %v", got)
	}
}

func TestConvertMongoError_CommandErrorTheoDaiMa(t *testing.T) {
	cmdErr := mongo.CommandError{Code: 150, Message: "host unreachable"}
	if got := ConvertMongoError(cmdErr); got != ErrMongoConnection {
		t.Errorf("CommandError code 150 phải convert sang ErrMongoConnection, có %v", got)
	}
}

func TestAppError_ChuaStatusCode(t *testing.T) {
	var appErr *Error
	if !errors.As(ErrNotFound, &appErr) {
		t.Fatal("ErrNotFound không phải *Error")
	}
	if appErr.StatusCode != StatusNotFound {
		t.Errorf("StatusCode = %d, mong đợi %d", appErr.StatusCode, StatusNotFound)
	}
}
