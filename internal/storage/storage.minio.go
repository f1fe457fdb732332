// Package storage cung cấp provider lưu trữ media (video, thumbnail, avatar) trên MinIO/S3.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"github.com/AdityaSinghRajawat/VideoVault-server/config"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
)

// UploadResult chứa thông tin file sau khi upload thành công
type UploadResult struct {
	ObjectKey string `json:"objectKey"` // Key của object trong bucket
	URL       string `json:"url"`       // URL công khai của file
}

// Provider định nghĩa interface cho dịch vụ lưu trữ media.
// Mọi lỗi trả về đều đã được map sang lỗi hệ thống (UpstreamFailure).
type Provider interface {
	// Upload đẩy một file lên bucket, trả về object key và URL công khai
	Upload(ctx context.Context, reader io.Reader, size int64, fileName string, contentType string) (*UploadResult, error)

	// Remove xóa một object theo key. Key rỗng được bỏ qua.
	Remove(ctx context.Context, objectKey string) error

	// ObjectKeyFromURL trích object key từ URL công khai do Upload trả về.
	// Trả về chuỗi rỗng nếu URL không thuộc bucket này.
	ObjectKeyFromURL(url string) string
}

// MinioProvider triển khai Provider trên MinIO client
type MinioProvider struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioProvider tạo mới provider từ cấu hình server và đảm bảo bucket tồn tại
func NewMinioProvider(ctx context.Context, c *config.Configuration) (*MinioProvider, error) {
	client, err := minio.New(c.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.StorageAccessKey, c.StorageSecretKey, ""),
		Secure: c.StorageUseSSL,
	})
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Không thể khởi tạo storage client", common.StatusInternalServerError, err)
	}

	exists, err := client.BucketExists(ctx, c.StorageBucket)
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Không thể kiểm tra bucket", common.StatusInternalServerError, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, c.StorageBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, common.NewError(common.ErrCodeUpstream, "Không thể tạo bucket", common.StatusInternalServerError, err)
		}
		logger.GetAppLogger().WithFields(logrus.Fields{"bucket": c.StorageBucket}).Info("Đã tạo bucket lưu trữ media")
	}

	return &MinioProvider{
		client:    client,
		bucket:    c.StorageBucket,
		publicURL: strings.TrimRight(c.StoragePublicURL, "/"),
	}, nil
}

// Upload đẩy file lên bucket với object key ngẫu nhiên (giữ lại extension gốc)
func (p *MinioProvider) Upload(ctx context.Context, reader io.Reader, size int64, fileName string, contentType string) (*UploadResult, error) {
	objectKey := uuid.NewString() + path.Ext(fileName)

	_, err := p.client.PutObject(ctx, p.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"bucket":    p.bucket,
			"objectKey": objectKey,
			"error":     err.Error(),
		}).Error("Upload file lên storage thất bại")
		return nil, common.ErrUpstreamStorage
	}

	return &UploadResult{
		ObjectKey: objectKey,
		URL:       fmt.Sprintf("%s/%s/%s", p.publicURL, p.bucket, objectKey),
	}, nil
}

// Remove xóa object theo key, bỏ qua key rỗng
func (p *MinioProvider) Remove(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return nil
	}

	err := p.client.RemoveObject(ctx, p.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"bucket":    p.bucket,
			"objectKey": objectKey,
			"error":     err.Error(),
		}).Error("Xóa file khỏi storage thất bại")
		return common.ErrUpstreamStorage
	}

	return nil
}

// ObjectKeyFromURL suy ra object key từ URL công khai đã lưu trong document.
// Trả về chuỗi rỗng nếu URL không thuộc bucket này.
func (p *MinioProvider) ObjectKeyFromURL(url string) string {
	prefix := fmt.Sprintf("%s/%s/", p.publicURL, p.bucket)
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}
