// Package storage - Test suy ra object key từ URL công khai.
package storage

import "testing"

// Provider phải đủ để handler dọn asset mà không cần biết implementation cụ thể
var _ Provider = (*MinioProvider)(nil)

func TestObjectKeyFromURL(t *testing.T) {
	p := &MinioProvider{bucket: "videovault", publicURL: "http://localhost:9000"}

	if got := p.ObjectKeyFromURL("http://localhost:9000/videovault/abc123.mp4"); got != "abc123.mp4" {
		t.Errorf("objectKey = %q, mong đợi abc123.mp4", got)
	}
	if got := p.ObjectKeyFromURL("http://other-host/videovault/abc123.mp4"); got != "" {
		t.Errorf("URL ngoài bucket phải cho chuỗi rỗng, có %q", got)
	}
	if got := p.ObjectKeyFromURL(""); got != "" {
		t.Errorf("URL rỗng phải cho chuỗi rỗng, có %q", got)
	}
}
