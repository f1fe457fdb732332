// Package authsvc - Test phát hành và xác minh JWT token.
package authsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AdityaSinghRajawat/VideoVault-server/config"
	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
)

func setupTokenConfig(accessExpiry, refreshExpiry int) {
	global.ServerConfig = &config.Configuration{
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: refreshExpiry,
	}
}

func testUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Username: "testuser",
		Email:    "test@example.com",
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	setupTokenConfig(3600, 86400)
	user := testUser()

	token, err := CreateAccessToken(user)
	if err != nil {
		t.Fatalf("CreateAccessToken lỗi: %v", err)
	}

	userID, err := VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken lỗi: %v", err)
	}
	if userID != user.ID {
		t.Errorf("userID = %v, mong đợi %v", userID, user.ID)
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	setupTokenConfig(3600, 86400)
	user := testUser()

	token, err := CreateRefreshToken(user)
	if err != nil {
		t.Fatalf("CreateRefreshToken lỗi: %v", err)
	}

	userID, err := VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken lỗi: %v", err)
	}
	if userID != user.ID {
		t.Errorf("userID = %v, mong đợi %v", userID, user.ID)
	}
}

func TestVerifyAccessToken_SaiSecret(t *testing.T) {
	setupTokenConfig(3600, 86400)
	user := testUser()

	refreshToken, err := CreateRefreshToken(user)
	if err != nil {
		t.Fatalf("CreateRefreshToken lỗi: %v", err)
	}

	// Refresh token ký bằng secret khác, access verifier phải từ chối
	if _, err := VerifyAccessToken(refreshToken); err != common.ErrTokenInvalid {
		t.Errorf("token sai secret phải cho ErrTokenInvalid, có %v", err)
	}
}

func TestVerifyAccessToken_HetHan(t *testing.T) {
	setupTokenConfig(-10, 86400)
	user := testUser()

	token, err := CreateAccessToken(user)
	if err != nil {
		t.Fatalf("CreateAccessToken lỗi: %v", err)
	}

	if _, err := VerifyAccessToken(token); err != common.ErrTokenExpired {
		t.Errorf("token hết hạn phải cho ErrTokenExpired, có %v", err)
	}
}

func TestVerifyAccessToken_ChuoiRac(t *testing.T) {
	setupTokenConfig(3600, 86400)

	if _, err := VerifyAccessToken("not.a.token"); err != common.ErrTokenInvalid {
		t.Errorf("chuỗi rác phải cho ErrTokenInvalid, có %v", err)
	}
}
