// Token service - phát hành và xác minh JWT access/refresh token.
package authsvc

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
)

// AccessClaims là claims của access token.
// Subject chứa user ID dạng hex.
type AccessClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// RefreshClaims là claims của refresh token, chỉ chứa định danh người dùng
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// CreateAccessToken phát hành access token cho người dùng
func CreateAccessToken(user *models.User) (string, error) {
	cfg := global.ServerConfig
	now := time.Now()

	claims := AccessClaims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessTokenExpiry) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AccessTokenSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể phát hành access token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// CreateRefreshToken phát hành refresh token cho người dùng
func CreateRefreshToken(user *models.User) (string, error) {
	cfg := global.ServerConfig
	now := time.Now()

	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.RefreshTokenExpiry) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.RefreshTokenSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể phát hành refresh token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// VerifyAccessToken xác minh access token và trả về user ID trong Subject
func VerifyAccessToken(tokenStr string) (primitive.ObjectID, error) {
	return verifyToken(tokenStr, global.ServerConfig.AccessTokenSecret)
}

// VerifyRefreshToken xác minh refresh token và trả về user ID trong Subject
func VerifyRefreshToken(tokenStr string) (primitive.ObjectID, error) {
	return verifyToken(tokenStr, global.ServerConfig.RefreshTokenSecret)
}

func verifyToken(tokenStr string, secret string) (primitive.ObjectID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("thuật toán ký không được hỗ trợ")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return primitive.NilObjectID, common.ErrTokenExpired
		}
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	return userID, nil
}
