package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
)

// CallerID lấy ObjectID của người gọi từ Locals (được auth middleware set).
// Trả về lỗi token nếu request chưa qua xác thực.
func CallerID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	return userID, nil
}

// ParamID lấy ObjectID từ URI param.
// Trả về ErrInvalidIdentifier nếu param rỗng hoặc không phải hex hợp lệ.
func ParamID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidIdentifier
	}
	return id, nil
}
