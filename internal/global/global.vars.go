package global

import (
	"github.com/AdityaSinghRajawat/VideoVault-server/config"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Videos        string // Tên collection cho video
	Comments      string // Tên collection cho bình luận
	Likes         string // Tên collection cho lượt thích
	Subscriptions string // Tên collection cho đăng ký kênh
	Playlists     string // Tên collection cho playlist
	Tweets        string // Tên collection cho tweet
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
