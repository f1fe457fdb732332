package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/AdityaSinghRajawat/VideoVault-server/config"
	authmodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/auth/models"
	commentmodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/comment/models"
	likemodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/like/models"
	playlistmodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/playlist/models"
	submodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/subscription/models"
	tweetmodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/tweet/models"
	videomodels "github.com/AdityaSinghRajawat/VideoVault-server/internal/api/video/models"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/database"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Playlists = "playlists"
	global.MongoDB_ColNames.Tweets = "tweets"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexTargets := []struct {
		colName string
		model   interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Videos, videomodels.Video{}},
		{global.MongoDB_ColNames.Comments, commentmodels.Comment{}},
		{global.MongoDB_ColNames.Likes, likemodels.Like{}},
		{global.MongoDB_ColNames.Subscriptions, submodels.Subscription{}},
		{global.MongoDB_ColNames.Playlists, playlistmodels.Playlist{}},
		{global.MongoDB_ColNames.Tweets, tweetmodels.Tweet{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(context.TODO(), db.Collection(target.colName), target.model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", target.colName, err)
		}
	}
	logrus.Info("Created collection indexes")
}
