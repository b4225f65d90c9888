package main

import (
	"context"
	"time"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/database"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// InitGlobal khởi tạo các biến toàn cục: tên collection, validator, cấu hình và kết nối MongoDB
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// Hàm khởi tạo tên các collection
func initColNames() {
	global.MongoDB_ColNames = global.DefaultColNames()
	logger.GetAppLogger().Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logger.GetAppLogger().Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to initialize config: %v", err)
	}
	global.MongoDB_ServerConfig = cfg
	logger.GetAppLogger().Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	log := logger.GetAppLogger()

	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	log.Info("Connected to MongoDB")

	// Khởi tạo các index cho các collection
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.EnsureIndexes(ctx, db, global.MongoDB_ColNames); err != nil {
		// Không fatal: server vẫn phục vụ được khi thiếu index
		log.WithError(err).Error("Failed to ensure indexes")
		return
	}
	log.Info("Ensured collection indexes")
}
