package main

import (
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/database"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// InitRegistry đăng ký các collection MongoDB vào registry dùng chung
func InitRegistry() {
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.RegisterCollections(global.RegistryCollections, db, global.MongoDB_ColNames); err != nil {
		logger.GetAppLogger().Fatalf("Failed to initialize collections: %v", err)
	}
	logger.GetAppLogger().Info("Initialized collection registry")
}
