package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/database"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// Hàm khởi tạo logger
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(err)
	}
}

// Hàm chạy server, chặn cho tới khi nhận SIGINT/SIGTERM
func main_thread() {
	log := logger.GetAppLogger()

	app, limiterStorage := InitFiberApp()
	address := ":" + global.MongoDB_ServerConfig.Address

	listenErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", address)
		listenErr <- app.Listen(address, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		if err != nil {
			log.WithError(err).Error("Server stopped with error")
		}
	case sig := <-quit:
		log.Infof("Received %s, shutting down", sig)
	}

	timeout := time.Duration(global.MongoDB_ServerConfig.ShutdownTimeout) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.WithError(err).Error("Failed to shut down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := closeConnections(ctx, global.MongoDB_Session, limiterStorage); err != nil {
		log.WithError(err).Warn("Server exited with errors while closing connections")
		return
	}

	log.Info("Server exited")
}

// closeConnections đóng MongoDB rồi Redis, ghi log và gom lỗi của cả hai
func closeConnections(ctx context.Context, client *mongo.Client, limiterStorage *database.RedisStorage) error {
	log := logger.GetAppLogger()
	var errs []error

	if err := database.CloseInstance(ctx, client); err != nil {
		log.WithError(err).Error("Failed to close MongoDB connection")
		errs = append(errs, err)
	}

	if limiterStorage != nil {
		if err := limiterStorage.Close(); err != nil {
			log.WithError(err).Error("Failed to close Redis storage")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func main() {
	initLogger()
	defer logger.Shutdown()

	InitGlobal()
	InitRegistry()

	main_thread()
}
