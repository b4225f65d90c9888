package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
	catalogsvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/service"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/database"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

func main() {
	if err := logger.Init(nil); err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	app := &cli.Command{
		Name:     "seed",
		Usage:    "Load TechTV catalog data into MongoDB",
		Commands: []*cli.Command{catalogCommand()},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.GetAppLogger().Errorf("seed failed: %v", err)
		logger.Shutdown()
		os.Exit(1)
	}
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Upsert videos and categories from a TOML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the catalog file",
				Value:   "config/seed/catalog.toml",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "Path to an env file (default: config/env/<GO_ENV>.env)",
			},
			&cli.BoolFlag{
				Name:  "drop",
				Usage: "Delete existing videos and categories first",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Only parse and validate the file",
			},
		},
		Action: runCatalog,
	}
}

func runCatalog(ctx context.Context, cmd *cli.Command) error {
	log := logger.WithModule("seed")

	catalog, err := LoadCatalog(cmd.String("file"))
	if err != nil {
		return err
	}
	log.Infof("Loaded %d categories and %d videos from %s", len(catalog.Categories), len(catalog.Videos), cmd.String("file"))
	if cmd.Bool("dry-run") {
		return nil
	}

	var files []string
	if envFile := cmd.String("env"); envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.NewConfig(files...)
	if err != nil {
		return err
	}

	client, err := database.GetInstance(cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.CloseInstance(closeCtx, client); err != nil {
			log.WithError(err).Error("Failed to close MongoDB connection")
		}
	}()

	global.MongoDB_ColNames = global.DefaultColNames()
	db := client.Database(cfg.MongoDB_DBName)
	if err := database.RegisterCollections(global.RegistryCollections, db, global.MongoDB_ColNames); err != nil {
		return err
	}

	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return err
	}
	videoService, err := catalogsvc.NewVideoService()
	if err != nil {
		return err
	}

	seedCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	result, err := SeedCatalog(seedCtx, catalog, categoryService, videoService, cmd.Bool("drop"))
	if err != nil {
		return err
	}

	log.WithField("dropped", result.Dropped).Info("Catalog seeded")
	fmt.Printf("categories: %d created, %d updated, %d total\n", result.CategoriesCreated, result.CategoriesUpdated, result.TotalCategories)
	fmt.Printf("videos: %d created, %d updated, %d total\n", result.VideosCreated, result.VideosUpdated, result.TotalVideos)
	return nil
}
