// Package router đăng ký các route thuộc domain library: likes, watchlater, history, playlists.
// Mọi route đều nằm dưới /user và đi qua AuthMiddleware.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	libraryhdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/handler"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
	librarysvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/service"
	apirouter "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/router"
)

// Register đăng ký route library với store MongoDB
func Register(api fiber.Router, r *apirouter.Router) error {
	store, err := librarysvc.NewUserStoreMongo()
	if err != nil {
		return fmt.Errorf("failed to create user store: %w", err)
	}
	return RegisterWithStore(api, r, store)
}

// RegisterWithStore đăng ký route library với store truyền vào
func RegisterWithStore(api fiber.Router, r *apirouter.Router, store librarysvc.UserStore) error {
	user := apirouter.RegisterGroupWithMiddleware(api, "/user", []fiber.Handler{r.AuthMiddleware()})

	for _, field := range []string{models.FieldLikes, models.FieldWatchLater, models.FieldHistory} {
		h, err := libraryhdl.NewCollectionHandler(store, field)
		if err != nil {
			return fmt.Errorf("failed to create %s handler: %w", field, err)
		}
		user.Get("/"+field, h.HandleList)
		user.Post("/"+field, h.HandleAdd)
		user.Delete("/"+field+"/:videoId", h.HandleRemove)
		if field == models.FieldHistory {
			user.Delete("/"+field, h.HandleClear)
		}
	}

	playlistHandler := libraryhdl.NewPlaylistHandler(store)
	user.Get("/playlists", playlistHandler.HandleList)
	user.Post("/playlists", playlistHandler.HandleAdd)
	user.Get("/playlists/:playlistId", playlistHandler.HandleGet)
	user.Post("/playlists/:playlistId", playlistHandler.HandleAddVideo)
	user.Delete("/playlists/:playlistId", playlistHandler.HandleRemove)
	user.Delete("/playlists/:playlistId/:videoId", playlistHandler.HandleRemoveVideo)
	return nil
}
