package libraryhdl

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/handler"
	librarydto "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/dto"
	librarysvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/service"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// MsgInvalidPlaylistID là message khi :playlistId không phải ObjectID hợp lệ
const MsgInvalidPlaylistID = "Invalid playlist id provided. Bad request error."

// PlaylistHandler xử lý các route /user/playlists
type PlaylistHandler struct {
	basehdl.BaseHandler
	service *librarysvc.PlaylistService
}

// NewPlaylistHandler tạo mới PlaylistHandler
func NewPlaylistHandler(store librarysvc.UserStore) *PlaylistHandler {
	return &PlaylistHandler{service: librarysvc.NewPlaylistService(store)}
}

// HandleList trả về {playlists}
func (h *PlaylistHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		playlists, err := h.service.List(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		h.HandleResponse(c, common.StatusOK, fiber.Map{"playlists": playlists}, nil)
		return nil
	})
}

// HandleAdd tạo playlist từ body {playlist: {title, description}}
func (h *PlaylistHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		var input librarydto.PlaylistInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		if input.Playlist == nil || strings.TrimSpace(input.Playlist.Title) == "" {
			h.HandleResponse(c, 0, nil, common.NewBadRequest(librarysvc.MsgPlaylistMissing))
			return nil
		}
		if err := h.ValidateInput(input.Playlist); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		playlists, err := h.service.Add(c.Context(), userID, librarysvc.PlaylistInput{
			Title:       input.Playlist.Title,
			Description: input.Playlist.Description,
		})
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		logger.LogAction(c, "playlists.add", input.Playlist.Title, nil)
		h.HandleResponse(c, common.StatusCreated, fiber.Map{"playlists": playlists}, nil)
		return nil
	})
}

// HandleGet trả về {playlist} theo :playlistId
func (h *PlaylistHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		playlistID, err := h.ParseIDParam(c, "playlistId", MsgInvalidPlaylistID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		playlist, err := h.service.Get(c.Context(), userID, playlistID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		h.HandleResponse(c, common.StatusOK, fiber.Map{"playlist": playlist}, nil)
		return nil
	})
}

// HandleRemove xóa playlist :playlistId
func (h *PlaylistHandler) HandleRemove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		playlistID, err := h.ParseIDParam(c, "playlistId", MsgInvalidPlaylistID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		playlists, err := h.service.Remove(c.Context(), userID, playlistID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		logger.LogAction(c, "playlists.remove", playlistID, nil)
		h.HandleResponse(c, common.StatusCreated, fiber.Map{"playlists": playlists}, nil)
		return nil
	})
}

// HandleAddVideo thêm video trong body {video} vào playlist :playlistId
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		playlistID, err := h.ParseIDParam(c, "playlistId", MsgInvalidPlaylistID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		var input librarydto.VideoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		if input.Video == nil || input.Video.ID == "" {
			h.HandleResponse(c, 0, nil, common.NewBadRequest(librarysvc.MsgPlaylistVideoMissing))
			return nil
		}
		if err := h.ValidateInput(input.Video); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		playlists, err := h.service.AddVideo(c.Context(), userID, playlistID, *input.Video)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		logger.LogAction(c, "playlists.videos.add", input.Video.ID, map[string]interface{}{"playlist_id": playlistID})
		h.HandleResponse(c, common.StatusCreated, fiber.Map{"playlists": playlists}, nil)
		return nil
	})
}

// HandleRemoveVideo xóa video :videoId khỏi playlist :playlistId
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		playlistID, err := h.ParseIDParam(c, "playlistId", MsgInvalidPlaylistID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		videoID, err := h.ParseIDParam(c, "videoId", MsgInvalidVideoID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		playlists, err := h.service.RemoveVideo(c.Context(), userID, playlistID, videoID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		logger.LogAction(c, "playlists.videos.remove", videoID, map[string]interface{}{"playlist_id": playlistID})
		h.HandleResponse(c, common.StatusCreated, fiber.Map{"playlists": playlists}, nil)
		return nil
	})
}
