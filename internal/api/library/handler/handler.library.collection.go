package libraryhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/handler"
	librarydto "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/dto"
	librarysvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/service"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// MsgInvalidVideoID là message khi :videoId không phải ObjectID hợp lệ
const MsgInvalidVideoID = "Invalid video id provided. Bad request error."

// CollectionHandler xử lý các route /user/likes, /user/watchlater, /user/history
type CollectionHandler struct {
	basehdl.BaseHandler
	service *librarysvc.CollectionService
}

// NewCollectionHandler tạo handler cho một bộ sưu tập của user
func NewCollectionHandler(store librarysvc.UserStore, field string) (*CollectionHandler, error) {
	service, err := librarysvc.NewCollectionService(store, field)
	if err != nil {
		return nil, err
	}
	return &CollectionHandler{service: service}, nil
}

// respond trả body {<field>: items}
func (h *CollectionHandler) respond(c fiber.Ctx, status int, items interface{}) {
	h.HandleResponse(c, status, fiber.Map{h.service.Field(): items}, nil)
}

// HandleList trả về toàn bộ bộ sưu tập của user hiện tại
func (h *CollectionHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		items, err := h.service.List(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		h.respond(c, common.StatusOK, items)
		return nil
	})
}

// HandleAdd thêm video trong body {video} vào bộ sưu tập
func (h *CollectionHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
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
			h.HandleResponse(c, 0, nil, common.NewBadRequest(h.service.MsgMissingVideo()))
			return nil
		}
		if err := h.ValidateInput(input.Video); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		items, err := h.service.Add(c.Context(), userID, *input.Video)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		logger.LogAction(c, h.service.Field()+".add", input.Video.ID, nil)
		h.respond(c, common.StatusCreated, items)
		return nil
	})
}

// HandleRemove xóa video :videoId khỏi bộ sưu tập
func (h *CollectionHandler) HandleRemove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		videoID, err := h.ParseIDParam(c, "videoId", MsgInvalidVideoID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		items, err := h.service.Remove(c.Context(), userID, videoID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		logger.LogAction(c, h.service.Field()+".remove", videoID, nil)
		h.respond(c, common.StatusCreated, items)
		return nil
	})
}

// HandleClear xóa toàn bộ bộ sưu tập (chỉ đăng ký cho history)
func (h *CollectionHandler) HandleClear(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		items, err := h.service.Clear(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		logger.LogAction(c, h.service.Field()+".clear", userID, nil)
		h.respond(c, common.StatusOK, items)
		return nil
	})
}
