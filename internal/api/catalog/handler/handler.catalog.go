package cataloghdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/handler"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/models"
	catalogsvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/service"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
)

// ReadHandler là handler chỉ đọc dùng chung cho video và danh mục
type ReadHandler[T any] struct {
	basehdl.BaseHandler
	opts   ReadOptions
	reader catalogsvc.ReadService[T]
}

// ReadOptions cấu hình key JSON, tên tham số và message của từng resource
type ReadOptions struct {
	ListKey     string // Key của danh sách trong body, ví dụ "videos"
	ItemKey     string // Key của một phần tử, ví dụ "video"
	Param       string // Tên tham số route chứa id
	MsgInvalid  string // Message khi id sai định dạng
	MsgNotFound string // Message khi không tìm thấy
}

// NewReadHandler tạo handler đọc cho service bất kỳ
func NewReadHandler[T any](reader catalogsvc.ReadService[T], opts ReadOptions) *ReadHandler[T] {
	return &ReadHandler[T]{opts: opts, reader: reader}
}

// NewVideoHandler tạo handler cho /videos
func NewVideoHandler(reader catalogsvc.ReadService[models.Video]) *ReadHandler[models.Video] {
	return NewReadHandler(reader, ReadOptions{
		ListKey:     "videos",
		ItemKey:     "video",
		Param:       "videoId",
		MsgInvalid:  "Bad Request. Invalid video id provided.",
		MsgNotFound: "Cannot find video",
	})
}

// NewCategoryHandler tạo handler cho /categories
func NewCategoryHandler(reader catalogsvc.ReadService[models.Category]) *ReadHandler[models.Category] {
	return NewReadHandler(reader, ReadOptions{
		ListKey:     "categories",
		ItemKey:     "category",
		Param:       "categoryId",
		MsgInvalid:  "Invalid video category id provided. Bad Request error.",
		MsgNotFound: "Cannot find video category. Not Found error.",
	})
}

// HandleFindAll trả về toàn bộ resource
func (h *ReadHandler[T]) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		items, err := h.reader.FindAll(c.Context())
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		if items == nil {
			items = []T{}
		}
		h.HandleResponse(c, common.StatusOK, fiber.Map{h.opts.ListKey: items}, nil)
		return nil
	})
}

// HandleFindOneById kiểm tra định dạng id rồi trả về một resource
func (h *ReadHandler[T]) HandleFindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c, h.opts.Param, h.opts.MsgInvalid)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		item, err := h.reader.FindOneById(c.Context(), id)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				err = common.NewNotFound(h.opts.MsgNotFound)
			}
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		h.HandleResponse(c, common.StatusOK, fiber.Map{h.opts.ItemKey: item}, nil)
		return nil
	})
}
