package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	attachmentgate "proposal-approval-backend/lib/attachment-gate"
	"proposal-approval-backend/lib/workflow"
	apimodels "proposal-approval-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("không thể đọc dữ liệu từ yêu cầu")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps domain errors onto HTTP statuses: workflow refusals are
// client errors, a lost status race is a conflict, everything else is a 500
// with hMsg as the response body.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	var wfErr *workflow.Error
	if errors.As(err, &wfErr) {
		if wfErr.Code == workflow.CodeConcurrentModification {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(wfErr.Message))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(wfErr.Message))
	}
	var gateErr *attachmentgate.Error
	if errors.As(err, &gateErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(gateErr.Message))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("không tìm thấy tham số (%v)", key)
	}
	return id, nil
}
