package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"proposal-approval-backend/controllers"
	attachmenthandler "proposal-approval-backend/lib/attachment"
	"proposal-approval-backend/middleware"
	apimodels "proposal-approval-backend/models/api"
)

type attachmentApiController struct {
	controllers.BaseAPIController
}

func InitAttachmentApiRouters(app *fiber.App) {
	controller := attachmentApiController{}
	app.Route("attachment", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("upload/:proposalId", controller.upload)
		router.Get("attachments/:proposalId", controller.list)
		router.Get("download/:id", controller.download)
	})
}

// @Summary Upload proposal attachments
// @Tags Attachments
// @Description Upload proposal attachments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   proposalId    		path    	string 	true    "proposal ID"
// @Param   files				formData	file 	true 	"files"
// @Success 200 {object} apimodels.Response{data=attachmentapimodels.UploadResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attachment/upload/{proposalId} [post]
func (c *attachmentApiController) upload(ctx *fiber.Ctx) error {
	proposalID, err := c.GetIDByKey(ctx, "proposalId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("không tìm thấy file đính kèm"))
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("không tìm thấy file đính kèm"))
	}

	files := make([]attachmenthandler.FileData, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		buffer, err := fh.Open()
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi đọc file đính kèm")
		}
		body, err := io.ReadAll(buffer)
		buffer.Close()
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi đọc file đính kèm")
		}
		files = append(files, attachmenthandler.FileData{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Body:        body,
		})
	}

	uploaderID := middleware.GetUserID(ctx)
	result, hMsg, err := attachmenthandler.Instance.Upload(ctx.UserContext(), proposalID, uploaderID, files)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi tải file đính kèm lên")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	// the dashboard reads this payload unwrapped
	return ctx.Status(fiber.StatusOK).JSON(result)
}

// @Summary List proposal attachments
// @Tags Attachments
// @Description List proposal attachments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   proposalId    		path    	string 	true    "proposal ID"
// @Success 200 {object} apimodels.Response{data=[]attachmentapimodels.AttachmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attachment/attachments/{proposalId} [get]
func (c *attachmentApiController) list(ctx *fiber.Ctx) error {
	proposalID, err := c.GetIDByKey(ctx, "proposalId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := attachmenthandler.Instance.ListByProposal(proposalID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi lấy danh sách file đính kèm")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download an attachment
// @Tags Attachments
// @Description Download an attachment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string 	true    "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attachment/download/{id} [get]
func (c *attachmentApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	rec, body, err := attachmenthandler.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi tải file đính kèm")
	}
	if rec == nil {
		return ctx.SendStatus(fiber.StatusNotFound)
	}
	if rec.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, rec.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	return ctx.Send(body)
}
