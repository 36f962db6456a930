package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"proposal-approval-backend/controllers"
	proposalhandler "proposal-approval-backend/lib/proposal"
	"proposal-approval-backend/middleware"
	apimodels "proposal-approval-backend/models/api"
	proposalapimodels "proposal-approval-backend/models/api/proposal"
)

type proposalApiController struct {
	controllers.BaseAPIController
}

func InitProposalApiRouters(app *fiber.App) {
	controller := proposalApiController{}
	app.Route("proposal", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("all", controller.list)
		router.Post("create", controller.create)
		router.Post("process-request", controller.process)
		router.Get(":id", controller.getByID)
		router.Post(":id/resubmit", controller.resubmit)
	})
}

// @Summary List proposals
// @Tags Proposals
// @Description List proposals
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]proposalapimodels.ProposalView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/proposal/all [get]
func (c *proposalApiController) list(ctx *fiber.Ctx) error {
	list, err := proposalhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi lấy danh sách đề xuất")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Proposal details
// @Tags Proposals
// @Description Proposal details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string 	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=proposalapimodels.ProposalView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/proposal/{id} [get]
func (c *proposalApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := proposalhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi lấy thông tin đề xuất")
	}
	if view == nil {
		return ctx.SendStatus(fiber.StatusNotFound)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit a budget proposal
// @Tags Proposals
// @Description Submit a budget proposal
// @Param   Authorization		header		string									true	"Authorization token"
// @Param	body				body		proposalapimodels.CreateProposalData	true	"request body"
// @Success 200 {object} apimodels.Response{data=proposalapimodels.ProposalView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/proposal/create [post]
func (c *proposalApiController) create(ctx *fiber.Ctx) error {
	var payload proposalapimodels.CreateProposalData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	proposerID := middleware.GetUserID(ctx)
	id, hMsg, err := proposalhandler.Instance.Create(proposerID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi tạo đề xuất")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	view, err := proposalhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi tạo đề xuất")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Approve or reject a proposal
// @Tags Proposals
// @Description Approve or reject a proposal at its current review tier
// @Param   Authorization		header		string								true	"Authorization token"
// @Param	body				body		proposalapimodels.ProcessRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=proposalapimodels.ProposalView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/proposal/process-request [post]
func (c *proposalApiController) process(ctx *fiber.Ctx) error {
	var payload proposalapimodels.ProcessRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	actorID := middleware.GetUserID(ctx)
	view, hMsg, err := proposalhandler.Instance.Process(ctx.UserContext(), actorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi xử lý đề xuất")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Resubmit a rejected proposal
// @Tags Proposals
// @Description Resubmit a rejected proposal, restarting the review chain
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string 	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/proposal/{id}/resubmit [post]
func (c *proposalApiController) resubmit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	actorID := middleware.GetUserID(ctx)
	hMsg, err := proposalhandler.Instance.Resubmit(ctx.UserContext(), id, actorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi gửi lại đề xuất")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
