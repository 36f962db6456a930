package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"proposal-approval-backend/controllers"
	approvalhistoryhandler "proposal-approval-backend/lib/approval-history"
	"proposal-approval-backend/middleware"
	apimodels "proposal-approval-backend/models/api"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app *fiber.App) {
	controller := approvalApiController{}
	app.Route("approval", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("history/:proposalId", controller.history)
	})
}

// @Summary Proposal decision history
// @Tags Approvals
// @Description Proposal decision history, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   proposalId    		path    	string 	true    "proposal ID"
// @Success 200 {object} apimodels.Response{data=[]proposalapimodels.ApprovalRecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/history/{proposalId} [get]
func (c *approvalApiController) history(ctx *fiber.Ctx) error {
	proposalID, err := c.GetIDByKey(ctx, "proposalId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := approvalhistoryhandler.Instance.History(proposalID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi lấy lịch sử phê duyệt")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
