package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"proposal-approval-backend/controllers"
	departmentprovider "proposal-approval-backend/lib/dicts/department"
	"proposal-approval-backend/middleware"
	apimodels "proposal-approval-backend/models/api"
)

type dictApiController struct {
	controllers.BaseAPIController
}

func InitDictApiRouters(app *fiber.App) {
	controller := dictApiController{}
	app.Route("dict", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("department", controller.departments)
	})
}

// @Summary List departments
// @Tags Dictionaries
// @Description List departments
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DepartmentView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/department [get]
func (c *dictApiController) departments(ctx *fiber.Ctx) error {
	list, err := departmentprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi lấy danh sách phòng ban")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
