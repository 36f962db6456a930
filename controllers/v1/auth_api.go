package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"proposal-approval-backend/controllers"
	authhandler "proposal-approval-backend/lib/auth"
	apimodels "proposal-approval-backend/models/api"
	authapimodels "proposal-approval-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("guest", controller.guestLogin)
	})
}

// @Summary User authentication
// @Tags Authentication
// @Description User authentication
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary View-only guest access
// @Tags Authentication
// @Description View-only guest access
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/guest [post]
func (c *authApiController) guestLogin(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.GuestLogin()
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
