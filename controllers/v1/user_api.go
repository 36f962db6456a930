package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"proposal-approval-backend/controllers"
	usershandler "proposal-approval-backend/lib/users"
	"proposal-approval-backend/middleware"
	apimodels "proposal-approval-backend/models/api"
	authapimodels "proposal-approval-backend/models/api/auth"
	userapimodels "proposal-approval-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("user", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", controller.me)
		router.Get("all", controller.list)
		router.Put("change-password", controller.changePassword)
		router.Use(middleware.DirectorRequired())
		router.Post("create", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Current user profile
// @Tags Users
// @Description Current user profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/me [get]
func (c *userApiController) me(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	user, err := usershandler.Instance.GetByID(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi lấy thông tin người dùng")
	}
	if user == nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary List users
// @Tags Users
// @Description List users
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/all [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.ListUsers()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi lấy danh sách người dùng")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Change own password
// @Tags Users
// @Description Change own password
// @Param   Authorization		header		string								true	"Authorization token"
// @Param	body				body		authapimodels.ChangePasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/change-password [put]
func (c *userApiController) changePassword(ctx *fiber.Ctx) error {
	var payload authapimodels.ChangePasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	hMsg, err := usershandler.Instance.ChangePassword(userID, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi đổi mật khẩu")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Create user
// @Tags Users
// @Description Create user
// @Param   Authorization		header		string							true	"Authorization token"
// @Param	body				body		userapimodels.CreateUserData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/create [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.CreateUserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	hMsg, err := usershandler.Instance.CreateUser(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi tạo tài khoản")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update user
// @Tags Users
// @Description Update user
// @Param   Authorization		header		string							true	"Authorization token"
// @Param	body				body		userapimodels.UpdateUserData	true	"request body"
// @Param   id          		path    	string  				    	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload userapimodels.UpdateUserData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	hMsg, err := usershandler.Instance.UpdateUser(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi cập nhật tài khoản")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete user
// @Tags Users
// @Description Delete user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string 	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/{id} [delete]
func (c *userApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = usershandler.Instance.DeleteUser(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Lỗi khi xoá tài khoản")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
