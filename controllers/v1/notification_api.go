package apiv1

import (
	"github.com/dukeika/interview-portal-sub001/controllers"
	"github.com/dukeika/interview-portal-sub001/lib/notification"
	"github.com/dukeika/interview-portal-sub001/middleware"
	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	notificationapimodels "github.com/dukeika/interview-portal-sub001/models/api/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Put("read-all", controller.markAllRead)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Notification feed
// @Tags Notification
// @Description List the candidate's notifications, newest first
// @Param   Authorization header string true "Authorization token"
// @Param request body notificationapimodels.NotificationFilter true "filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/notification/list [post]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	filter := notificationapimodels.NotificationFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := notification.Instance.ListForCandidate(middleware.GetUserID(ctx), filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}

// @Summary Mark notification read
// @Tags Notification
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "notification ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/candidate/notification/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notification.Instance.MarkRead(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark all notifications read
// @Tags Notification
// @Param   Authorization header string true "Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/notification/read-all [put]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	if err := notification.Instance.MarkAllRead(middleware.GetUserID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
