package apiv1

import (
	"fmt"
	"time"

	"github.com/dukeika/interview-portal-sub001/controllers"
	"github.com/dukeika/interview-portal-sub001/lib/application"
	xlsexport "github.com/dukeika/interview-portal-sub001/lib/export/xls"
	"github.com/dukeika/interview-portal-sub001/middleware"
	"github.com/dukeika/interview-portal-sub001/models"
	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	applicationapimodels "github.com/dukeika/interview-portal-sub001/models/api/application"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("progress", controller.progress)
			idRouter.Put("reject", controller.reject)
			idRouter.Put("hire", controller.hire)
			idRouter.Put("notes", controller.notes)
			idRouter.Put("interview", controller.scheduleInterview)
		})
	})
}

// @Summary List applications
// @Tags Application
// @Description List applications across company jobs
// @Param   Authorization header string true "Authorization token"
// @Param request body applicationapimodels.ApplicationFilter true "filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.AdminView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/application/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	filter := applicationapimodels.ApplicationFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, count, err := application.Instance.List(companyID, filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}

// @Summary Export applications
// @Tags Application
// @Description Download the filtered application list as an xlsx file
// @Param   Authorization header string true "Authorization token"
// @Param request body applicationapimodels.ApplicationFilter true "filter"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/application/export [post]
func (c *applicationApiController) export(ctx *fiber.Ctx) error {
	filter := applicationapimodels.ApplicationFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, err := application.Instance.ListForExport(companyID, filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("applications_%v.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Get application
// @Tags Application
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.AdminView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	view, err := application.Instance.Get(companyID, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Progress application
// @Tags Application
// @Description Move the application to the next pipeline stage
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Param request body applicationapimodels.ProgressRequest true "current stage as seen by the client"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.AdminView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/application/{id}/progress [put]
func (c *applicationApiController) progress(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := applicationapimodels.ProgressRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	err = application.Instance.ProgressToNextStage(companyID, id, models.ApplicationStage(data.CurrentStage))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.Get(companyID, id)
	if err != nil {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Reject application
// @Tags Application
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Param request body applicationapimodels.DecisionRequest true "candidate-visible feedback"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/application/{id}/reject [put]
func (c *applicationApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := applicationapimodels.DecisionRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := application.Instance.Reject(companyID, id, data.Feedback); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Hire candidate
// @Tags Application
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/application/{id}/hire [put]
func (c *applicationApiController) hire(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := application.Instance.Hire(companyID, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Save internal notes
// @Tags Application
// @Description Notes are visible to the hiring team only, never to the candidate
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Param request body applicationapimodels.NotesRequest true "notes"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/company/application/{id}/notes [put]
func (c *applicationApiController) notes(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := applicationapimodels.NotesRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := application.Instance.SaveNotes(companyID, id, data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Schedule interview
// @Tags Application
// @Description Notify the candidate about the scheduled interview slot
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Param request body applicationapimodels.InterviewScheduleRequest true "interview slot"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/application/{id}/interview [put]
func (c *applicationApiController) scheduleInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := applicationapimodels.InterviewScheduleRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := application.Instance.ScheduleInterview(companyID, id, data.ScheduledAt, data.Location); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
