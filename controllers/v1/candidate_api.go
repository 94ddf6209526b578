package apiv1

import (
	"github.com/dukeika/interview-portal-sub001/controllers"
	"github.com/dukeika/interview-portal-sub001/lib/application"
	"github.com/dukeika/interview-portal-sub001/lib/candidate"
	"github.com/dukeika/interview-portal-sub001/lib/job"
	"github.com/dukeika/interview-portal-sub001/middleware"
	"github.com/dukeika/interview-portal-sub001/models"
	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	applicationapimodels "github.com/dukeika/interview-portal-sub001/models/api/application"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Get("profile", controller.profile)
	app.Route("job", func(router fiber.Router) {
		router.Post("list", controller.listJobs)
		router.Get(":id", controller.getJob)
	})
	app.Route("application", func(router fiber.Router) {
		router.Post("", controller.apply)
		router.Post("list", controller.list)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("complete-test", controller.completeTest)
		})
	})
}

// @Summary Get own profile
// @Tags Candidate
// @Param   Authorization header string true "Authorization token"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/candidate/profile [get]
func (c *candidateApiController) profile(ctx *fiber.Ctx) error {
	view, err := candidate.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List open jobs
// @Tags Candidate
// @Description List published jobs that are still accepting applications
// @Param   Authorization header string true "Authorization token"
// @Param request body apimodels.Pagination true "pagination"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/job/list [post]
func (c *candidateApiController) listJobs(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{}
	if err := c.BodyParser(ctx, &pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := job.Instance.ListPublished(pagination)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}

// @Summary Get published job
// @Tags Candidate
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "job ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/candidate/job/{id} [get]
func (c *candidateApiController) getJob(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := job.Instance.GetPublished(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Apply for a job
// @Tags Candidate
// @Param   Authorization header string true "Authorization token"
// @Param request body applicationapimodels.ApplyRequest true "job to apply for"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/application [post]
func (c *candidateApiController) apply(ctx *fiber.Ctx) error {
	data := applicationapimodels.ApplyRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.Apply(middleware.GetUserID(ctx), data)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List own applications
// @Tags Candidate
// @Param   Authorization header string true "Authorization token"
// @Param request body applicationapimodels.ApplicationFilter true "filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/application/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	filter := applicationapimodels.ApplicationFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := application.Instance.ListForCandidate(middleware.GetUserID(ctx), filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}

// @Summary Get own application
// @Tags Candidate
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/candidate/application/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.GetForCandidate(middleware.GetUserID(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Complete a test stage
// @Tags Candidate
// @Description Mark the pending written or video test as completed
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "application ID"
// @Param request body applicationapimodels.TestCompleteRequest true "stage to complete"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/application/{id}/complete-test [put]
func (c *candidateApiController) completeTest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := applicationapimodels.TestCompleteRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = application.Instance.CompleteStage(middleware.GetUserID(ctx), id, models.ApplicationStage(data.Stage))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
