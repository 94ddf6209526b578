package apiv1

import (
	"github.com/dukeika/interview-portal-sub001/controllers"
	"github.com/dukeika/interview-portal-sub001/lib/company"
	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	companyapimodels "github.com/dukeika/interview-portal-sub001/models/api/company"

	"github.com/gofiber/fiber/v2"
)

type adminPanelApiController struct {
	controllers.BaseAPIController
}

func InitAdminPanelApiRouters(app *fiber.App) {
	controller := adminPanelApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("activate", controller.activate)
			idRouter.Put("deactivate", controller.deactivate)
			idRouter.Post("admin", controller.createAdmin)
			idRouter.Get("admin/list", controller.listAdmins)
		})
	})
	app.Route("admin/:id", func(router fiber.Router) {
		router.Put("activate", controller.activateAdmin)
		router.Put("deactivate", controller.deactivateAdmin)
	})
}

// @Summary Create company
// @Tags Admin panel
// @Param   Authorization header string true "Authorization token"
// @Param request body companyapimodels.CompanyData true "company data"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/company [post]
func (c *adminPanelApiController) create(ctx *fiber.Ctx) error {
	data := companyapimodels.CompanyData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := company.Instance.Create(data)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List companies
// @Tags Admin panel
// @Param   Authorization header string true "Authorization token"
// @Param request body apimodels.Pagination true "pagination"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]companyapimodels.CompanyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/company/list [post]
func (c *adminPanelApiController) list(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{}
	if err := c.BodyParser(ctx, &pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := company.Instance.List(pagination)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}

// @Summary Get company
// @Tags Admin panel
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "company ID"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/company/{id} [get]
func (c *adminPanelApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := company.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update company
// @Tags Admin panel
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "company ID"
// @Param request body companyapimodels.CompanyData true "company data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/company/{id} [put]
func (c *adminPanelApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := companyapimodels.CompanyData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := company.Instance.Update(id, data); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *adminPanelApiController) activate(ctx *fiber.Ctx) error {
	return c.setActive(ctx, true)
}

func (c *adminPanelApiController) deactivate(ctx *fiber.Ctx) error {
	return c.setActive(ctx, false)
}

func (c *adminPanelApiController) setActive(ctx *fiber.Ctx, active bool) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := company.Instance.SetActive(id, active); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Create company admin
// @Tags Admin panel
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "company ID"
// @Param request body companyapimodels.AdminData true "admin account data"
// @Success 200 {object} apimodels.Response{data=companyapimodels.AdminView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/company/{id}/admin [post]
func (c *adminPanelApiController) createAdmin(ctx *fiber.Ctx) error {
	companyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := companyapimodels.AdminData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := company.Instance.CreateAdmin(companyID, data)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List company admins
// @Tags Admin panel
// @Param   Authorization header string true "Authorization token"
// @Param   id path string true "company ID"
// @Success 200 {object} apimodels.Response{data=[]companyapimodels.AdminView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/company/{id}/admin/list [get]
func (c *adminPanelApiController) listAdmins(ctx *fiber.Ctx) error {
	companyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := company.Instance.ListAdmins(companyID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *adminPanelApiController) activateAdmin(ctx *fiber.Ctx) error {
	return c.setAdminActive(ctx, true)
}

func (c *adminPanelApiController) deactivateAdmin(ctx *fiber.Ctx) error {
	return c.setAdminActive(ctx, false)
}

func (c *adminPanelApiController) setAdminActive(ctx *fiber.Ctx, active bool) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := company.Instance.SetAdminActive(id, active); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
