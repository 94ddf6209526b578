package apiv1

import (
	"github.com/dukeika/interview-portal-sub001/controllers"
	"github.com/dukeika/interview-portal-sub001/lib/auth"
	"github.com/dukeika/interview-portal-sub001/lib/candidate"
	"github.com/dukeika/interview-portal-sub001/middleware"
	apimodels "github.com/dukeika/interview-portal-sub001/models/api"
	authapimodels "github.com/dukeika/interview-portal-sub001/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh", controller.refresh)
		router.Get("me", middleware.AuthorizationRequired(), controller.me)
		router.Route("candidate", func(candidateRouter fiber.Router) {
			candidateRouter.Post("login", controller.candidateLogin)
			candidateRouter.Post("register", controller.register)
		})
	})
}

// @Summary Admin login
// @Tags Auth
// @Description Authenticate a super admin or company admin
// @Param request body authapimodels.LoginRequest true "credentials"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	data := authapimodels.LoginRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, err := auth.Instance.Login(data)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}

// @Summary Candidate login
// @Tags Auth
// @Description Authenticate a candidate
// @Param request body authapimodels.LoginRequest true "credentials"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/candidate/login [post]
func (c *authApiController) candidateLogin(ctx *fiber.Ctx) error {
	data := authapimodels.LoginRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, err := auth.Instance.CandidateLogin(data)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}

// @Summary Candidate registration
// @Tags Auth
// @Description Create a candidate account
// @Param request body authapimodels.RegisterRequest true "account data"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/candidate/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	data := authapimodels.RegisterRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidate.Instance.Register(data)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Current identity
// @Tags Auth
// @Description Return the identity carried by the access token
// @Param   Authorization header string true "Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
		"id":         middleware.GetUserID(ctx),
		"company_id": middleware.GetUserCompany(ctx),
		"role":       middleware.GetUserRole(ctx),
	}))
}

// @Summary Refresh tokens
// @Tags Auth
// @Description Exchange a refresh token for a new token pair
// @Param request body authapimodels.RefreshRequest true "refresh token"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	data := authapimodels.RefreshRequest{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, err := auth.Instance.Refresh(data)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}
