package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/dukeika/interview-portal-sub001/config"
	apiv1 "github.com/dukeika/interview-portal-sub001/controllers/v1"
	"github.com/dukeika/interview-portal-sub001/fiberlog"
	"github.com/dukeika/interview-portal-sub001/initializers"
	"github.com/dukeika/interview-portal-sub001/lib/ws"
	"github.com/dukeika/interview-portal-sub001/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("requestid", uuid.NewString())
		return ctx.Next()
	})
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//super admin panel
	adminPanel := fiber.New()
	apiV1.Mount("/admin_panel", adminPanel)
	adminPanel.Use(middleware.AuthorizationRequired())
	adminPanel.Use(middleware.SuperAdminRequired())
	apiv1.InitAdminPanelApiRouters(adminPanel)

	//company admins
	companyApp := fiber.New()
	apiV1.Mount("/company", companyApp)
	companyApp.Use(middleware.AuthorizationRequired())
	companyApp.Use(middleware.CompanyAdminRequired())
	apiv1.InitJobApiRouters(companyApp)
	apiv1.InitApplicationApiRouters(companyApp)

	//candidates
	candidateApp := fiber.New()
	apiV1.Mount("/candidate", candidateApp)
	candidateApp.Use(middleware.AuthorizationRequired())
	candidateApp.Use(middleware.CandidateRequired())
	apiv1.InitCandidateApiRouters(candidateApp)
	apiv1.InitNotificationApiRouters(candidateApp)

	//websocket pushes
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	wsApp.Use(middleware.CandidateRequired())
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
