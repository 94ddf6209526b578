package ws

import (
	wsclient "github.com/dukeika/interview-portal-sub001/lib/ws/client"
	connectionhub "github.com/dukeika/interview-portal-sub001/lib/ws/hub/connection-hub"
	"github.com/dukeika/interview-portal-sub001/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		candidateID := middleware.GetUserID(ctx)
		ctx.Locals("candidateID", candidateID)
		return ctx.Next()
	})
	app.Get("/", websocket.New(notificationHandler))
}

// @Summary Notification pushes
// @Tags Websocket
// @Description Real-time candidate notification stream
// @Param   Authorization header string true "Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func notificationHandler(c *websocket.Conn) {
	candidateID := c.Locals("candidateID").(string)
	client := wsclient.NewClient(candidateID, c)
	connectionhub.Instance.AddClient(candidateID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(candidateID)
	}()
	client.Dispatch()
}
