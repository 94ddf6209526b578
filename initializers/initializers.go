package initializers

import (
	"context"

	"github.com/dukeika/interview-portal-sub001/config"
	"github.com/dukeika/interview-portal-sub001/fiberlog"
	"github.com/dukeika/interview-portal-sub001/lib/application"
	"github.com/dukeika/interview-portal-sub001/lib/auth"
	"github.com/dukeika/interview-portal-sub001/lib/candidate"
	"github.com/dukeika/interview-portal-sub001/lib/company"
	xlsexport "github.com/dukeika/interview-portal-sub001/lib/export/xls"
	"github.com/dukeika/interview-portal-sub001/lib/job"
	"github.com/dukeika/interview-portal-sub001/lib/notification"
	connectionhub "github.com/dukeika/interview-portal-sub001/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires the service singletons. The notification handler has
// to come up before the handlers that dispatch through it.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	connectionhub.Init()
	notification.NewHandler()
	auth.NewHandler()
	candidate.NewHandler()
	company.NewHandler()
	job.NewHandler()
	application.NewHandler()
	xlsexport.NewHandler()
}
