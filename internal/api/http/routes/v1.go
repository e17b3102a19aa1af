package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/api/http/middleware"
	sduhttp "github.com/sducloud/sduclouddb/internal/sduclouddb/http"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/service"
)

type V1Deps struct {
	Services       *service.Services
	Logger         *zap.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	sduhttp.RegisterAll(api, dep.Services, dep.Logger)
}
