// api/router.go
package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter собирает gin.Engine со всеми маршрутами каталога
func NewRouter(svc *Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(svc), RequestLogger(svc.Logger))

	r.GET("/healthz", HealthHandler())

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/meta", MetaHandler(svc))

		apiGroup.GET("/additives", ListAdditivesHandler(svc))
		apiGroup.GET("/additives/:code", GetAdditiveHandler(svc))

		apiGroup.GET("/categories", ListCategoriesHandler(svc))
		apiGroup.GET("/categories/:category/additives", CategoryAdditivesHandler(svc))

		apiGroup.GET("/nova", ListNovaHandler(svc))
		apiGroup.GET("/nova/:group", GetNovaHandler(svc))

		apiGroup.GET("/nutriscore", ListNutriScoreHandler(svc))
		apiGroup.GET("/nutriscore/:score", GetNutriScoreHandler(svc))
	}

	return r
}

func RunServer(addr string, svc *Service) error {
	return NewRouter(svc).Run(addr)
}
