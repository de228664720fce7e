package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/plmkit/notifier/internal/api/handlers/delivery"
)

func New(handler *delivery.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/notify")

	api.POST("/", handler.Send)
	api.POST("/broadcast", handler.Broadcast)
	api.GET("/status/:id", handler.GetStatus)
	api.GET("/alerts/:alertID", handler.ListByAlert)
	api.GET("/inbox/:userID", handler.Inbox)
	api.PUT("/inbox/:id/read", handler.MarkRead)

	return e
}
