package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dispatchHTTP "inventory-srv/internal/dispatch/delivery/http"
	dispatchPostgre "inventory-srv/internal/dispatch/repository/postgre"
	dispatchUsecase "inventory-srv/internal/dispatch/usecase"
	"inventory-srv/internal/inventory"
	inventoryProducer "inventory-srv/internal/inventory/delivery/kafka/producer"
	"inventory-srv/internal/middleware"
	receptionHTTP "inventory-srv/internal/reception/delivery/http"
	receptionPostgre "inventory-srv/internal/reception/repository/postgre"
	receptionUsecase "inventory-srv/internal/reception/usecase"
	"inventory-srv/internal/user"
)

// setupInventoryDomains registers equipment receptions and deliveries. Both share one
// event producer.
func (srv HTTPServer) setupInventoryDomains(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, userUC user.UseCase) error {
	producer := inventory.NewNopProducer()
	if srv.kafkaProducer != nil {
		producer = inventoryProducer.New(srv.l, srv.kafkaProducer)
		srv.l.Infof(ctx, "Inventory events enabled (topic=%s)", srv.config.Kafka.Topic)
	}

	receptionRepo := receptionPostgre.New(srv.postgresDB, srv.l)
	receptionUC := receptionUsecase.New(srv.l, receptionRepo, producer)
	receptionHTTP.New(srv.l, receptionUC).RegisterRoutes(r, mw)
	srv.l.Infof(ctx, "Reception domain registered")

	dispatchRepo := dispatchPostgre.New(srv.postgresDB, srv.l)
	dispatchUC := dispatchUsecase.New(srv.l, dispatchRepo, userUC, producer)
	dispatchHTTP.New(srv.l, dispatchUC).RegisterRoutes(r, mw)
	srv.l.Infof(ctx, "Dispatch domain registered")

	return nil
}
