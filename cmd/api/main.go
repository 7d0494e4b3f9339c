package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	"github.com/BruksfildServices01/table-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/table-booking/internal/db"
	"github.com/BruksfildServices01/table-booking/internal/lock"
	"github.com/BruksfildServices01/table-booking/internal/mq"
	"github.com/BruksfildServices01/table-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var locker lock.Locker = lock.NewLocal()
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rl, err := lock.NewRedisFromURL(ctx, cfg.RedisURL, 30*time.Second)
		cancel()
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer rl.Close()
		locker = rl
	}

	var publisher audit.Publisher
	if cfg.AMQPURL != "" {
		pub, err := mq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("failed to connect rabbitmq: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	dispatcher := audit.NewDispatcher(audit.New(db), publisher)
	defer dispatcher.Close()

	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Locker: locker,
		Audit:  dispatcher,
	})

	log.Printf("Server running on %s (reservation duration %s)", cfg.Addr(), cfg.ReservationDuration)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
