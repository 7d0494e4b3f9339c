package main

import (
	"context"
	"flag"
	"log"

	"github.com/BruksfildServices01/table-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/table-booking/internal/db"
	"github.com/BruksfildServices01/table-booking/internal/seed"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate every table before seeding")
	flag.Parse()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if *reset {
		if err := seed.Reset(db); err != nil {
			log.Fatalf("failed to reset database: %v", err)
		}
		log.Println("database has been reset")
	}

	res, err := seed.Apply(context.Background(), db, seed.Sample())
	if err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	log.Printf("seeded %d users and %d restaurants", len(res.UserIDs), len(res.RestaurantIDs))
}
