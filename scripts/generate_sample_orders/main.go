package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"zigueroutine/internal/model"
	"zigueroutine/internal/ordercode"
	"zigueroutine/internal/repository"

	"github.com/rs/zerolog"
)

// Seeds a handful of order records into DATA_DIR (default data/orders) so
// the lookup endpoint has something to serve during local development.
func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data/orders"
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	repo := repository.NewOrderRepository(dataDir, logger)
	gen := ordercode.New()
	ctx := context.Background()

	samples := []model.Order{
		{
			CustomerName: "Maria Silva",
			Phone:        "+351 912 345 678",
			Items: []model.LineItem{
				{Brand: "Michelin", Name: "205/55 R16 91V", Price: 62, Qty: 2},
				{Brand: "Kumho", Name: "195/65 R15 91T", Price: 37, Qty: 1},
			},
			Total: 161,
		},
		{
			CustomerName: "João Ferreira",
			Phone:        "+351 934 567 890",
			Items: []model.LineItem{
				{Brand: "Bridgestone", Name: "225/40 R18 92Y", Price: 95, Qty: 4},
			},
			Total: 380,
		},
		{
			CustomerName: "Ana Costa",
			Phone:        "+351 968 123 456",
			Items: []model.LineItem{
				{Brand: "Goodyear", Name: "225/65 R16C 112T", Price: 119, Qty: 2},
			},
			Total: 238,
		},
	}

	codes, err := repo.ListCodes(ctx)
	if err != nil {
		log.Fatalf("Failed to list existing orders: %v", err)
	}
	taken := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		taken[c] = struct{}{}
	}

	for _, order := range samples {
		order.Code = gen.Unique(taken)
		order.CreatedAt = time.Now()
		if err := repo.Create(ctx, &order); err != nil {
			log.Fatalf("Failed to write sample order: %v", err)
		}
		taken[order.Code] = struct{}{}
		fmt.Printf("Created sample order %s (%s)\n", order.Code, order.CustomerName)
	}
}
