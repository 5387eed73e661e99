package main

import (
	"context"
	"log"

	"github.com/jand6793/chat-website-backend/internal/server"
	"github.com/jand6793/chat-website-backend/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
