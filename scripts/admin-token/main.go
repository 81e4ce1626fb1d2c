package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/kdpatel43/enrollment-server-go/pkg/config"
	"github.com/kdpatel43/enrollment-server-go/pkg/middleware"
)

func main() {
	subject := flag.String("subject", "registrar@local", "token subject")
	hours := flag.Int("hours", 24, "token lifetime in hours")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	token, err := middleware.GenerateToken(*subject, middleware.RoleRegistrar, cfg.JWTSecret, time.Duration(*hours)*time.Hour)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
