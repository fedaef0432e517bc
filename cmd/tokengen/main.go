// Command tokengen mints a bearer token for a chat platform user, for gateways
// and operators that call the API on that user's behalf.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/debtledger/pkg/auth"
)

type tokenConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"debtledger"`
}

func main() {
	_ = godotenv.Load()

	var cfg tokenConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("can't parse env")
	}

	userID := flag.Int64("u", 0, "chat platform user id")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	if *userID == 0 {
		log.Fatal().Msg("user id is required, pass -u")
	}

	token, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer).GenerateJWT(*userID, time.Now().Add(*ttl))
	if err != nil {
		log.Fatal().Err(err).Msg("can't sign token")
	}
	fmt.Println(token)
}
