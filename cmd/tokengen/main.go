package main

import (
	"fmt"
	"os"

	"sos-escalation-backend/internal/auth"
	"sos-escalation-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// tokengen mints bearer tokens for operators and device gateways calling /api/v1.
func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "tokengen",
		Usage: "issue a bearer token signed with JWT_SECRET",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true, Usage: "subject of the token"},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "email claim"},
			&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Value: "operator", Usage: "role claim; admin may manage members"},
			&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, defaults to JWT_TTL"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if !cfg.AuthEnabled() {
				logrus.Warn("JWT_SECRET is not set; the server does not check tokens")
			}

			ttl := cfg.JWTTTL
			if c.IsSet("ttl") {
				ttl = c.Duration("ttl")
			}

			authService, err := auth.NewAuthService(cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}
			token, err := authService.GenerateJWT(c.String("username"), c.String("email"), c.String("role"))
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
