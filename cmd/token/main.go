package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"careerday/config"
	"careerday/infras/jwt"
	"careerday/shared/constant"
	"careerday/shared/identity"
	"careerday/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var roles = []string{constant.RoleAttendee, constant.RoleCompany, constant.RoleOrganizer}

func main() {
	logger.InitLogger()

	app := &cli.App{
		Name:  "token",
		Usage: "mint access tokens for attendees, company operators and organizers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "role", Value: constant.RoleAttendee, Usage: "attendee, company or organizer"},
			&cli.StringFlag{Name: "email", Usage: "attendee or operator email"},
			&cli.StringFlag{Name: "subject", Usage: "token subject, defaults to the normalized email"},
			&cli.StringFlag{Name: "company", Usage: "company id a company operator acts for"},
		},
		Action: mint,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Failed to mint token")
	}
}

func mint(c *cli.Context) error {
	cfg := config.Get()

	logger.SetLogLevel(cfg)

	role := c.String("role")
	if !slices.Contains(roles, role) {
		return fmt.Errorf("unknown role %q", role)
	}

	email := c.String("email")
	subject := c.String("subject")

	if email != constant.Empty {
		attendee, err := identity.NormalizeAttendee(email)
		if err != nil {
			return fmt.Errorf("invalid email: %w", err)
		}

		email = attendee.String()
	}

	if subject == constant.Empty {
		subject = email
	}

	if subject == constant.Empty {
		return errors.New("either --email or --subject is required")
	}

	if role == constant.RoleCompany && c.String("company") == constant.Empty {
		return errors.New("--company is required for company operators")
	}

	token, err := jwt.New(cfg).GenerateToken(subject, email, role, c.String("company"))
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(token)
}
