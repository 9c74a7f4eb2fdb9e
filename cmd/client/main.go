package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dzrekey001/user-auth-service/internal/adapter"
	"github.com/Dzrekey001/user-auth-service/internal/config"
	"github.com/Dzrekey001/user-auth-service/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	email       = "bob@example.com"
	password    = "my first password"
	newPassword = "my new password"
)

// main drives the full account lifecycle against a running server: register,
// duplicate-register rejection, failed and successful logins, session-bound
// profile access, logout, password reset, and login with the new password.
// Any deviation from the expected responses aborts the run.
func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(
		cfg.Adapter.ServerAddress,
		cfg.App.SessionCookieName,
		cfg.Adapter.RequestTimeout,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()

	welcome, err := serverAdapter.Welcome(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("welcome")
	}
	if welcome.Message != "Bienvenue" {
		log.Fatal().Str("message", welcome.Message).Msg("unexpected greeting")
	}

	user, err := serverAdapter.Register(ctx, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("register user")
	}
	if user.Email != email || user.Message != "user created" {
		log.Fatal().Any("payload", user).Msg("unexpected register payload")
	}

	if _, err = serverAdapter.Register(ctx, email, password); !errors.Is(err, adapter.ErrBadRequest) {
		log.Fatal().Err(err).Msg("duplicate register must be rejected")
	}

	if _, err = serverAdapter.Login(ctx, email, "wrong password"); !errors.Is(err, adapter.ErrUnauthorized) {
		log.Fatal().Err(err).Msg("wrong password must be unauthorized")
	}

	if _, err = serverAdapter.Profile(ctx); !errors.Is(err, adapter.ErrForbidden) {
		log.Fatal().Err(err).Msg("profile without a session must be forbidden")
	}

	user, err = serverAdapter.Login(ctx, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("log in")
	}
	if user.Message != "logged in" || serverAdapter.SessionID() == "" {
		log.Fatal().Any("payload", user).Msg("unexpected login payload")
	}

	profile, err := serverAdapter.Profile(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("profile")
	}
	if profile.Email != email {
		log.Fatal().Str("email", profile.Email).Msg("unexpected profile payload")
	}

	welcome, err = serverAdapter.Logout(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("log out")
	}
	if welcome.Message != "Bienvenue" {
		log.Fatal().Str("message", welcome.Message).Msg("unexpected logout payload")
	}

	if _, err = serverAdapter.Profile(ctx); !errors.Is(err, adapter.ErrForbidden) {
		log.Fatal().Err(err).Msg("profile after logout must be forbidden")
	}

	reset, err := serverAdapter.RequestResetToken(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("request reset token")
	}
	if reset.Email != email || reset.ResetToken == "" {
		log.Fatal().Any("payload", reset).Msg("unexpected reset token payload")
	}

	user, err = serverAdapter.UpdatePassword(ctx, email, reset.ResetToken, newPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("update password")
	}
	if user.Message != "Password updated" {
		log.Fatal().Any("payload", user).Msg("unexpected update password payload")
	}

	if _, err = serverAdapter.Login(ctx, email, password); !errors.Is(err, adapter.ErrUnauthorized) {
		log.Fatal().Err(err).Msg("old password must stop working")
	}

	if _, err = serverAdapter.Login(ctx, email, newPassword); err != nil {
		log.Fatal().Err(err).Msg("log in with new password")
	}

	log.Info().Msg("all scenario steps passed")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
