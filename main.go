package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vcscsvcscs/carecompanion-go/internal/config"
	"github.com/vcscsvcscs/carecompanion-go/internal/logger"
	"github.com/vcscsvcscs/carecompanion-go/pkg/api"
	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
	"github.com/vcscsvcscs/carecompanion-go/pkg/view"
)

// Smoke CLI: logs in against a running CareCompanion backend, exercises the
// main bindings, and prints normalized output. Credentials come from
// CARECOMPANION_PHONE and CARECOMPANION_PASSWORD.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	phone := os.Getenv("CARECOMPANION_PHONE")
	password := os.Getenv("CARECOMPANION_PASSWORD")
	if phone == "" || password == "" {
		log.Fatal("Missing credentials. Set CARECOMPANION_PHONE and CARECOMPANION_PASSWORD")
	}

	session := api.NewSession()
	client, err := api.New(cfg.API.BaseURL, session, log)
	if err != nil {
		log.Fatal("Failed to create API client", zap.Error(err))
	}
	client.SetTimeout(cfg.API.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Info("=== Login ===")
	if _, err := client.Login(ctx, phone, password); err != nil {
		log.Fatal("Login failed", zap.Error(err))
	}
	log.Info("Authenticated", zap.Bool("session", session.Authenticated()))

	log.Info("=== Profile ===")
	user, err := client.Me(ctx)
	if err != nil {
		log.Fatal("Failed to fetch profile", zap.Error(err))
	}
	profile := view.NormalizeUser(user)
	fmt.Printf("Hello %s (member since %s)\n", profile.Name, profile.MemberSince)

	log.Info("=== Latest vitals ===")
	latest, err := client.LatestVital(ctx)
	if err != nil {
		log.Warn("No vitals available", zap.Error(err))
	} else {
		for _, row := range view.VitalRows(latest) {
			fmt.Printf("%-14s %s\n", row.Label, row.Display())
		}
	}

	log.Info("=== Medications ===")
	medications, err := client.ListMedications(ctx)
	if err != nil {
		log.Warn("Failed to fetch medications", zap.Error(err))
	} else if len(medications) == 0 {
		fmt.Println("No medications scheduled")
	} else {
		for _, m := range medications {
			fmt.Printf("%s — %s, %s\n", m.Name, m.Dosage, m.Frequency)
		}
	}

	log.Info("=== Risk prediction ===")
	score, err := client.PredictRisk(ctx, model.RiskTypeFall)
	if err != nil {
		log.Warn("Risk prediction failed", zap.Error(err))
	} else {
		risk := view.NormalizeRisk(*score)
		fmt.Printf("Fall risk: %s (%d%%)\n", risk.Level, risk.Percent)
	}

	log.Info("=== Done ===")
}
