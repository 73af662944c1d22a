package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"provnet/adapters/export"
	"provnet/adapters/postgres"
	"provnet/adapters/synthetic"
	"provnet/app"
	"provnet/domain/quadrant"
	"provnet/internal"
	"provnet/internal/analysis"
	"provnet/internal/config"
	"provnet/ports"
	"provnet/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	// Configure the roster source
	var source ports.ProviderSource
	if appConfig.Database.URL != "" {
		log.Printf("Using Postgres roster source")
		db, err := postgres.Connect(appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to roster database: %v", err)
		}
		defer db.Close()
		source = postgres.NewProviderSource(db)
	} else {
		log.Printf("No roster database configured, using synthetic roster")
		source = synthetic.NewProviderSource(appConfig.Roster.Size, appConfig.Roster.Seed)
	}

	thresholds := quadrant.Thresholds{
		Quality: appConfig.Analysis.QualityThreshold,
		Cost:    appConfig.Analysis.CostThreshold,
	}

	adequacyCfg := analysis.DefaultAdequacyConfig()
	adequacyCfg.Cutoffs.Safe = appConfig.Analysis.SafeCutoff
	adequacyCfg.Cutoffs.Warning = appConfig.Analysis.WarningCutoff

	scenarioCfg := analysis.DefaultScenarioConfig()
	scenarioCfg.Adequacy = adequacyCfg
	scenarioCfg.CostModel.PerProviderAdditionCost = appConfig.Analysis.AdditionCost
	scenarioCfg.CostModel.PerQualityPointValue = appConfig.Analysis.QualityValue

	service, err := app.NewAnalysisService(source, thresholds, adequacyCfg, scenarioCfg, internal.DefaultLogger)
	if err != nil {
		log.Fatalf("Failed to create analysis service: %v", err)
	}

	// Run once at startup so the dashboard has data immediately.
	if _, err := service.Run(context.Background()); err != nil {
		log.Fatalf("Initial analysis run failed: %v", err)
	}

	ops := ui.NewOpsServer(service)
	go func() {
		if err := ops.Start(":" + appConfig.Server.OpsPort); err != nil {
			log.Printf("Operations sidecar stopped: %v", err)
		}
	}()

	server := ui.NewServer(service, export.NewExcelExporter(), appConfig.Export.Dir)
	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
