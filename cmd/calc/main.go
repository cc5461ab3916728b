package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agrotools/feedlot-calc/internal/config"
	"github.com/agrotools/feedlot-calc/internal/export"
	"github.com/agrotools/feedlot-calc/internal/logger"
	"github.com/agrotools/feedlot-calc/internal/model"
)

// calc is the headless companion of the TUI: it computes one scenario and
// writes the full report (JSON and CSV) without entering the terminal UI.
func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	scenarioPath := flag.String("scenario", "", "Scenario file to import (defaults apply to absent fields)")
	noExport := flag.Bool("no-export", false, "Print the summary without writing report files")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var appLogger *zap.Logger
	if cfg.LogFile == "" {
		appLogger, err = logger.CreatePrettyLogger(cfg.DebugLogging)
	} else {
		logCfg := logger.DefaultConfig()
		logCfg.LogFile = cfg.LogFile
		logCfg.Debug = cfg.DebugLogging
		appLogger, err = logger.New(logCfg)
	}
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(appLogger)
	}()

	exporter := export.NewExporter(appLogger)

	params := cfg.Scenario
	name := "config scenario"
	if *scenarioPath != "" {
		name, params, err = exporter.ImportScenario(*scenarioPath)
		if err != nil {
			appLogger.Error("scenario import failed", zap.String("path", *scenarioPath), zap.Error(err))
			os.Exit(1)
		}
	}

	result := model.ComputeProfit(params)
	herd := model.Herd(params, result)
	printSummary(name, params, result, herd)

	if *noExport {
		return
	}

	report := export.BuildReport(params, cfg.PurchaseAxis.Axis(), cfg.SaleAxis.Axis())

	// The two report files are independent; write them concurrently.
	var g errgroup.Group
	g.Go(func() error {
		path, err := exporter.ExportReport(report, export.FormatJSON, cfg.ExportDir)
		if err != nil {
			return fmt.Errorf("json report: %w", err)
		}
		fmt.Printf("report written: %s\n", path)
		return nil
	})
	g.Go(func() error {
		path, err := exporter.ExportReport(report, export.FormatCSV, cfg.ExportDir)
		if err != nil {
			return fmt.Errorf("csv report: %w", err)
		}
		fmt.Printf("report written: %s\n", path)
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("report export failed", zap.Error(err))
		os.Exit(1)
	}
}

func printSummary(name string, p model.ScenarioParams, r model.ProfitResult, h model.HerdResult) {
	fmt.Printf("Scenario: %s\n\n", name)
	fmt.Printf("  buy %.0f/kg at %.0f kg, sell %.0f/kg at %.0f kg\n",
		p.PurchasePrice, p.PurchaseWeight, p.SalePrice, p.ExitWeight)
	fmt.Printf("  days on feed          %10.0f\n", r.DaysOnFeed)
	fmt.Printf("  total investment      %10.2f\n", r.TotalInvestment)
	fmt.Printf("  net margin per head   %10.2f\n", r.NetMargin)
	fmt.Printf("  feed margin           %10.2f\n", r.FeedMargin)
	fmt.Printf("  cost per kg produced  %10.2f\n", r.CostPerKgProduced)
	fmt.Printf("  breakeven sale price  %10.2f\n", r.BreakevenSalePrice)
	fmt.Printf("  breakeven purchase    %10.2f\n", r.BreakevenPurchasePrice)
	fmt.Printf("  sale price cushion    %9.1f%%\n", r.SalePriceDropToZeroPct)
	fmt.Printf("  return on investment  %9.2f%%\n", r.InvestmentReturnPct)
	fmt.Printf("  monthly return        %9.2f%%\n", r.MonthlyReturnPct)
	fmt.Printf("  annual return         %9.2f%%\n", r.AnnualReturnPct)
	fmt.Printf("\nHerd (%.0f head, %.1f sold):\n", h.HeadCount, h.SellableHead)
	fmt.Printf("  revenue               %10.2f\n", h.Revenue)
	fmt.Printf("  investment            %10.2f\n", h.Investment)
	fmt.Printf("  net margin            %10.2f\n", h.NetMargin)
	fmt.Printf("  return                %9.2f%%\n", h.ReturnPct)
}
