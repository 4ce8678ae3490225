package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"company-registry/core/config"
	"company-registry/core/database"
	"company-registry/core/logger"
	"company-registry/feature/reconciliation"
	"company-registry/feature/reconciliation/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileUF        string
	reconcileFile      string
	reconcileSituacoes []string
	reconcileOutput    string
)

// reconcileCmd reconciles an identifier file against the registry without
// going through the HTTP server.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a CNPJ file against the registry views",
	Long: `Reconcile a JSON file of import rows against the per-region registry
views, printing the merged report.

The input file holds an array of objects, each carrying at least a "cnpj"
field. Extra fields are passed through to the report.

Examples:
  # Reconcile a file for RS
  company-registry reconcile --uf RS --file itens.json

  # Target the active partition and write the report to a file
  company-registry reconcile --uf SP --file itens.json --situacao 02 --output report.json`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileUF, "uf", "", "Two-letter region code (required)")
	reconcileCmd.Flags().StringVar(&reconcileFile, "file", "", "Path to the JSON items file (required)")
	reconcileCmd.Flags().StringSliceVar(&reconcileSituacoes, "situacao", nil, "Registration status filter (02 selects the active partition)")
	reconcileCmd.Flags().StringVar(&reconcileOutput, "output", "", "Write the report to this file instead of stdout")
	_ = reconcileCmd.MarkFlagRequired("uf")
	_ = reconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Read the items file
	raw, err := os.ReadFile(reconcileFile)
	if err != nil {
		return fmt.Errorf("failed to read items file: %w", err)
	}
	var itens []models.Entry
	if err := json.Unmarshal(raw, &itens); err != nil {
		return fmt.Errorf("failed to parse items file: %w", err)
	}

	l.Info("Reconciling file",
		zap.String("file", reconcileFile),
		zap.String("uf", reconcileUF),
		zap.Int("items", len(itens)))

	svc := reconciliation.NewService(db, l, nil)
	report, err := svc.Reconcile(ctx, models.Request{
		Uf:        reconcileUF,
		Situacoes: reconcileSituacoes,
		Itens:     itens,
	})
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if reconcileOutput != "" {
		if err := os.WriteFile(reconcileOutput, out, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", reconcileOutput))
		return nil
	}

	fmt.Println(string(out))
	return nil
}
