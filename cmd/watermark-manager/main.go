package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phambaophuc/watermark-manager/internal/cli"
	"github.com/phambaophuc/watermark-manager/internal/config"
	"github.com/phambaophuc/watermark-manager/internal/logger"
	"github.com/phambaophuc/watermark-manager/internal/services/editor"
	"github.com/phambaophuc/watermark-manager/internal/services/processor"
	"github.com/phambaophuc/watermark-manager/internal/services/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "watermark-manager",
	Short: "Interactive brightness, contrast, colour and watermark edits for a single image",
	Long: `Watermark manager walks you through editing one image at a time.

Copy your images into the image directory (./img by default, see IMAGE_DIR),
start the tool and answer the prompts. Each edit is saved next to the source
as <name>-edited.<ext>.`,
	Args:          cobra.NoArgs,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMain,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The session already told the user about missing files.
		if !errors.Is(err, cli.ErrInputMissing) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize services
	imageProcessor, err := processor.NewImageProcessor(processor.Options{
		Quality:          cfg.Processing.JPEGQuality,
		WatermarkOpacity: cfg.Processing.WatermarkOpacity,
		FontSize:         cfg.Processing.FontSize,
		AutoOrient:       cfg.Processing.AutoOrient,
	})
	if err != nil {
		log.Error("Failed to initialize image processor", zap.Error(err))
		return err
	}

	store := storage.NewStorageService(cfg.App.ImageDir, log)
	for name, status := range store.HealthCheck() {
		if status != "healthy" {
			log.Warn("Storage check failed", zap.String("check", name), zap.String("status", status))
		}
	}

	session := cli.NewSession(
		cli.NewFlow(cli.NewSurveyPrompter(), store, cfg.App),
		editor.NewEditor(imageProcessor, store, log),
		cmd.OutOrStdout(),
		log,
	)

	log.Info("Starting watermark manager",
		zap.String("image_dir", cfg.App.ImageDir),
		zap.String("version", version))

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Interrupted, exiting")
			return nil
		}
		log.Warn("Session ended with error", zap.Error(err))
		return err
	}

	log.Info("Session finished")
	return nil
}
