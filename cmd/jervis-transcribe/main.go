// Jervis transcription service: drives meeting recordings through
// transcription, LLM-based correction and knowledge-base indexing.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/JanDamek/jervis-transcribe/pkg/api"
	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/correction"
	"github.com/JanDamek/jervis-transcribe/pkg/database"
	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/pipeline"
	"github.com/JanDamek/jervis-transcribe/pkg/services"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// newClusterClient builds the Kubernetes clientset: in-cluster config when
// running as a pod, kubeconfig otherwise.
func newClusterClient() (kubernetes.Interface, error) {
	restCfg, err := rest.InClusterConfig()
	if err != nil {
		kubeconfig := getEnv("KUBECONFIG", clientcmd.RecommendedHomeFile)
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, err
		}
	}
	return kubernetes.NewForConfig(restCfg)
}

func main() {
	envFile := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting jervis-transcribe",
		"http_port", httpPort,
		"mode", cfg.Transcription.DeploymentMode,
		"model", cfg.Transcription.Model)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	meetingStore := store.NewMeetingStore(dbClient.Client)
	indexQueue := store.NewIndexQueue(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	beats := heartbeat.NewTracker()

	// 3. Correction agent client
	agent := correction.NewClient(cfg.CorrectionAgentURL, cfg.CorrectionTimeout)
	slog.Info("Correction agent client initialized", "url", cfg.CorrectionAgentURL)

	// 4. Transcription backend
	var clusterClient kubernetes.Interface
	if cfg.Transcription.DeploymentMode == config.ModeKubernetesJob {
		clusterClient, err = newClusterClient()
		if err != nil {
			slog.Error("Failed to build Kubernetes client", "error", err)
			os.Exit(1)
		}
	}
	isCorrecting := func(ctx context.Context, meetingID string) bool {
		m, err := meetingStore.FindByID(ctx, meetingID)
		return err == nil && m.State == models.StateCorrecting
	}
	notifier := transcriber.NewNotifier(publisher, beats, isCorrecting)
	backend, err := transcriber.NewBackend(cfg.Transcription, clusterClient,
		correction.NewPromptTermSource(agent), notifier)
	if err != nil {
		slog.Error("Failed to build transcription backend", "error", err)
		os.Exit(1)
	}
	slog.Info("Transcription backend initialized", "mode", cfg.Transcription.DeploymentMode)

	// 5. Domain services
	correctionService := correction.NewService(meetingStore, agent, backend, publisher, beats, cfg.Transcription)
	meetingService := services.NewMeetingService(meetingStore, correctionService, publisher)

	transcribeHandler := pipeline.NewTranscribeHandler(meetingStore, backend, publisher, cfg.Transcription)
	indexHandler := pipeline.NewIndexHandler(meetingStore, indexQueue, publisher)

	// 6. Re-attach orphaned jobs before the pipelines start
	reattacher := pipeline.NewReattacher(meetingStore, backend, publisher, transcribeHandler)
	if err := reattacher.Run(ctx); err != nil {
		slog.Error("Re-attach scan failed", "error", err)
		os.Exit(1)
	}

	// 7. Pipeline workers and stuck detector
	runner := pipeline.NewRunner(meetingStore, publisher, cfg.Pipeline)
	runner.AddWorker("transcribe", models.StateUploaded, transcribeHandler.Handle)
	runner.AddWorker("correct", models.StateTranscribed, func(ctx context.Context, m *models.Meeting) error {
		return correctionService.Correct(ctx, m)
	})
	runner.AddWorker("index", models.StateCorrected, indexHandler.Handle)
	runner.Start()

	detector := pipeline.NewStuckDetector(meetingStore, beats, backend, publisher, cfg.Pipeline, cfg.Transcription)
	detector.Start()

	// 8. HTTP server
	apiServer := api.NewServer(meetingService, backend, dbClient)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("jervis-transcribe started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting work, then wait for in-flight
	// meetings within the configured budget.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Pipeline.GracefulShutdownTimeout)
	defer cancel()

	detector.Stop()

	done := make(chan struct{})
	go func() {
		runner.Stop()
		reattacher.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Pipeline workers stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, interrupted meetings will be recovered on restart")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
