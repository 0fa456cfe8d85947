package serve

import (
	"fmt"
	"log/slog"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bingohq/rng/cmd/config"
	"github.com/bingohq/rng/internal/api"
	"github.com/bingohq/rng/internal/app/subsystems/api/http"
	"github.com/bingohq/rng/internal/metrics"
	"github.com/bingohq/rng/internal/rng"
	"github.com/bingohq/rng/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the random number server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			return Serve(cfg)
		},
	}

	cmd.Flags().String("addr", "0.0.0.0:8000", "http server address")
	cmd.Flags().Duration("timeout", 10*time.Second, "http server graceful shutdown timeout")
	cmd.Flags().Int("metrics-port", 9090, "prometheus metrics server port")
	cmd.Flags().Bool("ignore-asserts", false, "ignore-asserts mode")

	_ = viper.BindPFlag("api.subsystems.http.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("api.subsystems.http.timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("metrics.port", cmd.Flags().Lookup("metrics-port"))
	_ = viper.BindPFlag("ignore-asserts", cmd.Flags().Lookup("ignore-asserts"))

	return cmd
}

func Serve(cfg *config.Config) error {
	// logger
	logLevel, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		slog.Error("failed to parse log level", "error", err)
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// instantiate metrics
	reg := prometheus.NewRegistry()
	metrics := metrics.New(reg)

	// instantiate the sampler
	sampler := rng.New(rng.NewEntropySource())

	// instantiate api
	api := api.New(sampler, metrics)

	// add api subsystems
	api.AddSubsystem(http.New(api, cfg.API.Subsystems.Http))

	// start api
	if err := api.Start(); err != nil {
		slog.Error("failed to start api", "error", err)
		return err
	}

	// metrics server
	mux := netHttp.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	metricsServer := &netHttp.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: mux,
	}

	go func() {
		for {
			slog.Info("starting metrics server", "addr", metricsServer.Addr)

			if err := metricsServer.ListenAndServe(); err != nil {
				if err == netHttp.ErrServerClosed {
					return
				}

				slog.Error("error starting metrics server", "error", err)
			}

			time.Sleep(5 * time.Second)
		}
	}()

	// halt until we get a shutdown signal or an error
	// occurs, whichever happens first
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		slog.Info("shutdown signal received, shutting down", "signal", s)
	case err := <-api.Errors():
		slog.Error("api error received, shutting down", "error", err)
	}

	// shutdown metrics server
	if err := metricsServer.Close(); err != nil {
		slog.Warn("error stopping metrics server", "error", err)
	}

	// stop api
	if err := api.Stop(); err != nil {
		slog.Error("failed to stop api", "error", err)
		return err
	}

	return nil
}
