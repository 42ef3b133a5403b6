// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package run contains the command to run the lfld server.
package run

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"code.hybscloud.com/lfl"
	"code.hybscloud.com/lfl/holder"
	"code.hybscloud.com/lfl/internal/config"
	"code.hybscloud.com/lfl/logger"
	"code.hybscloud.com/lfl/server"
)

const readHeaderTimeout = 10 * time.Second

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the lfld server",
		Long:  "Run the lfld server, serving one lock-free list over HTTP.",
		Run:   run,
		Args:  cobra.NoArgs,
	}

	bindRunFlags(cmd)

	return cmd
}

// ReadConfig returns the lfld server configuration based on the values provided in the server's 'config.yaml' file.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load server config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server config: %w", err)
	}

	return cfg, nil
}

func run(_ *cobra.Command, _ []string) {
	cfg, err := ReadConfig()
	if err != nil {
		panic(err)
	}

	if err := cfg.Verify(); err != nil {
		panic(err)
	}

	serverCtx := &ServerContext{
		Logger: logger.MustNewLogger(cfg.Log.Format, cfg.Log.Level),
	}
	if err := serverCtx.Run(context.Background(), cfg); err != nil {
		panic(err)
	}
}

type ServerContext struct {
	Logger logger.Logger
}

// Run returns an error if the server was unable to start successfully.
// If it started and terminated successfully, it returns a nil error.
func (s *ServerContext) Run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := lfl.New().MaxRetries(cfg.List.MaxRetries)
	h := holder.New(func() *lfl.List[string] {
		return lfl.Build[string](builder)
	}, holder.WithLogger[string](s.Logger))

	if cfg.List.CreateOnStart {
		h.Create()
	}

	// Serving goroutines are joined before Run returns
	var wg conc.WaitGroup
	defer wg.Wait()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		metricsServer = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}

		wg.Go(func() {
			s.Logger.Info(fmt.Sprintf("starting prometheus metrics server on '%s'", cfg.Metrics.Addr))
			if err := metricsServer.ListenAndServe(); err != nil {
				if !errors.Is(err, http.ErrServerClosed) {
					s.Logger.Fatal("failed to start prometheus metrics server", zap.Error(err))
				}
			}
			s.Logger.Info("metrics server shut down.")
		})
	}

	httpServer, err := s.runHTTPServer(&wg, cfg, h)
	if err != nil {
		if metricsServer != nil {
			_ = metricsServer.Close()
		}
		return err
	}

	// wait for cancellation signal
	<-ctx.Done()
	s.Logger.Info("attempting to shutdown gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		s.Logger.Info("failed to shutdown the http server", zap.Error(err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			s.Logger.Info("failed to shutdown the prometheus metrics server", zap.Error(err))
		}
	}

	h.Destroy()

	s.Logger.Info("server exited. goodbye 👋")

	return nil
}

// runHTTPServer binds the HTTP address before returning so that address
// errors are reported to the caller rather than logged fatally.
func (s *ServerContext) runHTTPServer(wg *conc.WaitGroup, cfg *config.Config, h *holder.Holder[string]) (*http.Server, error) {
	lis, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on '%s': %w", cfg.HTTP.Addr, err)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.Handler(server.New(h, s.Logger), cfg.HTTP.CORSAllowedOrigins),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	wg.Go(func() {
		s.Logger.Info(fmt.Sprintf("🚀 starting HTTP server on '%s'...", lis.Addr()))
		if err := httpServer.Serve(lis); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				s.Logger.Fatal("HTTP server closed with unexpected error", zap.Error(err))
			}
		}
		s.Logger.Info("HTTP server shut down.")
	})

	return httpServer, nil
}
