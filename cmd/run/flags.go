// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package run

import (
	"github.com/spf13/cobra"

	"code.hybscloud.com/lfl/cmd/util"
	"code.hybscloud.com/lfl/internal/config"
)

// bindRunFlags binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindRunFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.Flags()

	flags.String("http-addr", defaultConfig.HTTP.Addr, "the host:port address to serve the HTTP server on")
	util.MustBindPFlag("http.addr", flags.Lookup("http-addr"))
	util.MustBindEnv("http.addr", "LFLD_HTTP_ADDR")

	flags.StringSlice("http-cors-allowed-origins", defaultConfig.HTTP.CORSAllowedOrigins, "specifies the CORS allowed origins")
	util.MustBindPFlag("http.corsAllowedOrigins", flags.Lookup("http-cors-allowed-origins"))
	util.MustBindEnv("http.corsAllowedOrigins", "LFLD_HTTP_CORS_ALLOWED_ORIGINS", "LFLD_HTTP_CORSALLOWEDORIGINS")

	flags.Duration("http-shutdown-timeout", defaultConfig.HTTP.ShutdownTimeout, "how long to wait for in-flight requests on shutdown")
	util.MustBindPFlag("http.shutdownTimeout", flags.Lookup("http-shutdown-timeout"))
	util.MustBindEnv("http.shutdownTimeout", "LFLD_HTTP_SHUTDOWN_TIMEOUT", "LFLD_HTTP_SHUTDOWNTIMEOUT")

	flags.Bool("metrics-enabled", defaultConfig.Metrics.Enabled, "enable/disable prometheus metrics on the '/metrics' endpoint")
	util.MustBindPFlag("metrics.enabled", flags.Lookup("metrics-enabled"))
	util.MustBindEnv("metrics.enabled", "LFLD_METRICS_ENABLED")

	flags.String("metrics-addr", defaultConfig.Metrics.Addr, "the host:port address to serve the prometheus metrics server on")
	util.MustBindPFlag("metrics.addr", flags.Lookup("metrics-addr"))
	util.MustBindEnv("metrics.addr", "LFLD_METRICS_ADDR")

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")
	util.MustBindPFlag("log.format", flags.Lookup("log-format"))
	util.MustBindEnv("log.format", "LFLD_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")
	util.MustBindPFlag("log.level", flags.Lookup("log-level"))
	util.MustBindEnv("log.level", "LFLD_LOG_LEVEL")

	flags.Int("list-max-retries", defaultConfig.List.MaxRetries, "failed CAS rounds tolerated by pop and insert-after before giving up (0 is unbounded)")
	util.MustBindPFlag("list.maxRetries", flags.Lookup("list-max-retries"))
	util.MustBindEnv("list.maxRetries", "LFLD_LIST_MAX_RETRIES", "LFLD_LIST_MAXRETRIES")

	flags.Bool("list-create-on-start", defaultConfig.List.CreateOnStart, "create the list before accepting requests")
	util.MustBindPFlag("list.createOnStart", flags.Lookup("list-create-on-start"))
	util.MustBindEnv("list.createOnStart", "LFLD_LIST_CREATE_ON_START", "LFLD_LIST_CREATEONSTART")
}
