// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cmd contains the commands included in the lfld binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment
// variables prefixed with LFLD, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LFLD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/lfld", "$HOME/.lfld", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "lfld",
		Short: "An HTTP service in front of a lock-free tail-LIFO list",
		Long: `lfld serves a single lock-free singly-linked list over HTTP.

Elements are pushed to and popped from the tail; insert-after splices an
element after the first occurrence of a pivot.`,
		SilenceUsage: true,
	}
}
