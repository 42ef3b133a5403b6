// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"code.hybscloud.com/lfl/internal/build"
)

// NewVersionCommand returns the command to get the lfld version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Return the lfld version",
		Long:  "Return the lfld version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}
}

func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "lfld Version %s Date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return err
}
