package main

import (
	"fmt"

	"github.com/spboyer/wfcheck/internal/projectconfig"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := resolveRun(cmd, nil)
			if err != nil {
				return err
			}
			data, err := projectconfig.Marshal(rc.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rc.cfg.Path != "" {
				fmt.Fprintf(out, "# loaded from %s\n", rc.cfg.Path)
			} else {
				fmt.Fprintln(out, "# defaults (no "+projectconfig.FileName+" found)")
			}
			_, err = out.Write(data)
			return err
		},
	}
}
