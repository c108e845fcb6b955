// Package app implements the rankbench command.
package app

import (
	"flag"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/mosa-ranking/cmd/rankbench/app/options"
)

// NewRankbenchCommand creates a *cobra.Command object with default parameters
func NewRankbenchCommand(out io.Writer) *cobra.Command {
	o := options.NewOptions()
	cmd := &cobra.Command{
		Use:   "rankbench",
		Short: "rankbench ranks benchmark populations with many-objective ranking strategies",
		Long: `rankbench samples benchmark populations, ranks them with
non-dominated or preference sorting and scores the diversity of every front.`,
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	fs := cmd.PersistentFlags()
	o.AddFlags(fs)
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd.AddCommand(newRankCommand(out, o), newSuiteCommand(out, o))
	return cmd
}
