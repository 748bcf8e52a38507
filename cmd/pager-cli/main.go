package main

import (
	"context"
	"os/signal"
	"syscall"

	pagecmd "github.com/10Narratives/pager/cmd/pager-cli/pagination"
	errorutils "github.com/10Narratives/pager/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "pager",
		Short: "Tool for paginated queries",
		Long:  "Tool for running paginated queries against a pager gateway or a local records file.",
	}

	rootCmd.AddCommand(
		pagecmd.NewPageCmd(),
		pagecmd.NewDescribeCmd(),
	)

	errorutils.Try(rootCmd.ExecuteContext(ctx))
}
