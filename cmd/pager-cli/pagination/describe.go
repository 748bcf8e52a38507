package pagecmd

import (
	"context"

	paginationapi "github.com/10Narratives/pager/internal/transport/grpc/api/pagination"
	"github.com/spf13/cobra"
)

func NewDescribeCmd() *cobra.Command {
	var conn connFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show the arguments and fields the gateway accepts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), conn.timeout)
			defer cancel()

			c, err := dialGateway(conn.gatewayAddr, conn.tls, conn.caFile)
			if err != nil {
				return err
			}
			defer c.Close()

			out, err := paginationapi.NewClient(c).Describe(ctx)
			if err != nil {
				return err
			}
			return printStruct(cmd.OutOrStdout(), conn.output, out)
		},
	}

	conn.register(cmd)
	return cmd
}
