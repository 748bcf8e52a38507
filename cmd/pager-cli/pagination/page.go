package pagecmd

import (
	"context"
	"encoding/json"
	"fmt"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"github.com/10Narratives/pager/internal/registry"
	memrepo "github.com/10Narratives/pager/internal/repositories/records/memory"
	pagesrv "github.com/10Narratives/pager/internal/services/pagination"
	paginationapi "github.com/10Narratives/pager/internal/transport/grpc/api/pagination"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

type pageFlags struct {
	page    int
	perPage int
	first   int
	filter  string
	sort    string
	fields  []string
	seed    string
}

func (f *pageFlags) args() (pagedomain.Args, error) {
	args := pagedomain.Args{Page: f.page, PerPage: f.perPage, First: f.first}

	if f.filter != "" {
		if err := json.Unmarshal([]byte(f.filter), &args.Filter); err != nil {
			return args, fmt.Errorf("--filter must be a JSON object: %w", err)
		}
	}

	sort, err := pagedomain.ParseSort(f.sort)
	if err != nil {
		return args, err
	}
	args.Sort = sort

	return args, args.Validate()
}

func NewPageCmd() *cobra.Command {
	var (
		conn connFlags
		page pageFlags
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Fetch one page of records",
		Example: `  pager page --page 2 --per-page 5 --filter '{"gender":"m"}' --sort id:asc \
    --fields items.id,items.name,count,pageInfo.hasNextPage`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := page.args()
			if err != nil {
				return err
			}
			shape := pagedomain.ShapeFromPaths(page.fields)

			ctx, cancel := context.WithTimeout(cmd.Context(), conn.timeout)
			defer cancel()

			var out *structpb.Struct
			if page.seed != "" {
				out, err = paginateLocal(ctx, page.seed, page.perPage, args, shape)
			} else {
				out, err = paginateRemote(ctx, conn, args, shape)
			}
			if err != nil {
				return err
			}

			return printStruct(cmd.OutOrStdout(), conn.output, out)
		},
	}

	conn.register(cmd)
	cmd.Flags().IntVar(&page.page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&page.perPage, "per-page", 0, "Records per page (server default when 0)")
	cmd.Flags().IntVar(&page.first, "first", 0, "Fetch the first N records instead of a page")
	cmd.Flags().StringVar(&page.filter, "filter", "", `Equality filter as a JSON object, e.g. '{"gender":"m"}'`)
	cmd.Flags().StringVar(&page.sort, "sort", "", "Sort keys, e.g. age:desc,name")
	cmd.Flags().StringSliceVar(&page.fields, "fields", []string{"items", "count", "pageInfo"}, "Requested fields as dotted paths")
	cmd.Flags().StringVar(&page.seed, "seed", "", "Query a local YAML/JSON records file instead of the gateway")

	return cmd
}

func paginateRemote(ctx context.Context, f connFlags, args pagedomain.Args, shape pagedomain.Shape) (*structpb.Struct, error) {
	conn, err := dialGateway(f.gatewayAddr, f.tls, f.caFile)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	in, err := paginationapi.NewRequest(args, shape)
	if err != nil {
		return nil, err
	}
	return paginationapi.NewClient(conn).Paginate(ctx, in)
}

func paginateLocal(ctx context.Context, path string, perPage int, args pagedomain.Args, shape pagedomain.Shape) (*structpb.Struct, error) {
	store, err := memrepo.LoadFile(path)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	reg.SetOperation("findMany", store.FindOperation())
	reg.SetOperation("count", store.CountOperation())

	o, err := pagesrv.NewOrchestrator(reg, pagesrv.Config{
		FindOperation:  "findMany",
		CountOperation: "count",
		PerPage:        perPage,
	})
	if err != nil {
		return nil, err
	}

	res, err := o.Paginate(ctx, &pagesrv.Request{Args: args, Shape: shape})
	if err != nil {
		return nil, err
	}
	return paginationapi.EncodeResult(res)
}
