package pagecmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

type connFlags struct {
	gatewayAddr string
	tls         bool
	caFile      string
	timeout     time.Duration
	output      string
}

func (f *connFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.gatewayAddr, "gateway", "127.0.0.1:50051", "Gateway gRPC address host:port")
	cmd.Flags().BoolVar(&f.tls, "tls", false, "Use TLS")
	cmd.Flags().StringVar(&f.caFile, "tls-ca", "", "CA file (PEM), optional")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 15*time.Second, "Overall timeout")
	cmd.Flags().StringVarP(&f.output, "output", "o", "json", "Output format: json or yaml")
}

func dialGateway(addr string, tls bool, caFile string) (*grpc.ClientConn, error) {
	var opts []grpc.DialOption

	if tls {
		creds, err := credentials.NewClientTLSFromFile(caFile, "")
		if err != nil {
			return nil, err
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	return grpc.NewClient(addr, opts...)
}

func printStruct(w io.Writer, format string, s *structpb.Struct) error {
	switch format {
	case "json":
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s.AsMap()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
