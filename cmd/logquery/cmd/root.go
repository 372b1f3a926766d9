// Package cmd implements the logquery command line.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/forestrie/go-logquery/client"
	"github.com/forestrie/go-logquery/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags and the client built from them.
type rootOptions struct {
	endpoint        string
	project         string
	accessKeyID     string
	accessKeySecret string
	timeout         string
	output          string
	verbose         bool

	clientOpts []client.Option
	client     *client.Client
	logger     *zap.Logger
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd(clientOpts ...client.Option) *cobra.Command {
	o := &rootOptions{clientOpts: clientOpts}

	rootCmd := &cobra.Command{
		Use:   "logquery",
		Short: "Query histograms and logs of a log service project",
		Long: `logquery sends signed read requests to a log service project.

Credentials and endpoint are read from LOGQUERY_ENDPOINT, LOGQUERY_PROJECT,
LOGQUERY_ACCESS_KEY_ID, LOGQUERY_ACCESS_KEY_SECRET and LOGQUERY_TIMEOUT;
flags take precedence.

Examples:
  # Count matching logs per time bucket over the last hour
  logquery histograms nginx-access --since 1h --query 'status:500'

  # Fetch the second page of 50 logs, newest first
  logquery logs nginx-access --since 1h --line 50 --offset 50 --reverse -o yaml`,
		SilenceUsage:      true,
		PersistentPreRunE: o.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.endpoint, "endpoint", "", "Region endpoint, e.g. cn-hangzhou.log.aliyuncs.com")
	flags.StringVarP(&o.project, "project", "p", "", "Project name")
	flags.StringVar(&o.accessKeyID, "access-key-id", "", "Access key ID")
	flags.StringVar(&o.accessKeySecret, "access-key-secret", "", "Access key secret (prefer LOGQUERY_ACCESS_KEY_SECRET)")
	flags.StringVar(&o.timeout, "timeout", "", "Round trip timeout, e.g. 10s")
	flags.StringVarP(&o.output, "output", "o", outputJSON, "Output format (json, yaml)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(newHistogramsCmd(o), newLogsCmd(o))
	return rootCmd
}

// setup loads the configuration and builds the client shared by subcommands.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	if o.output != outputJSON && o.output != outputYAML {
		return fmt.Errorf("unsupported output format %q", o.output)
	}

	logger := zap.NewNop()
	if o.verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
	}
	o.logger = logger

	cfg, err := config.LoadWithPrefix(config.EnvPrefix, map[string]string{
		"endpoint":          o.endpoint,
		"project":           o.project,
		"access_key_id":     o.accessKeyID,
		"access_key_secret": o.accessKeySecret,
		"timeout":           o.timeout,
	})
	if err != nil {
		return err
	}

	opts := append([]client.Option{client.WithLogger(logger)}, o.clientOpts...)
	c, err := client.New(cfg, opts...)
	if err != nil {
		return err
	}
	o.client = c
	return nil
}

// timeRange holds the --from/--to/--since flags shared by subcommands.
type timeRange struct {
	from  int64
	to    int64
	since time.Duration
}

func (r *timeRange) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&r.from, "from", 0, "Start of the range in unix seconds")
	cmd.Flags().Int64Var(&r.to, "to", 0, "End of the range in unix seconds (default now)")
	cmd.Flags().DurationVar(&r.since, "since", 15*time.Minute, "Range length when --from is not set")
}

// resolve returns [from, to) in unix seconds.
func (r *timeRange) resolve(now time.Time) (int64, int64, error) {
	to := r.to
	if to == 0 {
		to = now.Unix()
	}
	from := r.from
	if from == 0 {
		from = to - int64(r.since/time.Second)
	}
	if from > to {
		return 0, 0, fmt.Errorf("--from (%d) is after --to (%d)", from, to)
	}
	return from, to, nil
}
