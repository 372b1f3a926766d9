package cmd

import (
	"time"

	"github.com/forestrie/go-logquery/client"
	"github.com/spf13/cobra"
)

func newLogsCmd(o *rootOptions) *cobra.Command {
	var tr timeRange
	opts := client.DefaultGetLogsOptions()

	cmd := &cobra.Command{
		Use:   "logs <logstore>",
		Short: "Fetch one page of matching logs",
		Long: `Fetch one page of matching logs.

The result reports progress "Incomplete" while more logs may exist; request
the next page with --offset advanced by --line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := tr.resolve(time.Now())
			if err != nil {
				return err
			}
			res, err := o.client.GetLogs(cmd.Context(), args[0], from, to, opts)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), o.output, res)
		},
	}

	tr.register(cmd)
	cmd.Flags().StringVarP(&opts.Query, "query", "q", opts.Query, "Search expression")
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "Log topic")
	cmd.Flags().IntVarP(&opts.Line, "line", "n", opts.Line, "Page size")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Number of logs to skip")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "Newest logs first")
	cmd.Flags().BoolVar(&opts.PowerSQL, "power-sql", false, "Use dedicated SQL resources")
	return cmd
}
