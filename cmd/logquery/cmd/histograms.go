package cmd

import (
	"time"

	"github.com/forestrie/go-logquery/client"
	"github.com/spf13/cobra"
)

func newHistogramsCmd(o *rootOptions) *cobra.Command {
	var (
		tr   timeRange
		opts client.HistogramOptions
	)

	cmd := &cobra.Command{
		Use:   "histograms <logstore>",
		Short: "Count matching logs per time bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := tr.resolve(time.Now())
			if err != nil {
				return err
			}
			res, err := o.client.GetHistograms(cmd.Context(), args[0], from, to, opts)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), o.output, res)
		},
	}

	tr.register(cmd)
	cmd.Flags().StringVarP(&opts.Query, "query", "q", client.DefaultQuery, "Search expression")
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "Log topic")
	return cmd
}
