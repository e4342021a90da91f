package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/mazepath/compare"
)

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "run every strategy over one maze and tabulate the results",
		Flags: append([]cli.Flag{fileFlag()}, endpointFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			gg, start, end, err := loadMaze(cmd)
			if err != nil {
				return err
			}
			report, err := compare.Run(gg, start, end)
			if err != nil {
				return err
			}
			e.log.WithField("strategies", len(report.Entries)).Debug("comparison finished")

			return printReport(cmd.Root().Writer, report)
		},
	}
}

func printReport(w io.Writer, report *compare.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFOUND\tLENGTH\tCOST\tEXPANDED\tDISCOVERED\tELAPSED")
	for _, e := range report.Entries {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%d\t%d\t%s\n",
			e.Strategy, e.Found, e.PathLength, e.PathCost, e.Expanded, e.Discovered, e.Elapsed)
	}
	return tw.Flush()
}
