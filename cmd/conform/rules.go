package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the effective rules after config overrides",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	set, err := buildRuleSet(cmd)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tSEVERITY")
	for _, r := range set.Rules() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Category, r.Severity)
	}
	return tw.Flush()
}
