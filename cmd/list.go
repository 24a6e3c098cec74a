package cmd

import (
	"fmt"
	"strconv"

	"github.com/YoungY620/prefixsum/catalog"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the problems in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, topic := range catalog.Default().Topics {
		fmt.Fprintf(out, "%s: %s\n", topic.Name, topic.Description)
		for _, idea := range topic.KeyIdeas {
			fmt.Fprintf(out, "  - %s\n", idea)
		}
		fmt.Fprintf(out, "  %s\n\n", topic.Complexity)

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"#", "ID", "Title", "Description", "URL"})
		table.SetAutoWrapText(false)
		for _, p := range topic.Problems {
			table.Append([]string{strconv.Itoa(p.Number), p.ID, p.Title, p.Description, p.URL})
		}
		table.Render()
		fmt.Fprintln(out)
	}
	return nil
}
