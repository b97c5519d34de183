package cmd

import (
	"fmt"

	"github.com/askmilo/askmilo-cli/subject"
	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects milo can answer questions about",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, s := range subject.All() {
			fmt.Printf("%-5s %s\n", s, s.Label())
		}
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
