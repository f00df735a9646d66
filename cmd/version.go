package cmd

import (
	"fmt"

	"github.com/bridgetgarnier/1Delongation/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of elong",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("elong v%s\n", version.Version)
		fmt.Println("1-D elongation from fault catalogs")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
