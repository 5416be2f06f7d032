package cmd

import (
	"fmt"

	"mediastore/core/storage"

	"github.com/spf13/cobra"
)

var pathPrefix string

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path <source-url>",
	Short: "Print the storage path derived from a source URL",
	Long: `Derives the date-partitioned storage key for a source URL, shaped
<prefix>/<year>/<month>/<day>/<md5-of-url>.jpg with the current UTC date.
The digest covers the URL string, so the same URL prints the same key for
the whole UTC day.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(storage.GeneratePath(args[0], pathPrefix))
	},
}

func init() {
	RootCmd.AddCommand(pathCmd)
	pathCmd.Flags().StringVar(&pathPrefix, "prefix", storage.DefaultPathPrefix, "prefix for the generated path")
}
