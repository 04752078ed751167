// furiclean: strips furigana lines from copied Japanese text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "furiclean",
		Short: "Strip furigana lines from copied Japanese text",
		Long: `furiclean watches the system clipboard. When Japanese text is copied
with its furigana readings on separate lines, the reading lines are dropped
and the rest is joined into a single line, replacing the clipboard value.

Run "furiclean watch" to start the cleaner. Use "furiclean clean" to apply the
same filter to stdin.

Config file search order (first found wins):
  /etc/furiclean/furiclean.toml
  $HOME/.config/furiclean/furiclean.toml
  path supplied via --config

All flags can be set via FURICLEAN_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newWatchCmd(),
		newCleanCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "furiclean %s\n", Version)
		},
	}
}
