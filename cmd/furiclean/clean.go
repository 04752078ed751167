package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/furiclean/internal/furigana"
	"go.klb.dev/furiclean/internal/script"
)

func newCleanCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Strip furigana lines from stdin and print the result",
		Long: `Reads stdin, drops interior lines made up only of kana, and writes the
remaining text joined into one line to stdout.

With --gate the input is first checked the same way the watcher checks the
clipboard; input that would be left alone is echoed unchanged.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.InOrStdin(), cmd.OutOrStdout(), v.GetBool("gate"))
		},
	}

	cmd.Flags().Bool("gate", false, "only rewrite text the clipboard watcher would rewrite")
	addConfigFlag(cmd)

	return cmd
}

func runClean(in io.Reader, out io.Writer, gate bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)

	var result string
	if gate {
		var ok bool
		if result, ok = furigana.New(script.IsJapanese).Rewrite(text); !ok {
			result = text
		}
	} else {
		result = furigana.Clean(text)
	}

	if _, err := io.WriteString(out, result); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
