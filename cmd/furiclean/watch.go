package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/furiclean/internal/cleaner"
	"go.klb.dev/furiclean/internal/clip"
	"go.klb.dev/furiclean/internal/furigana"
	"go.klb.dev/furiclean/internal/script"
)

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rewrite the system clipboard whenever furigana text is copied",
		Long: `Watches the system clipboard until interrupted. Each time text is copied
that looks Japanese and spans several lines, interior lines made up only of
kana are dropped and the rest is joined into one line.

Precedence (lowest → highest): defaults → config file → FURICLEAN_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runWatch(cmd.Context(), v) },
	}

	f := cmd.Flags()
	f.Int("retries", clip.DefaultRetryPolicy.MaxAttempts, "clipboard read attempts per change")
	f.Bool("force", false, "rewrite multi-line text even when it does not look Japanese")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runWatch(ctx context.Context, v *viper.Viper) error {
	setupLogging(v)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy := clip.RetryPolicy{MaxAttempts: v.GetInt("retries")}
	var detect furigana.Detector = script.IsJapanese
	if v.GetBool("force") {
		detect = nil
	}

	slog.Info("furiclean starting",
		"version", Version,
		"retries", policy.MaxAttempts,
		"force", detect == nil,
	)

	backend := clip.New()
	defer backend.Close()

	c := cleaner.New(backend, furigana.New(detect), policy)
	c.Run(ctx)

	st := c.Stats()
	slog.Info("furiclean stopped",
		"events", st.Events,
		"rewritten", st.Rewritten,
		"unchanged", st.Unchanged,
		"read_failures", st.ReadFailures,
		"write_failures", st.WriteFailures,
		"watch_errors", st.WatchErrors,
	)
	return nil
}
