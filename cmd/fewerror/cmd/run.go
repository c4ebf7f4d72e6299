package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wjt/fewerror/internal/app"
)

var postReplies bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bot against Telegram",
	Long: `Connects to Telegram and processes incoming messages. Without
--post-replies the bot only logs the replies it would have sent.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&postReplies, "post-replies", false,
		"post (rate-limited) replies, rather than just logging them")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("post-replies") {
		cfg.PostReplies = postReplies
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting",
		zap.String("identity", cfg.Identity),
		zap.Bool("post_replies", cfg.PostReplies))
	return a.Run(ctx)
}
