package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjt/fewerror/internal/adapters/prose"
	"github.com/wjt/fewerror/internal/app"
	"github.com/wjt/fewerror/internal/domain/grammar"
	"github.com/wjt/fewerror/internal/domain/lexicon"
	"github.com/wjt/fewerror/internal/domain/reply"
)

var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Run the correction engine over text and print the result",
	Long: `Analyses the given text (or each line of stdin when no text is
given) and prints the corrections and the reply the bot would send. No
state is consulted or written.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}
	lex, err := lexicon.LoadFiles(cfg.MassNounList, cfg.BannedWordList)
	if err != nil {
		return err
	}
	engine := grammar.NewEngine(prose.NewTagger(), lex)

	if len(args) > 0 {
		return checkOne(engine, strings.Join(args, " "))
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := checkOne(engine, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func checkOne(engine *grammar.Engine, text string) error {
	corrections, err := engine.FindCorrections(text)
	if err != nil {
		return err
	}
	if len(corrections) == 0 {
		fmt.Println("[speechless]")
		return nil
	}
	fmt.Printf("--> %s.\n", reply.Format(corrections))
	return nil
}
