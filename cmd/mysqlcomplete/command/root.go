// Package command implements the mysqlcomplete CLI: a cobra root command
// with viper-bound flags for the caret position, default schema, keyword
// casing, cache fixture path and logging, wired to package completion.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/antlr4-go/antlr/v4"
	mysql "github.com/bytebase/mysql-parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rebelice/mysqlcomplete/completion"
	"github.com/rebelice/mysqlcomplete/internal/cache"
	"github.com/rebelice/mysqlcomplete/internal/logging"
)

// NewRootCommand builds the mysqlcomplete root command.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "mysqlcomplete [file]",
		Short: "Compute MySQL code-completion proposals for a caret position",
		Long: `mysqlcomplete reads a SQL buffer (from a file argument or stdin), parses it
with the MySQL grammar, and prints the ordered completion proposals legal at
the given caret position, backed by a metadata cache fixture.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(v.GetString("log-level"), v.GetString("log-format"))
			return runComplete(cmd, args, v)
		},
	}

	flags := root.PersistentFlags()
	flags.Int("line", 0, "0-based caret line")
	flags.Int("column", 0, "0-based caret column (byte offset within the line)")
	flags.String("default-schema", "", "default schema used when a reference is unqualified")
	flags.Bool("uppercase-keywords", false, "render keyword proposals in upper case")
	flags.String("cache-fixture", "", "path to a YAML metadata-cache fixture (see internal/cache.LoadFixture)")
	flags.String("functions", "", "whitespace-delimited list of built-in runtime function names")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("MYSQLCOMPLETE")
	v.AutomaticEnv()

	return root
}

func runComplete(cmd *cobra.Command, args []string, v *viper.Viper) error {
	text, err := readSource(args)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	mc, err := loadCache(v.GetString("cache-fixture"))
	if err != nil {
		return fmt.Errorf("load cache fixture: %w", err)
	}

	input := antlr.NewInputStream(text)
	lexer := mysql.NewMySQLLexer(input)
	tokens := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	parser := mysql.NewMySQLParser(tokens)

	proposals := completion.GetCodeCompletionList(
		v.GetInt("line"),
		v.GetInt("column"),
		v.GetString("default-schema"),
		v.GetBool("uppercase-keywords"),
		parser,
		v.GetString("functions"),
		mc,
	)

	for _, p := range proposals {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Kind, p.Label)
	}
	return nil
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadCache(fixturePath string) (cache.MetadataCache, error) {
	if fixturePath == "" {
		return cache.NewMemory(), nil
	}
	return cache.LoadFixture(fixturePath)
}
