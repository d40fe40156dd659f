package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	query "github.com/izayoijiichan/izayoi-data-query"
	"github.com/izayoijiichan/izayoi-data-query/internal/config"
	"github.com/izayoijiichan/izayoi-data-query/internal/document"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <statement.yaml>",
		Short: "Compile a statement document into SQL",
		Long: `Compile a YAML statement document into SQL text and its bind parameters.

Settings come from flags, IZQUERY_* environment variables, the config
file and defaults, in that order of precedence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0])
		},
	}

	cmd.Flags().String("dialect", "", "Target database (none|mysql|oracle|pgsql|sqlite|sqlserver)")
	cmd.Flags().Int("rdb-version", 0, "Database version, e.g. 2016 for SQL Server 2016 (0 for latest)")
	cmd.Flags().Bool("format", false, "Put clauses and list items on their own lines")
	cmd.Flags().Int("indent", query.DefaultIndentSpace, "Indent width of formatted list items")
	cmd.Flags().Bool("before-comma", false, "Lead continuation lines with the comma")
	cmd.Flags().String("quotes", "", "Identifier quotation marks, e.g. [] or none (default: per dialect)")
	cmd.Flags().StringP("output", "o", "", "Output format (text|json)")

	_ = cmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"none", "mysql", "oracle", "pgsql", "sqlite", "sqlserver"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runBuild(cmd *cobra.Command, path string) error {
	cfg := getConfig(cmd.Context())
	logger := getLogger(cmd.Context())

	option, err := cfg.QueryOption()
	if err != nil {
		return err
	}
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	stmt, err := doc.Statement()
	if err != nil {
		return errors.Wrapf(err, "statement in %s", path)
	}

	b := query.NewQueryBuilder(option).WithLogger(logger)
	if cfg.Verbose {
		b.Debug(path)
	}
	if err := b.Build(stmt); err != nil {
		return errors.Wrapf(err, "build %s", path)
	}
	logger.Debug("statement built",
		zap.String("file", path),
		zap.Stringer("dialect", option.RdbKind),
		zap.Int("parameters", b.Parameters().Len()),
	)

	if cfg.Output == config.OutputJSON {
		return writeJSON(cmd.OutOrStdout(), b)
	}
	return writeText(cmd.OutOrStdout(), b)
}

type parameterOutput struct {
	Name   string       `json:"name"`
	DbType query.DbType `json:"dbType"`
	Value  any          `json:"value"`
}

type buildOutput struct {
	Query      string            `json:"query"`
	Parameters []parameterOutput `json:"parameters"`
}

func writeJSON(w io.Writer, b *query.QueryBuilder) error {
	out := buildOutput{
		Query:      b.Query(),
		Parameters: make([]parameterOutput, 0, b.Parameters().Len()),
	}
	for _, p := range b.Parameters().Items() {
		value := p.Value
		if value == query.DBNull {
			value = nil
		}
		out.Parameters = append(out.Parameters, parameterOutput{
			Name:   p.Name,
			DbType: p.DbType,
			Value:  value,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, b *query.QueryBuilder) error {
	if _, err := fmt.Fprintln(w, b.Query()); err != nil {
		return err
	}
	if b.Parameters().Len() == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range b.Parameters().Items() {
		fmt.Fprintf(tw, "%s\t%s\t%v\n", p.Name, p.DbType, p.Value)
	}
	return tw.Flush()
}
