// tinydf reads csv into a Dataframe and prints it as a table, JSON, or a YAML schema.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tinydf/tinydf"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("tinydf")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:     "tinydf",
		Short:   "tinydf - inspect csv files as orientation-aware dataframes",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(v.GetString("log-level"))
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().String("orientation", "horizontal", "orientation of the csv: horizontal (one row per line) or vertical (one column per line)")
	root.PersistentFlags().String("delimiter", ",", "field delimiter")
	root.PersistentFlags().String("schema", "", "YAML schema file; if set, the csv has no header and cells are validated against it")
	root.PersistentFlags().Bool("no-inference", false, "read every cell as a string")
	root.PersistentFlags().Bool("decimal", false, "infer non-integer numbers as decimals")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newShowCmd(v), newJSONCmd(v), newSchemaCmd(v))
	return root
}

func newShowCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a csv file as a table",
		Long: `Print a csv file as a table. Use "-" or no argument to read from stdin.

Examples:
  tinydf show data.csv
  tinydf show --orientation vertical --transpose data.csv
  TINYDF_MAX_ROWS=10 tinydf show data.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := readDataframe(v, args)
			if err != nil {
				return err
			}
			if v.GetBool("transpose") {
				df.Transpose()
			}
			if n := v.GetInt("max-rows"); n > 0 {
				tinydf.SetOptionMaxRows(n)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), df)
			return err
		},
	}
	cmd.Flags().Bool("transpose", false, "swap the axes before printing")
	cmd.Flags().Int("max-rows", 0, "maximum number of rows to print (default 50)")
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

func newJSONCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Print a csv file as JSON",
		Long: `Print a csv file as JSON.

Projections:
  dataset   nested records, including column names
  objects   one object per record, keyed by column name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projection, err := parseProjection(v.GetString("projection"))
			if err != nil {
				return err
			}
			df, err := readDataframe(v, args)
			if err != nil {
				return err
			}
			b, err := df.ToJSON(projection)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	cmd.Flags().String("projection", "dataset", "JSON projection: dataset or objects")
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

func newSchemaCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [file]",
		Short: "Print the column schema of a csv file as YAML",
		Long: `Print the column schema of a csv file as YAML.
The output can be passed back to other commands with --schema.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := readDataframe(v, args)
			if err != nil {
				return err
			}
			return tinydf.WriteSchema(cmd.OutOrStdout(), df.Columns())
		},
	}
}

func readDataframe(v *viper.Viper, args []string) (*tinydf.Dataframe, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	options, err := readOptions(v)
	if err != nil {
		return nil, err
	}
	df, err := tinydf.ReadCSV(r, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	zap.L().Debug("read dataframe",
		zap.Stringer("orientation", df.Orientation()),
		zap.Strings("columns", df.ColumnNames()))
	return df, nil
}

func readOptions(v *viper.Viper) ([]tinydf.ReadOption, error) {
	orientation := tinydf.ParseOrientation(v.GetString("orientation"))
	if orientation == tinydf.Raw {
		return nil, fmt.Errorf("invalid orientation %q: must be horizontal or vertical", v.GetString("orientation"))
	}
	options := []tinydf.ReadOption{tinydf.ReadOptionOrientation(orientation)}

	delimiter := v.GetString("delimiter")
	if utf8.RuneCountInString(delimiter) != 1 {
		return nil, fmt.Errorf("invalid delimiter %q: must be a single character", delimiter)
	}
	sep, _ := utf8.DecodeRuneInString(delimiter)
	options = append(options, tinydf.ReadOptionDelimiter(sep))

	if path := v.GetString("schema"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open schema: %w", err)
		}
		defer f.Close()
		columns, err := tinydf.ReadSchema(f)
		if err != nil {
			return nil, err
		}
		options = append(options, tinydf.ReadOptionSchema(columns))
	}
	if v.GetBool("no-inference") {
		options = append(options, tinydf.ReadOptionNoInference())
	}
	if v.GetBool("decimal") {
		options = append(options, tinydf.ReadOptionDecimal())
	}
	return options, nil
}

func parseProjection(s string) (tinydf.JSONProjection, error) {
	switch strings.ToLower(s) {
	case "dataset", "":
		return tinydf.JSONDataset, nil
	case "objects", "list", "list-object":
		return tinydf.JSONListObject, nil
	}
	return 0, fmt.Errorf("invalid projection %q: must be dataset or objects", s)
}

func setupLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	tinydf.SetOptionLogger(l)
	return nil
}
