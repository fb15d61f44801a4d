package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tabulago/tabula/pkg/column"
	"github.com/tabulago/tabula/pkg/export"
	"github.com/tabulago/tabula/pkg/logger"
	"github.com/tabulago/tabula/pkg/sheet"
)

var version = "0.1.0"

// outputFlags configures where and how a command writes its result.
type outputFlags struct {
	Path        string
	Format      string
	Compression string
	Headers     bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Path, "output", "o", "", "Output path (default stdout)")
	cmd.Flags().StringVar(&o.Format, "format", "csv", "Output format (csv, json)")
	cmd.Flags().StringVar(&o.Compression, "compression", "none", "Output compression (none, gzip, zstd)")
	cmd.Flags().BoolVar(&o.Headers, "headers", true, "Include a header record in CSV output")
}

func (o *outputFlags) write(s *sheet.Sheet) error {
	opts := export.Options{
		Format:      export.Format(o.Format),
		Compression: export.Compression(o.Compression),
		Headers:     o.Headers,
	}
	if o.Path == "" {
		return export.Write(os.Stdout, s, opts)
	}
	return export.WriteFile(o.Path, s, opts)
}

func main() {
	var cfgFile, logLevel string

	root := &cobra.Command{
		Use:   "tabula",
		Short: "Tabula - Columnar table manipulation tool",
		Long: `Tabula reads delimited data into typed columnar tables and lets you
inspect, sort, convert and re-export them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %s: %w", cfgFile, err)
				}
			}
			return logger.Init(logger.Config{Level: logLevel, Encoding: "json", OutputPaths: []string{"stderr"}})
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")

	// Input flags are read through viper so a config file or TABULA_*
	// environment variables can supply them.
	root.PersistentFlags().String("delimiter", ",", "Input field delimiter")
	root.PersistentFlags().String("null-token", sheet.DefaultNullToken, "Token rendered for and parsed as a null cell")
	root.PersistentFlags().Bool("no-labels", false, "Treat the first record as data, not column labels")
	root.PersistentFlags().StringSlice("labels", nil, "Column labels to use instead of the first record")
	root.PersistentFlags().StringSlice("types", nil, "Column types (auto, text, integer, number, float, boolean)")
	root.PersistentFlags().Bool("trim", false, "Trim whitespace around fields")
	root.PersistentFlags().Bool("flexible", false, "Allow records of varying width")
	root.PersistentFlags().Int("primary", -1, "Primary column index, -1 for none")
	for _, name := range []string{"delimiter", "null-token", "no-labels", "labels", "types", "trim", "flexible", "primary"} {
		_ = viper.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("TABULA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Tabula v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(infoCmd())
	root.AddCommand(headCmd())
	root.AddCommand(sortCmd())
	root.AddCommand(convertCmd())
	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSheet builds a sheet from path using the viper-resolved input
// settings.
func loadSheet(path string) (*sheet.Sheet, error) {
	b := sheet.NewBuilder().
		Trim(viper.GetBool("trim")).
		Flexible(viper.GetBool("flexible")).
		NullToken(viper.GetString("null-token"))

	if d := viper.GetString("delimiter"); d != "" {
		runes := []rune(d)
		if len(runes) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", d)
		}
		b.Delimiter(runes[0])
	}

	switch {
	case len(viper.GetStringSlice("labels")) > 0:
		b.Labels(viper.GetStringSlice("labels"))
	case viper.GetBool("no-labels"):
		b.NoLabels()
	default:
		b.ReadLabels()
	}

	if names := viper.GetStringSlice("types"); len(names) > 0 {
		types := make([]sheet.ColumnType, 0, len(names))
		for _, name := range names {
			ct, err := parseColumnType(name)
			if err != nil {
				return nil, err
			}
			types = append(types, ct)
		}
		b.Types(types)
	}

	if primary := viper.GetInt("primary"); primary >= 0 {
		b.Primary(primary)
	}

	start := time.Now()
	s, err := b.FromPath(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded sheet",
		zap.String("path", path),
		zap.Int("width", s.Width()),
		zap.Int("height", s.Height()),
		zap.Duration("elapsed", time.Since(start)))
	return s, nil
}

func parseColumnType(name string) (sheet.ColumnType, error) {
	switch strings.ToLower(name) {
	case "auto":
		return sheet.TypeAuto, nil
	case "text":
		return sheet.TypeText, nil
	case "integer":
		return sheet.TypeInteger, nil
	case "number":
		return sheet.TypeNumber, nil
	case "float":
		return sheet.TypeFloat, nil
	case "boolean":
		return sheet.TypeBoolean, nil
	}
	return sheet.TypeAuto, fmt.Errorf("unknown column type %q", name)
}

func parseKind(name string) (column.Kind, error) {
	switch strings.ToLower(name) {
	case "text":
		return column.KindText, nil
	case "i32":
		return column.KindI32, nil
	case "u32":
		return column.KindU32, nil
	case "int":
		return column.KindInt, nil
	case "uint":
		return column.KindUint, nil
	case "f32":
		return column.KindF32, nil
	case "f64":
		return column.KindF64, nil
	case "bool":
		return column.KindBool, nil
	}
	return column.KindNone, fmt.Errorf("unknown column kind %q", name)
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show sheet dimensions and column kinds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSheet(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d columns x %d rows\n", args[0], s.Width(), s.Height())
			if primary, ok := s.Primary(); ok {
				fmt.Printf("primary column: %d\n", primary)
			}
			for i, h := range s.Headers() {
				label := h.Label
				if !h.Labeled {
					label = "(unlabeled)"
				}
				fmt.Printf("  %3d  %-6s %s\n", i, h.Kind, label)
			}
			return nil
		},
	}
}

func headCmd() *cobra.Command {
	var n int
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "head FILE",
		Short: "Show the first rows of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSheet(args[0])
			if err != nil {
				return err
			}
			for s.Height() > n {
				if err := s.PopRow(); err != nil {
					return err
				}
			}
			return out.write(s)
		},
	}
	cmd.Flags().IntVarP(&n, "rows", "n", 10, "Number of rows to keep")
	out.register(cmd)
	return cmd
}

func sortCmd() *cobra.Command {
	var byColumn, byRow int
	var desc, cols bool
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "sort FILE",
		Short: "Sort rows or columns",
		Long: `Sort rows by a key column, or columns by a key row with --cols.
Without --by-column the primary column is the sort key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSheet(args[0])
			if err != nil {
				return err
			}

			switch {
			case cols && desc:
				err = s.SortColsByDesc(byRow)
			case cols:
				err = s.SortColsBy(byRow)
			case byColumn >= 0 && desc:
				err = s.SortRowsByDesc(byColumn)
			case byColumn >= 0:
				err = s.SortRowsBy(byColumn)
			case desc:
				err = s.SortRowsDesc()
			default:
				err = s.SortRows()
			}
			if err != nil {
				return err
			}
			return out.write(s)
		},
	}
	cmd.Flags().IntVar(&byColumn, "by-column", -1, "Column index to sort rows by (default: primary column)")
	cmd.Flags().IntVar(&byRow, "by-row", 0, "Row index to sort columns by, with --cols")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort in descending order")
	cmd.Flags().BoolVar(&cols, "cols", false, "Sort columns instead of rows")
	out.register(cmd)
	return cmd
}

func convertCmd() *cobra.Command {
	var colIdx int
	var toName string
	var force bool
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a column to another kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := parseKind(toName)
			if err != nil {
				return err
			}

			s, err := loadSheet(args[0])
			if err != nil {
				return err
			}

			if force {
				err = s.ConvertColUnchecked(colIdx, to)
			} else {
				err = s.ConvertCol(colIdx, to)
			}
			if err != nil {
				return err
			}
			return out.write(s)
		},
	}
	cmd.Flags().IntVar(&colIdx, "column", 0, "Column index to convert")
	cmd.Flags().StringVar(&toName, "to", "", "Target kind (text, i32, u32, int, uint, f32, f64, bool)")
	cmd.Flags().BoolVar(&force, "force", false, "Convert even when values may not survive, nulling failures")
	_ = cmd.MarkFlagRequired("to")
	out.register(cmd)
	return cmd
}

func exportCmd() *cobra.Command {
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Re-export a sheet in another format or compression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSheet(args[0])
			if err != nil {
				return err
			}
			return out.write(s)
		},
	}
	out.register(cmd)
	return cmd
}
