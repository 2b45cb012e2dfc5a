// Package main provides the CLI entry point for sheetstd.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/sheetstd/pkg/sheetstd"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

type globalFlags struct {
	configFile string
	logLevel   string
	schema     string
	outputDir  string
	verbose    bool
	quiet      bool
	noColor    bool
}

type app struct {
	flags  globalFlags
	cfg    *Config
	log    zerolog.Logger
	engine *sheetstd.Engine
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "sheetstd",
		Short: "Standardize question spreadsheets against a canonical schema",
		Long: `sheetstd reconciles spreadsheets written by many authors against one
standard format template. It picks the working sheet, matches source
columns to schema fields, normalizes field values and writes cleaned,
optionally split, workbooks with a JSON journal of every decision.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "Config file (default: .sheetstd.yaml in . or $HOME)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVar(&a.flags.schema, "schema", "", "Standard format template (.xlsx)")
	pf.StringVarP(&a.flags.outputDir, "output-dir", "o", "", "Output folder")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Verbose output (debug logs)")
	pf.BoolVarP(&a.flags.quiet, "quiet", "q", false, "Only log warnings and errors")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "Disable colored log output")

	rootCmd.AddCommand(a.schemaCmd(), a.analyzeCmd(), a.processCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(viper.New(), a.flags.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.UpdateFromFlags(&a.flags)

	a.cfg = cfg
	a.log = newLogger(cfg, a.flags.logLevel, cmd.ErrOrStderr())
	a.engine = sheetstd.New(cfg.Options(), a.log)

	a.log.Debug().
		Str("config", cfg.ConfigFile).
		Str("schema", cfg.SchemaPath).
		Str("output_dir", cfg.OutputDir).
		Msg("configuration loaded")
	return nil
}

func (a *app) schemaCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the schema fields of the standard format template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := a.engine.SchemaFields()
			if err != nil {
				return err
			}
			if asJSON {
				return renderJSON(cmd.OutOrStdout(), fields, true)
			}
			return renderSchema(cmd.OutOrStdout(), fields)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func (a *app) analyzeCmd() *cobra.Command {
	var (
		sheet   string
		asJSON  bool
		pretty  bool
		suggest bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Describe the sheets and columns of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			analysis, err := a.engine.Analyze(inputPath, sheet)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if asJSON {
				return renderJSON(cmd.OutOrStdout(), analysis, pretty)
			}
			if err := renderAnalysis(cmd.OutOrStdout(), analysis); err != nil {
				return err
			}
			if !suggest {
				return nil
			}

			mapping, schema, err := a.suggestMapping(analysis)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return renderMapping(cmd.OutOrStdout(), schema, mapping)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&sheet, "sheet", "s", "", "Sheet name hint")
	f.BoolVar(&asJSON, "json", false, "Print JSON instead of tables")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.BoolVar(&suggest, "suggest", false, "Also print the proposed column mapping")
	return cmd
}

func (a *app) processCmd() *cobra.Command {
	var (
		mappingPath string
		split       string
		sheet       string
		sets        []string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Standardize a workbook and write the output files",
		Long: `Standardize a workbook against the schema and write one output workbook
per split group plus a JSON journal. Without --mapping the mapping is
proposed from the source column names.

Unmatched columns and unrecognized values are reported but do not fail
the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			var req models.ProcessRequest
			if mappingPath != "" {
				var err error
				if req, err = loadRequest(mappingPath); err != nil {
					return err
				}
			}
			if split != "" {
				req.SplitColumn = split
			}
			if sheet != "" {
				req.Sheet = sheet
			}

			custom, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			if len(custom) > 0 && req.CustomValues == nil {
				req.CustomValues = make(map[string]string, len(custom))
			}
			for _, field := range sortedKeys(custom) {
				req.CustomValues[field] = custom[field]
				a.log.Debug().Str("field", field).Str("value", custom[field]).Msg("custom value")
			}

			if mappingPath == "" {
				analysis, err := a.engine.Analyze(inputPath, req.Sheet)
				if err != nil {
					return fmt.Errorf("analysis failed: %w", err)
				}
				if req.Mapping, _, err = a.suggestMapping(analysis); err != nil {
					return err
				}
				a.log.Info().Int("fields", len(req.Mapping)).Msg("using proposed column mapping")
			}

			res, err := a.engine.Process(inputPath, req)
			if err != nil {
				return fmt.Errorf("processing failed: %w", err)
			}

			if len(res.Errors) > 0 {
				a.log.Warn().Int("count", len(res.Errors)).Msg("processing finished with issues")
			}
			if asJSON {
				return renderJSON(cmd.OutOrStdout(), res, true)
			}
			return renderResult(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&mappingPath, "mapping", "m", "", "Mapping file (YAML or JSON)")
	f.StringVar(&split, "split", "", "Source column whose values split the output")
	f.StringVarP(&sheet, "sheet", "s", "", "Sheet name hint")
	f.StringArrayVar(&sets, "set", nil, "Constant value for a schema field (Field=Value, repeatable)")
	f.BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

// suggestMapping proposes a mapping for the analyzed sheet's columns.
func (a *app) suggestMapping(analysis *models.Analysis) (models.MappingConfig, []string, error) {
	schema, err := a.engine.SchemaFields()
	if err != nil {
		return nil, nil, err
	}
	columns := make([]string, len(analysis.Columns))
	for i, c := range analysis.Columns {
		columns[i] = c.Name
	}
	mapping, err := a.engine.AutoMap(columns)
	if err != nil {
		return nil, nil, err
	}
	return mapping, schema, nil
}
