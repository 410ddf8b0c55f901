// lasfmt rewrites the header of LAS 2.0 well-log files with column-aligned
// layout. It never converts anything: input and output are the same format,
// only the whitespace changes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	las "github.com/wellstack/go-las"
)

type fieldConfig struct {
	Align       string `yaml:"align"`
	LeftMargin  int    `yaml:"left_margin"`
	RightMargin int    `yaml:"right_margin"`
}

type styleConfig struct {
	Mnem            *fieldConfig `yaml:"mnem"`
	Data            *fieldConfig `yaml:"data"`
	Desc            *fieldConfig `yaml:"desc"`
	UniformSections *bool        `yaml:"uniform_sections"`
}

func loadStyle(path string) (las.Style, error) {
	style := las.DefaultStyle()
	if path == "" {
		return style, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return style, err
	}
	var cfg styleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return style, fmt.Errorf("parsing %s: %w", path, err)
	}

	apply := func(dst *las.FieldStyle, src *fieldConfig) error {
		if src == nil {
			return nil
		}
		align, err := las.ParseAlignment(src.Align)
		if err != nil {
			return err
		}
		*dst = las.FieldStyle{
			Align:       align,
			LeftMargin:  src.LeftMargin,
			RightMargin: src.RightMargin,
		}
		return nil
	}
	if err := apply(&style.Mnem, cfg.Mnem); err != nil {
		return style, err
	}
	if err := apply(&style.Data, cfg.Data); err != nil {
		return style, err
	}
	if err := apply(&style.Desc, cfg.Desc); err != nil {
		return style, err
	}
	if cfg.UniformSections != nil {
		style.UniformSections = *cfg.UniformSections
	}
	return style, nil
}

func newRootCommand() *cobra.Command {
	var (
		write      bool
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "lasfmt [flags] FILE...",
		Short: "Reformat LAS 2.0 well-log headers with aligned columns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				var err error
				logger, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync() //nolint:errcheck
			}

			style, err := loadStyle(configPath)
			if err != nil {
				return err
			}

			for _, path := range args {
				doc, err := las.ReadFile(path, las.WithLogger(logger))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				doc.Header.Layout = las.PrettyLayout(doc.Header, style)
				out, err := doc.Compose(las.WithLogger(logger))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if write {
					if err := os.WriteFile(path, out, 0o644); err != nil {
						return err
					}
					continue
				}
				if _, err := cmd.OutOrStdout().Write(out); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place instead of printing to stdout")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML style configuration file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log codec debug events")
	cmd.SilenceUsage = true
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lasfmt:", err)
		os.Exit(1)
	}
}
