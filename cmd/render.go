package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sockplot/internal/figures"
	"sockplot/internal/logging"
	"sockplot/internal/render"
)

func newRenderCmd() *cobra.Command {
	var outputDir string

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render benchmark charts",
		Long:  "Render the recorded benchmark measurements into PNG files",
	}
	renderCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "",
		"Directory to write chart files (default $SOCKPLOT_OUTPUT_DIR or the working directory)")

	for _, name := range figures.Names() {
		renderCmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("Render the %s chart", name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return renderFigures(cmd, resolveOutputDir(outputDir), name)
			},
		})
	}

	renderCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Render every chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderFigures(cmd, resolveOutputDir(outputDir), figures.Names()...)
		},
	})

	return renderCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range figures.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <chart>",
		Short: "Print a chart definition as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := figures.Describe(args[0])
			if err != nil {
				return err
			}
			out, err := desc.YAML()
			if err != nil {
				return fmt.Errorf("marshal description: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func resolveOutputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv("SOCKPLOT_OUTPUT_DIR"); dir != "" {
		return dir
	}
	return "."
}

func renderFigures(cmd *cobra.Command, dir string, names ...string) error {
	logger := logging.GetLogger()

	for _, name := range names {
		fig, err := figures.Build(name)
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"figure": name,
			"file":   fig.File,
		}).Debug("Rendering figure")

		path, err := render.Render(fig, dir)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", filepath.Base(path))
	}
	return nil
}
