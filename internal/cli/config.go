package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raveheart1/autorel/internal/config"
	apperrors "github.com/raveheart1/autorel/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage autorel configuration",
	Long:  `Commands for creating and inspecting autorel configuration.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default project config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective merged configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command) error {
	path := config.ProjectConfigPath()
	if _, err := os.Stat(path); err == nil {
		return apperrors.NewArgumentError(
			fmt.Sprintf("config already exists at %s", path),
			"edit the existing file, or remove it first to regenerate")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "writing config template")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Configuration)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "encoding configuration")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
