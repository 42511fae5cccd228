package main

import (
	"fmt"
	"os"

	"github.com/amonks/issuepad/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the issuepad configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var (
	configInitToken    string
	configInitUsername string
	configInitForce    bool
)

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd)

	configInitCmd.Flags().StringVar(&configInitToken, "token", "", "GitHub API token")
	configInitCmd.Flags().StringVar(&configInitUsername, "username", "", "GitHub username whose repos are listed")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	cfg := &config.Config{}
	cfg.GitHub.Token = configInitToken
	cfg.GitHub.Username = configInitUsername
	cfg.UI.Sort = config.SortNewest

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote config to %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
