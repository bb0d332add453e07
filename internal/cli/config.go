package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "foodchooser")
	dataDir := filepath.Join(home, ".local", "share", "foodchooser")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'foodchooser config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Log your first meal: foodchooser log --dish \"Tacos\" --cuisine Mexican --cost 12")
	fmt.Println("  2. Set a budget: foodchooser budget --min 10 --max 35")
	fmt.Println("  3. Crack the egg: foodchooser egg")
	fmt.Println()
	fmt.Println("To enable weather-aware scoring, set [weather] enabled = true")
	fmt.Println("and your coordinates in the config file")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'foodchooser config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# foodchooser configuration

[household]
id = "default"  # shared by everyone logging into the same database

[database]
path = "~/.local/share/foodchooser/foodchooser.db"

[weather]
enabled = false  # weather-aware scoring via Open-Meteo (no API key needed)
latitude = 0.0
longitude = 0.0

[display]
currency = "$"
`
