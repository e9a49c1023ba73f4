/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [new_display_name]",
	Short: "Gets or sets the display name.",
	Long: `Manages configuration for the mural client.
If called without arguments, it displays the current display name.
If called with an argument, it stores the display name in the config file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			if displayName == "" {
				fmt.Println("Display name is not set. Run 'mural config <name>' to set it.")
				return
			}
			fmt.Printf("Display Name: %s\n", displayName)
			return
		}

		newDisplayName := args[0]
		viper.Set(displayNameKey, newDisplayName)
		if err := viper.WriteConfig(); err != nil {
			// No config file yet; create one in the home directory.
			if err := viper.SafeWriteConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
				return
			}
		}
		fmt.Printf("Display name set to: %s\n", newDisplayName)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
