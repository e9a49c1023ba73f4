/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/ponyo877/mural/cli/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	displayName   string
	serverAddress string
	muralClient   *client.Client
)

const (
	displayNameKey   = "display_name"
	serverAddressKey = "server_address"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mural",
	Short: "Terminal client for the mural de recadinhos",
	Long: `mural is the terminal client for the real-time guestbook server.

It can fetch the board once (list), leave a recadinho (post), follow the
live channel (watch), or open a full-screen live board (board).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// serverAddress is loaded by initConfig before this runs.
		muralClient = client.New(serverAddress)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// one‑shot
	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
			return
		}
		return
	}

	// REPL
	fmt.Println("entering interactive mode, type 'exit' to quit")
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("❯❯❯ ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		args, _ := shellwords.Parse(line)
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
			return
		}
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mural.yaml)")
	rootCmd.PersistentFlags().String("name", "", "Display name used when posting recadinhos")
	rootCmd.PersistentFlags().String("server", "http://localhost:8080", "Address of the mural server (e.g., http://localhost:8080)")

	viper.BindPFlag(displayNameKey, rootCmd.PersistentFlags().Lookup("name"))
	viper.BindPFlag(serverAddressKey, rootCmd.PersistentFlags().Lookup("server"))
	viper.SetDefault(displayNameKey, "")
	viper.SetDefault(serverAddressKey, "http://localhost:8080")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mural" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mural")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults and environment are enough.
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}

	// Load values after all potential sources (defaults, flags, env, config file)
	displayName = viper.GetString(displayNameKey)
	serverAddress = viper.GetString(serverAddressKey)
}
