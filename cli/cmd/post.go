/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post <message...>",
	Short: "Leaves a recadinho on the mural.",
	Long: `Posts a new recadinho to the mural server. The author defaults to the
display name from the config file; override it with --name.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		author := displayName
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			author = name
		}
		if strings.TrimSpace(author) == "" {
			fmt.Fprintln(os.Stderr, "Error: no display name set. Run 'mural config <name>' or use --name.")
			return
		}
		body := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		message, err := muralClient.CreateMessage(ctx, author, body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error posting message: %v\n", err)
			return
		}
		fmt.Printf("Recadinho enviado as %s (%s)\n", message.Author, message.ID)
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
}
