/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ponyo877/mural/server/domain"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follows the mural live channel.",
	Long: `Opens the live subscription and prints every new recadinho as it is
broadcast, until interrupted with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err := muralClient.Listen(ctx, func(event domain.Event) {
			msg := event.Data
			fmt.Printf("[%s] %s: %s\n",
				msg.CreatedAt.Local().Format("15:04:05"),
				msg.Author,
				msg.Body)
		})
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Error on live subscription: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
