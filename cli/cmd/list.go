/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Displays the current mural, newest first.",
	Long:  `Fetches the full list of recadinhos from the server and prints them newest first.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		messages, err := muralClient.ListMessages(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching messages: %v\n", err)
			return
		}

		if len(messages) == 0 {
			fmt.Println("Ainda não tem recadinhos... Seja o primeiro!")
			return
		}
		for _, msg := range messages {
			fmt.Printf("[%s] %s: %s\n",
				msg.CreatedAt.Local().Format("02/01/2006 15:04:05"),
				msg.Author,
				msg.Body)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
