/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/ponyo877/mural/cli/client"
	"github.com/ponyo877/mural/server/domain"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Opens the live mural in a tview-based interface",
	Long: `Opens a full-screen live view of the mural. New recadinhos from other
sessions appear at the top as they arrive; type at the bottom and press
Enter to leave your own.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		userName := displayName
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			userName = name
		}
		if strings.TrimSpace(userName) == "" {
			fmt.Fprintln(os.Stderr, "Error: no display name set. Run 'mural config <name>' or use --name.")
			os.Exit(1)
		}

		if err := runBoardUI(muralClient, userName); err != nil {
			fmt.Fprintf(os.Stderr, "Board UI error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoardUI(c *client.Client, userName string) error {
	app := tview.NewApplication()

	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)

	statusView := tview.NewTextView().
		SetDynamicColors(true)

	inputField := tview.NewInputField().
		SetLabel(userName + " ❯❯ ").
		SetFieldWidth(0).
		SetAcceptanceFunc(tview.InputFieldMaxLength(256))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(textView, 0, 1, false).
		AddItem(statusView, 1, 0, false).
		AddItem(inputField, 1, 0, true)

	app.SetRoot(flex, true).SetFocus(inputField)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setStatus := func(text string) {
		app.QueueUpdateDraw(func() {
			statusView.SetText(text)
		})
	}

	rec := client.NewReconciler(c, func(view []domain.Message) {
		app.QueueUpdateDraw(func() {
			textView.SetText(renderBoard(view))
			textView.ScrollToBeginning()
		})
	})

	// Baseline load and live subscription start together, like the page
	// does on mount. A failed baseline leaves the board empty but usable.
	go func() {
		if err := rec.Baseline(ctx); err != nil {
			setStatus(fmt.Sprintf("[red]Erro ao carregar recadinhos: %v", err))
		}
	}()
	go func() {
		if err := rec.Listen(ctx); err != nil && ctx.Err() == nil {
			setStatus(fmt.Sprintf("[red]Live subscription lost: %v", err))
		}
	}()

	// Submit on Enter. The reconciler guards re-entrancy and upserts the
	// created message itself, so the board updates even before the
	// broadcast echoes back.
	inputField.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := strings.TrimSpace(inputField.GetText())
		if text == "" {
			return
		}
		go func() {
			setStatus("Enviando...")
			if _, err := rec.Submit(ctx, userName, text); err != nil {
				if errors.Is(err, client.ErrSubmitInFlight) {
					return
				}
				setStatus(fmt.Sprintf("[red]Erro ao enviar: %v", err))
				return
			}
			setStatus("")
			app.QueueUpdateDraw(func() {
				inputField.SetText("")
			})
		}()
	})

	// Exit on Ctrl+C.
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			cancel()
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.Run(); err != nil {
		cancel()
		return err
	}

	cancel()
	return nil
}

func renderBoard(view []domain.Message) string {
	if len(view) == 0 {
		return "[gray]Ainda não tem recadinhos... Seja o primeiro!"
	}
	var b strings.Builder
	for _, msg := range view {
		fmt.Fprintf(&b, "[blue]%s[white]: %s\n[gray]%s\n\n",
			tview.Escape(msg.Author),
			tview.Escape(msg.Body),
			msg.CreatedAt.Local().Format("02/01/2006 15:04:05"))
	}
	return b.String()
}
