package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"chat-agent/models"
	"chat-agent/services"
)

// replier is the part of the agent the ask command needs
type replier interface {
	Run(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error)
}

func newAskCmd() *cobra.Command {
	var history []string

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Answer a single message and print the Markdown reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return ask(cmd.Context(), a.agent, cmd.OutOrStdout(), strings.Join(args, " "), history)
		},
	}
	cmd.Flags().StringArrayVar(&history, "history", nil, "Prior turn, oldest first, alternating user and assistant (repeatable)")
	return cmd
}

func ask(ctx context.Context, agent replier, out io.Writer, message string, history []string) error {
	reply, err := agent.Run(ctx, models.NewChatRequest(message, history))
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", color.RedString("error [%s]:", services.ErrorKind(err)), err)
		return err
	}

	fmt.Fprintln(out, reply.Reply)
	return nil
}
