// Command brief walks through the project brief wizard in a terminal and
// submits it to a running portfolio backend.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/wizard"
	"portfolio-backend/pkg/contactclient"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "brief",
	Short: "Send a project brief to the portfolio contact endpoint",
	Long: `brief asks for your contact details, project scope, budget and timing,
shows a summary, and sends it as one contact message.

Type "<" at any prompt to go back a step, "-" to clear a value.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := contactclient.New(apiURL, contactclient.WithHTTPClient(&http.Client{Timeout: timeout}))
		return runBrief(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), clientGateway{client: client})
	},
}

func init() {
	defaultURL := os.Getenv("BRIEF_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.Flags().StringVar(&apiURL, "api", defaultURL, "base URL of the portfolio backend")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "timeout for the submission request")
}

// clientGateway adapts the HTTP client to the wizard's Gateway.
type clientGateway struct {
	client *contactclient.Client
}

func (g clientGateway) Submit(ctx context.Context, p wizard.Payload) error {
	return g.client.PostContact(ctx, contactclient.Request{
		Name:    p.Name,
		Email:   p.Email,
		Message: p.Message,
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
