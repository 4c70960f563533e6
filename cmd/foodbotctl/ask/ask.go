package askcmder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const askLongDesc string = `Send one message to a running foodbot server and print the reply.

The reply's markdown subset (bold, line breaks) is rendered for the
terminal. Replies served by the rule-based fallback path are marked in
the footer, together with the gateway failure detail when there was one.

Examples:
  foodbotctl ask "what's the best biryani place?"
  foodbotctl ask --server http://10.0.0.5:3000 "track my order"
  foodbotctl ask --plain "payment options"`

const askShortDesc string = "Send a message to a foodbot server"

type askCommander struct {
	serverURL string
	plain     bool
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
}

var footerStyle = lipgloss.NewStyle().Faint(true)

func NewAskCmd() *cobra.Command {
	cmder := &askCommander{}

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: askShortDesc,
		Long:  askLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&cmder.serverURL, "server", "s", "http://localhost:3000", "Base URL of the foodbot server")
	cmd.Flags().BoolVar(&cmder.plain, "plain", false, "Print the raw reply without terminal rendering")

	return cmd
}

func (c *askCommander) run(cmd *cobra.Command, message string) error {
	resp, err := c.postMessage(message)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if c.plain {
		fmt.Fprintln(out, resp.Reply)
	} else {
		fmt.Fprint(out, render(resp.Reply))
	}

	footer := "source: " + resp.Source
	if resp.Error != "" {
		footer += " (" + resp.Error + ")"
	}
	fmt.Fprintln(out, footerStyle.Render(footer))

	return nil
}

// render converts the reply's markdown subset for the terminal. Glamour
// escapes anything HTML-shaped, which is exactly the treatment reply text
// needs. Rendering failures fall back to the raw reply.
func render(reply string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return reply + "\n"
	}

	rendered, err := renderer.Render(reply)
	if err != nil {
		return reply + "\n"
	}

	return rendered
}

func (c *askCommander) postMessage(message string) (*chatResponse, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	url := strings.TrimRight(c.serverURL, "/") + "/api/chat"
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &result, nil
}
