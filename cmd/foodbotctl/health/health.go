package healthcmder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

const healthShortDesc string = "Check that a foodbot server is up"

type healthCommander struct {
	serverURL string
}

func NewHealthCmd() *cobra.Command {
	cmder := &healthCommander{}

	cmd := &cobra.Command{
		Use:   "health",
		Short: healthShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.serverURL, "server", "s", "http://localhost:3000", "Base URL of the foodbot server")

	return cmd
}

func (c *healthCommander) run(cmd *cobra.Command) error {
	url := strings.TrimRight(c.serverURL, "/") + "/health"

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "server at %s is %s\n", c.serverURL, result.Status)

	return nil
}
