package cmd

import (
	"context"
	"fmt"
)

// SuggestCmd prints the suggested matter
type SuggestCmd struct {
	Route string `help:"Route to suggest for (defaults to the configured route)"`
}

// Run executes the suggest command
func (s *SuggestCmd) Run(cli *CLI) error {
	c := cli.Container
	route := s.Route
	if route == "" {
		route = c.Config.Route
	}

	suggestion, err := c.Suggestions.Suggest(context.Background(), route)
	if err != nil {
		return fmt.Errorf("failed to compute suggestion: %w", err)
	}
	if suggestion == nil {
		fmt.Println("No suggestion")
		return nil
	}

	fmt.Printf("%s (%s)\n", suggestion.MatterID, suggestion.Reason)
	return nil
}
