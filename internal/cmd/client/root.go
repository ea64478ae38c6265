package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command for the trade-history client.
// It registers the trades and live command groups.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "tradehist",
		Short: "Trade history client commands",
	}
	root.AddCommand(NewTradesCommand(baseURL))
	root.AddCommand(NewLiveCommand(baseURL))
	return root
}
