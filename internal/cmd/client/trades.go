package client

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

// NewTradesCommand constructs the `trades` command group and subcommands.
func NewTradesCommand(baseURL BaseURLFunc) *cobra.Command {
	tradesCmd := &cobra.Command{Use: "trades", Short: "Trade history queries"}

	tradesCmd.AddCommand(
		newTradesLatestCommand(baseURL),
		newTradesListCommand(baseURL),
		newTradesSharesCommand(baseURL),
		newTradesNotionalCommand(baseURL),
		newTradesReturnsCommand(baseURL),
	)

	return tradesCmd
}

func newTradesLatestCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the most recently recorded purchase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return getAndPrint(baseURL() + "/v1/trades/latest")
		},
	}
}

func newTradesListCommand(baseURL BaseURLFunc) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's trades, optionally for one symbol",
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, _ := cmd.Flags().GetString("owner")
			symbol, _ := cmd.Flags().GetString("symbol")
			if owner == "" {
				return fmt.Errorf("--owner is required")
			}
			u := baseURL() + "/v1/trades/" + url.PathEscape(owner)
			if symbol != "" {
				u += "/" + url.PathEscape(symbol)
			}
			return getAndPrint(u)
		},
	}
	listCmd.Flags().String("owner", "", "Portfolio owner")
	listCmd.Flags().String("symbol", "", "Stock symbol (optional)")
	return listCmd
}

func newTradesSharesCommand(baseURL BaseURLFunc) *cobra.Command {
	sharesCmd := &cobra.Command{
		Use:   "shares",
		Short: "Show an owner's share counts, optionally for one symbol",
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, _ := cmd.Flags().GetString("owner")
			symbol, _ := cmd.Flags().GetString("symbol")
			if owner == "" {
				return fmt.Errorf("--owner is required")
			}
			u := baseURL() + "/v1/shares/" + url.PathEscape(owner)
			if symbol != "" {
				u += "/" + url.PathEscape(symbol)
			}
			return getAndPrint(u)
		},
	}
	sharesCmd.Flags().String("owner", "", "Portfolio owner")
	sharesCmd.Flags().String("symbol", "", "Stock symbol (optional)")
	return sharesCmd
}

func newTradesNotionalCommand(baseURL BaseURLFunc) *cobra.Command {
	notionalCmd := &cobra.Command{
		Use:   "notional",
		Short: "Show the total amount an owner has committed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, _ := cmd.Flags().GetString("owner")
			if owner == "" {
				return fmt.Errorf("--owner is required")
			}
			return getAndPrint(baseURL() + "/v1/notional/" + url.PathEscape(owner))
		},
	}
	notionalCmd.Flags().String("owner", "", "Portfolio owner")
	return notionalCmd
}

func newTradesReturnsCommand(baseURL BaseURLFunc) *cobra.Command {
	returnsCmd := &cobra.Command{
		Use:   "returns",
		Short: "Show portfolio return given its current value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, _ := cmd.Flags().GetString("owner")
			current, _ := cmd.Flags().GetFloat64("current-value")
			if owner == "" {
				return fmt.Errorf("--owner is required")
			}
			q := url.Values{"currentValue": []string{strconv.FormatFloat(current, 'f', -1, 64)}}
			return getAndPrint(baseURL() + "/v1/returns/" + url.PathEscape(owner) + "?" + q.Encode())
		},
	}
	returnsCmd.Flags().String("owner", "", "Portfolio owner")
	returnsCmd.Flags().Float64("current-value", 0, "Current portfolio market value")
	return returnsCmd
}
