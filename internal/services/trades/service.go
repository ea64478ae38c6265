// Package tradesvc answers historical trade queries over the persisted
// purchase records. The HTTP controllers consume it; all portfolio math
// (share totals, notional, returns) lives here, the store only finds rows.
package tradesvc

import (
	"context"
	"errors"
	"fmt"

	mongostore "github.com/alutan/trade-history/internal/storage/mongo"
	logpkg "github.com/alutan/trade-history/pkg/log"
)

// ErrNoTrades is returned by portfolio math when the owner has no recorded
// trades to compute over.
var ErrNoTrades = errors.New("no trades recorded")

// TradeStore is the slice of the Mongo store this service reads.
type TradeStore interface {
	LatestBuy(ctx context.Context) (mongostore.StockPurchase, error)
	TradesByOwner(ctx context.Context, owner string) ([]mongostore.StockPurchase, error)
	TradesForSymbol(ctx context.Context, owner, symbol string) ([]mongostore.StockPurchase, error)
}

// Service provides the trade history query operations.
type Service struct {
	store  TradeStore
	logger logpkg.Logger
}

// New returns a Service using a default logger.
func New(store TradeStore) *Service {
	return NewWithLogger(store, nil)
}

// NewWithLogger constructs the service with an injected logger.
func NewWithLogger(store TradeStore, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("trades"))
	}
	return &Service{store: store, logger: logger}
}

// LatestBuy returns the most recently recorded purchase across all owners.
func (s *Service) LatestBuy(ctx context.Context) (mongostore.StockPurchase, error) {
	return s.store.LatestBuy(ctx)
}

// TradesByOwner returns the owner's full trade history.
func (s *Service) TradesByOwner(ctx context.Context, owner string) ([]mongostore.StockPurchase, error) {
	if owner == "" {
		return nil, errors.New("owner is required")
	}
	return s.store.TradesByOwner(ctx, owner)
}

// TradesForSymbol returns the owner's trades in one stock.
func (s *Service) TradesForSymbol(ctx context.Context, owner, symbol string) ([]mongostore.StockPurchase, error) {
	if owner == "" {
		return nil, errors.New("owner is required")
	}
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}
	return s.store.TradesForSymbol(ctx, owner, symbol)
}

// SymbolShares returns the net shares the owner holds of symbol. Sells are
// recorded as negative share counts so a plain sum nets out.
func (s *Service) SymbolShares(ctx context.Context, owner, symbol string) (int, error) {
	trades, err := s.TradesForSymbol(ctx, owner, symbol)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, t := range trades {
		total += t.Shares
	}
	return total, nil
}

// PortfolioShares returns net share counts per symbol for the owner.
func (s *Service) PortfolioShares(ctx context.Context, owner string) (map[string]int, error) {
	trades, err := s.TradesByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	shares := map[string]int{}
	for _, t := range trades {
		if t.Symbol == "" {
			continue
		}
		shares[t.Symbol] += t.Shares
	}
	return shares, nil
}

// TotalNotional returns the total amount the owner has committed across all
// trades. Records without a stored notional fall back to shares times price.
func (s *Service) TotalNotional(ctx context.Context, owner string) (float64, error) {
	trades, err := s.TradesByOwner(ctx, owner)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, t := range trades {
		n := t.Notional
		if n == 0 {
			n = float64(t.Shares) * t.Price
		}
		total += n
	}
	return total, nil
}

// ROI returns the percentage return of the owner's portfolio given its
// current market value.
func (s *Service) ROI(ctx context.Context, owner string, currentValue float64) (float64, error) {
	notional, err := s.TotalNotional(ctx, owner)
	if err != nil {
		return 0, err
	}
	if notional == 0 {
		return 0, fmt.Errorf("%w for %q", ErrNoTrades, owner)
	}
	return (currentValue - notional) / notional * 100, nil
}
