// Package alert tracks price alert subscriptions and fires a one-shot email
// when a watched asset crosses its target price.
package alert

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moneyhiver/hiver/internal/clients/binance"
	"github.com/moneyhiver/hiver/internal/common"
	"github.com/moneyhiver/hiver/internal/interfaces"
	"github.com/moneyhiver/hiver/internal/models"
)

// assetSymbols maps the assets alerts may watch to their Binance symbols.
var assetSymbols = map[string]string{
	"BTC": binance.SymbolBTC,
	"ETH": binance.SymbolETH,
}

// Service implements AlertService. Alerts are one-shot: once the target
// price is reached and the email sent, the subscription is removed.
type Service struct {
	store    *SubscriberStore
	crypto   interfaces.CryptoClient
	notifier interfaces.Notifier
	logger   *common.Logger
}

// NewService creates a new alert service.
func NewService(store *SubscriberStore, crypto interfaces.CryptoClient, notifier interfaces.Notifier, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		store:    store,
		crypto:   crypto,
		notifier: notifier,
		logger:   logger,
	}
}

// Subscribe registers a price alert for an email address, replacing any
// existing alert for the same address.
func (s *Service) Subscribe(ctx context.Context, email, asset string, targetPrice float64) (*models.AlertSubscription, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	asset = strings.ToUpper(strings.TrimSpace(asset))

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address %q", email)
	}
	if _, ok := assetSymbols[asset]; !ok {
		return nil, fmt.Errorf("unsupported asset %q, expected one of BTC, ETH", asset)
	}
	if targetPrice <= 0 {
		return nil, fmt.Errorf("target price must be positive, got %v", targetPrice)
	}

	sub := &models.AlertSubscription{
		ID:          uuid.New().String(),
		Email:       email,
		Asset:       asset,
		TargetPrice: targetPrice,
		CreatedAt:   time.Now(),
	}
	s.store.Put(sub)

	s.logger.Info().
		Str("email", email).
		Str("asset", asset).
		Float64("target", targetPrice).
		Msg("Alert subscribed")

	return sub, nil
}

// Unsubscribe removes the alert for an email, reporting whether one existed.
func (s *Service) Unsubscribe(ctx context.Context, email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	removed := s.store.Delete(email)
	if removed {
		s.logger.Info().Str("email", email).Msg("Alert unsubscribed")
	}
	return removed
}

// List returns the active subscriptions, newest first.
func (s *Service) List(ctx context.Context) []*models.AlertSubscription {
	subs := s.store.All()
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs
}

// Run checks subscriptions on a fixed interval until the context is
// cancelled. Intended to run as a background goroutine.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", interval).Msg("Alert checker: started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Alert checker: stopped")
			return
		case <-ticker.C:
			s.checkOnce(ctx)
		}
	}
}

// checkOnce fetches the current price for each watched asset and fires the
// alerts whose targets have been reached.
func (s *Service) checkOnce(ctx context.Context) {
	subs := s.store.All()
	if len(subs) == 0 {
		return
	}

	prices := make(map[string]float64)
	for asset, symbol := range assetSymbols {
		price, err := s.crypto.GetTickerPrice(ctx, symbol)
		if err != nil {
			s.logger.Warn().Err(err).Str("asset", asset).Msg("Alert check: price fetch failed")
			continue
		}
		prices[asset] = price
	}

	for _, sub := range subs {
		price, ok := prices[sub.Asset]
		if !ok || price < sub.TargetPrice {
			continue
		}

		msg := models.Message{
			To:      sub.Email,
			Subject: fmt.Sprintf("🚀 %s reached $%.2f!", sub.Asset, price),
			Body: fmt.Sprintf("%s is now trading at $%.2f, above your target of $%.2f.",
				sub.Asset, price, sub.TargetPrice),
		}
		if err := s.notifier.Send(ctx, msg); err != nil {
			s.logger.Warn().Err(err).Str("email", sub.Email).Msg("Alert send failed, will retry next tick")
			continue
		}

		s.store.Delete(sub.Email)
		s.logger.Info().
			Str("email", sub.Email).
			Str("asset", sub.Asset).
			Float64("price", price).
			Msg("Alert fired")
	}
}

var _ interfaces.AlertService = (*Service)(nil)
