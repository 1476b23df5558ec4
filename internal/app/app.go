package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/moneyhiver/hiver/internal/clients/binance"
	"github.com/moneyhiver/hiver/internal/clients/finnhub"
	"github.com/moneyhiver/hiver/internal/clients/openexchange"
	"github.com/moneyhiver/hiver/internal/common"
	"github.com/moneyhiver/hiver/internal/interfaces"
	"github.com/moneyhiver/hiver/internal/notify"
	"github.com/moneyhiver/hiver/internal/services/alert"
	"github.com/moneyhiver/hiver/internal/services/calculate"
	"github.com/moneyhiver/hiver/internal/services/market"
)

// App holds all initialized clients and services. It is the shared core
// behind cmd/hiver-server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	RateProvider     interfaces.RateProvider
	CryptoClient     interfaces.CryptoClient
	StockClient      interfaces.StockClient
	Notifier         interfaces.Notifier
	CalculateService interfaces.CalculateService
	MarketService    interfaces.MarketService
	AlertService     interfaces.AlertService
	StartupTime      time.Time

	alertCancel context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, clients and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Load configuration - check provided path, HIVER_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("HIVER_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "hiver.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/hiver.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	if config.Clients.OpenExchange.AppID == "" {
		logger.Warn().Msg("Open Exchange Rates app ID not configured - currency features will be unavailable")
	}
	if config.Clients.Finnhub.APIKey == "" {
		logger.Warn().Msg("Finnhub API key not configured - stock quotes will be unavailable")
	}
	if !config.SMTP.Configured() {
		logger.Warn().Msg("SMTP account not configured - alert emails will not be sent")
	}

	rateClient := openexchange.NewClient(config.Clients.OpenExchange.AppID,
		openexchange.WithBaseURL(config.Clients.OpenExchange.BaseURL),
		openexchange.WithLogger(logger),
		openexchange.WithRateLimit(config.Clients.OpenExchange.RateLimit),
		openexchange.WithTimeout(config.Clients.OpenExchange.GetTimeout()),
	)
	cryptoClient := binance.NewClient(
		binance.WithBaseURL(config.Clients.Binance.BaseURL),
		binance.WithLogger(logger),
		binance.WithRateLimit(config.Clients.Binance.RateLimit),
		binance.WithTimeout(config.Clients.Binance.GetTimeout()),
	)
	stockClient := finnhub.NewClient(config.Clients.Finnhub.APIKey,
		finnhub.WithBaseURL(config.Clients.Finnhub.BaseURL),
		finnhub.WithLogger(logger),
		finnhub.WithRateLimit(config.Clients.Finnhub.RateLimit),
		finnhub.WithTimeout(config.Clients.Finnhub.GetTimeout()),
	)

	notifier := notify.NewSMTPNotifier(config.SMTP, logger)

	calculateService := calculate.NewService(rateClient, logger)
	marketService := market.NewService(cryptoClient, stockClient, rateClient, logger)
	alertService := alert.NewService(alert.NewSubscriberStore(), cryptoClient, notifier, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		RateProvider:     rateClient,
		CryptoClient:     cryptoClient,
		StockClient:      stockClient,
		Notifier:         notifier,
		CalculateService: calculateService,
		MarketService:    marketService,
		AlertService:     alertService,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// StartAlertChecker launches the background alert checking goroutine.
func (a *App) StartAlertChecker() {
	svc, ok := a.AlertService.(*alert.Service)
	if !ok {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.alertCancel = cancel
	go svc.Run(ctx, a.Config.Alerts.GetCheckInterval())
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.alertCancel != nil {
		a.alertCancel()
		a.alertCancel = nil
	}
}
