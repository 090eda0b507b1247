package server

import (
	"context"
	"net/http"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/auctionhaus/go-auctionhaus/env"
	"github.com/auctionhaus/go-auctionhaus/middleware"
	"github.com/auctionhaus/go-auctionhaus/service/auction"
	"github.com/auctionhaus/go-auctionhaus/service/ledger"
	"github.com/auctionhaus/go-auctionhaus/service/logger"
	"github.com/auctionhaus/go-auctionhaus/service/metadata"
	"github.com/auctionhaus/go-auctionhaus/service/persist"
	"github.com/auctionhaus/go-auctionhaus/service/rtc"
)

func init() {
	env.RegisterValidation("PORT", "required")
	env.RegisterValidation("RPC_URL", "required")
	env.RegisterValidation("FACTORY_ADDRESS", "required,eth_addr")
	env.RegisterValidation("OPERATOR_PRIVATE_KEY", "required")
}

// Init runs the marketplace server, blocking until it exits.
func Init() {
	SetDefaults()
	initLogger()
	initSentry()

	router := CoreInit(context.Background())

	port := env.GetString("PORT")
	logger.For(nil).Infof("listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logger.For(nil).Fatalf("server exited: %s", err)
	}
}

// CoreInit dials the ledger, builds the clients and returns the configured
// router. Split from Init so tests can stand up the full handler chain
// without binding a port.
func CoreInit(ctx context.Context) *gin.Engine {
	logger.For(nil).Info("initializing server...")

	if env.GetString("ENV") != "production" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.ErrLogger(), middleware.Sentry(true), middleware.HandleCORS())

	ethClient, err := ethclient.Dial(env.GetString("RPC_URL"))
	if err != nil {
		logger.For(nil).Fatalf("dialing ledger node: %s", err)
	}

	ledgerClient, err := ledger.New(ethClient, ledger.Config{
		ChainID:        env.GetInt64("CHAIN_ID"),
		PrivateKey:     env.GetString("OPERATOR_PRIVATE_KEY"),
		FactoryAddress: persist.Address(env.GetString("FACTORY_ADDRESS")),
		PollInterval:   time.Duration(env.GetInt("RECEIPT_POLL_INTERVAL_MS")) * time.Millisecond,
		PollAttempts:   env.GetInt("RECEIPT_POLL_ATTEMPTS"),
	})
	if err != nil {
		logger.For(nil).Fatalf("initializing ledger client: %s", err)
	}

	metadataClient := metadata.NewClient(metadata.Config{
		APIBase:    env.GetString("PINATA_API_BASE"),
		JWT:        env.GetString("PINATA_JWT"),
		Gateways:   []string{env.GetString("IPFS_GATEWAY"), env.GetString("IPFS_FALLBACK_GATEWAY")},
		IPFSAPIURL: env.GetString("IPFS_API_URL"),
		Timeout:    time.Duration(env.GetInt("IPFS_TIMEOUT_SECONDS")) * time.Second,
	})

	hub := rtc.NewHub()
	go hub.Run(ctx)

	aggregator := auction.NewAggregator(ledgerClient, metadataClient, env.GetString("IPFS_GATEWAY"), env.GetInt("RESOLVER_WORKERS"))
	engine := auction.NewEngine(ledgerClient, metadataClient, aggregator, hub)

	return handlersInit(router, aggregator, engine, hub)
}

func handlersInit(router *gin.Engine, aggregator *auction.Aggregator, engine *auction.Engine, hub *rtc.Hub) *gin.Engine {
	router.GET("/health", healthCheck())

	auctions := router.Group("/auctions")
	auctions.GET("", listAuctions(aggregator))
	auctions.POST("", createAuction(engine))
	auctions.GET("/:id", getAuction(aggregator))
	auctions.POST("/:id/bid", placeBid(engine))
	auctions.POST("/:id/end", endAuction(engine))
	auctions.POST("/:id/claim-funds", claimFunds(engine))
	auctions.POST("/:id/claim-item", claimItem(engine))

	router.GET("/transactions", listTransactions(aggregator))

	router.GET("/ws/auctions/:id", rtc.Handler(hub, func(r *http.Request) bool {
		return middleware.IsOriginAllowed(r.Header.Get("Origin"))
	}))

	return router
}

// SetDefaults sets every env var the server reads. AutomaticEnv means a real
// environment variable of the same name always wins.
func SetDefaults() {
	viper.SetDefault("ENV", "local")
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("VERSION", "")
	viper.SetDefault("RPC_URL", "http://localhost:8545")
	viper.SetDefault("CHAIN_ID", 31337)
	viper.SetDefault("OPERATOR_PRIVATE_KEY", "")
	viper.SetDefault("FACTORY_ADDRESS", "")
	viper.SetDefault("RECEIPT_POLL_INTERVAL_MS", 2000)
	viper.SetDefault("RECEIPT_POLL_ATTEMPTS", 30)
	viper.SetDefault("PINATA_API_BASE", "https://api.pinata.cloud")
	viper.SetDefault("PINATA_JWT", "")
	viper.SetDefault("IPFS_GATEWAY", "https://gateway.pinata.cloud")
	viper.SetDefault("IPFS_FALLBACK_GATEWAY", "https://ipfs.io")
	viper.SetDefault("IPFS_API_URL", "")
	viper.SetDefault("IPFS_TIMEOUT_SECONDS", 15)
	viper.SetDefault("RESOLVER_WORKERS", 8)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("SENTRY_DSN", "")

	viper.AutomaticEnv()

	if env.GetString("ENV") != "local" {
		env.VarNotSetTo("OPERATOR_PRIVATE_KEY", "")
		env.VarNotSetTo("SENTRY_DSN", "")
	}
}

func initLogger() {
	logger.SetLoggerOptions(func(l *logrus.Logger) {
		l.SetReportCaller(true)

		if env.GetString("ENV") != "production" {
			l.SetLevel(logrus.DebugLevel)
		}

		if env.GetString("ENV") == "local" {
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		} else {
			// structured logs for log aggregation
			l.SetFormatter(&logrus.JSONFormatter{})
		}
	})
}

func initSentry() {
	if env.GetString("ENV") == "local" {
		logger.For(nil).Info("skipping sentry init")
		return
	}

	logger.For(nil).Info("initializing sentry...")

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              env.GetString("SENTRY_DSN"),
		Environment:      env.GetString("ENV"),
		Release:          env.GetString("VERSION"),
		TracesSampleRate: 0.2,
		AttachStacktrace: true,
	})
	if err != nil {
		logger.For(nil).Fatalf("failed to start sentry: %s", err)
	}
}
