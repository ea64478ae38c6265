package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	clientcmd "github.com/alutan/trade-history/internal/cmd/client"
	serverrun "github.com/alutan/trade-history/internal/cmd/server"
	cfgpkg "github.com/alutan/trade-history/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tradehist",
		Short: "Trade history runtime CLI",
		Long:  "tradehist relays stock trades from Kafka to websocket clients and records them in MongoDB. This CLI manages the server and basic queries.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the trade-history server",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			httpAddr, _ := cmd.Flags().GetString("http")
			brokers, _ := cmd.Flags().GetStringSlice("kafka-brokers")
			topic, _ := cmd.Flags().GetString("kafka-topic")
			group, _ := cmd.Flags().GetString("kafka-group")
			mongoURI, _ := cmd.Flags().GetString("mongo-uri")
			mongoDB, _ := cmd.Flags().GetString("mongo-db")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			cfg := cfgpkg.Default()
			if configPath != "" {
				loaded, err := cfgpkg.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfgpkg.FromEnv(&cfg)
			if len(brokers) > 0 {
				cfg.Kafka.Brokers = brokers
			}
			if topic != "" {
				cfg.Kafka.Topic = topic
			}
			if group != "" {
				cfg.Kafka.Group = group
			}
			if mongoURI != "" {
				cfg.Mongo.URI = mongoURI
			}
			if mongoDB != "" {
				cfg.Mongo.Database = mongoDB
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if logFormat != "" {
				cfg.Log.Format = logFormat
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{HTTPAddr: httpAddr, Config: cfg}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	serverStartCmd.Flags().String("config", "", "Path to a JSON config file")
	serverStartCmd.Flags().String("http", "", "HTTP listen address (default :8080)")
	serverStartCmd.Flags().StringSlice("kafka-brokers", nil, "Kafka seed brokers (comma separated)")
	serverStartCmd.Flags().String("kafka-topic", "", "Kafka topic carrying stock purchases")
	serverStartCmd.Flags().String("kafka-group", "", "Kafka consumer group")
	serverStartCmd.Flags().String("mongo-uri", "", "MongoDB connection URI")
	serverStartCmd.Flags().String("mongo-db", "", "MongoDB database name")
	serverStartCmd.Flags().String("log-level", os.Getenv("TRADEHIST_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("TRADEHIST_LOG_FORMAT"), "Log format: text|json (default text)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// client commands
	rootCmd.AddCommand(clientcmd.NewTradesCommand(apiURL))
	rootCmd.AddCommand(clientcmd.NewLiveCommand(apiURL))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("TRADEHIST_HTTP"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
