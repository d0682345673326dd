package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tdx "github.com/gotrs-io/tdx-go"
	"github.com/gotrs-io/tdx-go/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var v = viper.New()

// envKeyReplacer maps flag names like base-url to env keys like TDX_BASE_URL
var envKeyReplacer = strings.NewReplacer("-", "_")

var rootCmd = &cobra.Command{
	Use:   "tdx",
	Short: "TDX CLI - command line access to the TDX Web API",
	Long: `TDX Command Line Interface

Query and manage tickets, assets and people on a TDX instance from the
terminal. Credentials come from flags, TDX_-prefixed environment variables
or a config file, in that order of precedence.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

var (
	configFlag string
	debugFlag  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL of the TDX instance")
	rootCmd.PersistentFlags().String("username", "", "Username for password login")
	rootCmd.PersistentFlags().String("password", "", "Password for password login")
	rootCmd.PersistentFlags().String("beid", "", "Business entity ID for administrative login")
	rootCmd.PersistentFlags().String("web-services-key", "", "Web services key for administrative login")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(ticketCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(versionCmd)

	ticketCmd.AddCommand(ticketGetCmd)
	ticketCmd.AddCommand(ticketSearchCmd)
	assetCmd.AddCommand(assetGetCmd)
}

func initConfig(cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	v.SetEnvPrefix("TDX")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.SetConfigName(".tdx")
			v.SetConfigType("yaml")
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if v.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return nil
}

func newClient() (*tdx.Client, error) {
	baseURL := v.GetString("base-url")
	if baseURL == "" {
		return nil, fmt.Errorf("no base URL configured (--base-url, TDX_BASE_URL or config file)")
	}

	config := &tdx.Config{
		BaseURL: baseURL,
		Credentials: tdx.Credentials{
			UserName:       v.GetString("username"),
			Password:       v.GetString("password"),
			BEID:           v.GetString("beid"),
			WebServicesKey: v.GetString("web-services-key"),
		},
		Debug: v.GetBool("debug"),
	}

	log.Debug().Str("base_url", baseURL).Msg("creating client")
	return tdx.NewClient(config), nil
}

func printJSON(value interface{}) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the person record behind the configured credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		person, err := client.CurrentUser(ctx)
		if err != nil {
			return err
		}
		return printJSON(person)
	},
}

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Ticket operations",
}

var ticketGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a ticket by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ticket ID %q", args[0])
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		ticket, err := client.Tickets.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(ticket)
	},
}

var ticketSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search tickets by text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		tickets, err := client.Tickets.Search(ctx, &types.TicketSearch{
			SearchText: args[0],
			MaxResults: 25,
		})
		if err != nil {
			return err
		}
		log.Info().Int("count", len(tickets)).Msg("tickets found")
		return printJSON(tickets)
	},
}

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Asset operations",
}

var assetGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch an asset by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid asset ID %q", args[0])
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		asset, err := client.Assets.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(asset)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("TDX CLI %s\n", rootCmd.Version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
