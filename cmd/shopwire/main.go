package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shopwire/shopwire-go/client"
	"github.com/shopwire/shopwire-go/internal/config"
)

var (
	configPath string
	debug      bool
)

const commandTimeout = 60 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shopwire",
		Short: "Shopwire CLI for inspecting and updating store data",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("SHOPWIRE_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./config.yaml, ~/.shopwire, /etc/shopwire)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newListProductsCmd())
	rootCmd.AddCommand(newGetProductCmd())
	rootCmd.AddCommand(newListOrdersCmd())
	rootCmd.AddCommand(newGetOrderCmd())
	rootCmd.AddCommand(newListCustomersCmd())
	rootCmd.AddCommand(newBatchUpdateProductsCmd())

	return rootCmd
}

// newStoreClient loads the CLI config and builds a client from it.
func newStoreClient() (*client.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	config.SetLogLevel(config.ParseLogLevel(cfg.Logging.Level))
	if debug {
		config.SetLogLevel(zerolog.DebugLevel)
	}

	return client.New(
		cfg.Store.URL,
		cfg.Store.ConsumerKey,
		cfg.Store.ConsumerSecret,
		client.WithVersion(cfg.Store.Version),
	)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func newListProductsCmd() *cobra.Command {
	var status, search string
	var all bool

	cmd := &cobra.Command{
		Use:   "list-products",
		Short: "List products, optionally filtered by status or search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newStoreClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			params := client.Params{}
			if status != "" {
				params["status"] = status
			}
			if search != "" {
				params["search"] = search
			}

			start := time.Now()
			var products []client.Product
			if all {
				products, err = c.ListAllProducts(ctx, params)
			} else {
				products, err = c.ListProducts(ctx, params)
			}
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("list products failed")
				return err
			}

			log.Debug().Int("count", len(products)).Dur("elapsed", time.Since(start)).Msg("list products completed")
			return printJSON(products)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (publish, draft, ...)")
	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().BoolVar(&all, "all", false, "Drain every page instead of the first")
	return cmd
}

func newGetProductCmd() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "get-product",
		Short: "Fetch a single product by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id <= 0 {
				return fmt.Errorf("--id is required")
			}
			c, err := newStoreClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			product, err := c.GetProduct(ctx, id)
			if err != nil {
				if client.IsNotFound(err) {
					return fmt.Errorf("product %d does not exist", id)
				}
				return err
			}
			return printJSON(product)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Product ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newListOrdersCmd() *cobra.Command {
	var status string
	var all bool

	cmd := &cobra.Command{
		Use:   "list-orders",
		Short: "List orders, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newStoreClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			params := client.Params{}
			if status != "" {
				params["status"] = status
			}

			var orders []client.Order
			if all {
				orders, err = c.ListAllOrders(ctx, params)
			} else {
				orders, err = c.ListOrders(ctx, params)
			}
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (processing, completed, ...)")
	cmd.Flags().BoolVar(&all, "all", false, "Drain every page instead of the first")
	return cmd
}

func newGetOrderCmd() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "get-order",
		Short: "Fetch a single order by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id <= 0 {
				return fmt.Errorf("--id is required")
			}
			c, err := newStoreClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			order, err := c.GetOrder(ctx, id)
			if err != nil {
				if client.IsNotFound(err) {
					return fmt.Errorf("order %d does not exist", id)
				}
				return err
			}
			return printJSON(order)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Order ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newListCustomersCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list-customers",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newStoreClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			var customers []client.Customer
			if all {
				customers, err = c.ListAllCustomers(ctx, nil)
			} else {
				customers, err = c.ListCustomers(ctx, nil)
			}
			if err != nil {
				return err
			}
			return printJSON(customers)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Drain every page instead of the first")
	return cmd
}

func newBatchUpdateProductsCmd() *cobra.Command {
	var file string
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "batch-update-products",
		Short: "Apply product updates from a JSON file through the batch endpoint",
		Long:  "Reads a JSON array of product objects and submits them as paced batch chunks of at most 100 operations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read updates file: %w", err)
			}
			var updates []client.Product
			if err := json.Unmarshal(data, &updates); err != nil {
				return fmt.Errorf("parse updates file: %w", err)
			}

			c, err := newStoreClient()
			if err != nil {
				return err
			}
			// Batch runs can outlast a single-request budget.
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()

			var opts []client.BatchOption
			if delay > 0 {
				opts = append(opts, client.WithBatchDelay(delay))
			}

			start := time.Now()
			results, err := c.BatchUpdateProducts(ctx, updates, opts...)
			if err != nil {
				log.Error().Err(err).Int("applied", len(results)).Dur("elapsed", time.Since(start)).Msg("batch update failed")
				return err
			}

			log.Debug().Int("count", len(results)).Dur("elapsed", time.Since(start)).Msg("batch update completed")
			fmt.Printf("Updated %d products\n", len(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to JSON array of product updates (required)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Inter-chunk delay override (default from SHOPWIRE_BATCH_DELAY)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
