// olistgen writes a synthetic copy of the nine Olist CSV files so the
// dashboard can be run and demoed without the real dataset.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"olist-dashboard/internal/datagen"
)

const dateLayout = "2006-01-02"

var rootCmd = &cobra.Command{
	Use:   "olistgen",
	Short: "Generate a synthetic Olist e-commerce dataset",
	Long: `olistgen writes the nine CSV files the dashboard loads
(orders, items, products, payments, reviews, customers, sellers,
geolocation and the category translation table) with synthetic but
schema-exact contents: split payments, undelivered orders, partial review
coverage and untranslated categories included.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("out", "./data", "output directory for the CSV files")
	rootCmd.Flags().Int("orders", 2000, "number of orders to generate")
	rootCmd.Flags().Uint64("seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().String("start", "2017-01-01", "earliest purchase date")
	rootCmd.Flags().String("end", "2018-09-01", "latest purchase date")

	viper.SetEnvPrefix("OLISTGEN")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	start, err := time.Parse(dateLayout, viper.GetString("start"))
	if err != nil {
		return err
	}
	end, err := time.Parse(dateLayout, viper.GetString("end"))
	if err != nil {
		return err
	}

	cfg := datagen.Config{
		Orders: viper.GetInt("orders"),
		Seed:   viper.GetUint64("seed"),
		Start:  start,
		End:    end,
	}
	out := viper.GetString("out")

	began := time.Now()
	if err := datagen.NewGenerator(cfg).Write(out); err != nil {
		return err
	}

	slog.Info("dataset generated",
		"dir", out,
		"orders", cfg.Orders,
		"duration", time.Since(began))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
