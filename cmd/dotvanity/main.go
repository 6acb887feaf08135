package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hukkinj1/dotvanity/internal/config"
	logpkg "github.com/hukkinj1/dotvanity/internal/logger"
	minerpkg "github.com/hukkinj1/dotvanity/pkg/miner"
	"github.com/hukkinj1/dotvanity/pkg/types"
)

var (
	cfg    = config.NewConfig()
	logger *logpkg.Logger
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "dotvanity",
		Short: "Polkadot/Substrate vanity address generator",
		Long: `A CPU-based Polkadot/Substrate vanity address generator.
Generates sr25519 keypairs in parallel until the SS58-encoded address
satisfies the given criteria. Notable address types:
	0  - Polkadot mainnet
	2  - Kusama network
	42 - Generic Substrate`,
		Run: runMiner,
	}

	rootCmd.Flags().StringVarP(&cfg.StartsWith, "startswith", "s", "", "A string that the address must start with")
	rootCmd.Flags().StringVarP(&cfg.EndsWith, "endswith", "e", "", "A string that the address must end with")
	rootCmd.Flags().StringVar(&cfg.Contains, "contains", "", "A string that the address must contain")
	rootCmd.Flags().IntVar(&cfg.MinLetters, "letters", 0, "Minimum amount of letters the address must contain")
	rootCmd.Flags().IntVar(&cfg.MinDigits, "digits", 0, "Minimum amount of digits the address must contain")
	rootCmd.Flags().IntVarP(&cfg.NetworkType, "type", "t", 0, "Address type, an integer in range [0, 127]")
	rootCmd.Flags().IntVarP(&cfg.Count, "count", "n", 1, "Amount of matching addresses to generate")
	rootCmd.Flags().IntVarP(&cfg.Workers, "cpus", "c", 1, "Number of worker goroutines")
	rootCmd.Flags().BoolVarP(&cfg.Mnemonic, "mnemonic", "m", false, "Output a BIP-39 recovery phrase for each match")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose progress output")
	rootCmd.Flags().StringVarP(&cfg.LogFile, "log-file", "l", "", "Log file for progress tracking (default: stderr)")
	rootCmd.Flags().IntVarP(&cfg.LogInterval, "log-interval", "i", 5, "Logging interval in seconds")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMiner(cmd *cobra.Command, args []string) {
	setupLogging()

	miner, err := minerpkg.NewMiner(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Verbosef("Starting search with %d workers...", cfg.Workers)
	logger.Verbosef("Address type: %d", cfg.NetworkType)
	logger.Verbosef("Target: %s", cfg.GetTargetDescription())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	type outcome struct {
		results []types.Result
		stats   types.Stats
		err     error
	}
	outcomeChan := make(chan outcome, 1)
	go func() {
		results, stats, err := miner.Mine()
		outcomeChan <- outcome{results, stats, err}
	}()

	// Report each match as soon as its slot is confirmed.
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for result := range miner.Found() {
			printResult(result)
		}
	}()

	var out outcome
	select {
	case out = <-outcomeChan:
	case <-sigChan:
		logger.Println("Received interrupt signal. Stopping workers...")
		miner.Stop()
		out = <-outcomeChan
	}
	<-printed

	rate := 0.0
	if out.stats.Duration.Seconds() > 0 {
		rate = float64(out.stats.Attempts) / out.stats.Duration.Seconds()
	}
	logger.Verbosef("Checked %d addresses in %v (%.2f addresses/sec)",
		out.stats.Attempts, out.stats.Duration, rate)

	if out.err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", out.err)
		os.Exit(1)
	}
	if len(out.results) < cfg.Count {
		logger.Printf("Stopped after %d of %d matches.", len(out.results), cfg.Count)
	}
}

func printResult(result types.Result) {
	fmt.Printf("Address:     %s\n", color.GreenString(result.Address))
	fmt.Printf("Public key:  %s\n", hex.EncodeToString(result.PublicKey[:]))
	fmt.Printf("Private key: %s\n", hex.EncodeToString(result.Secret[:]))
	fmt.Printf("Seed:        %s\n", hex.EncodeToString(result.Seed[:]))
	if result.Mnemonic != "" {
		fmt.Printf("Mnemonic:    %s\n", result.Mnemonic)
	}
	fmt.Println()
}

func setupLogging() {
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		logger = logpkg.NewWriter(file)
		logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		logger = logpkg.New()
		logger.SetFlags(log.LstdFlags)
	}
	logger.SetVerbose(cfg.Verbose)
}
