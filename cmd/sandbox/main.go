package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/provider/momo"
	timeProvider "github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/config"
)

// Provider sandbox test numbers
const (
	phoneSuccessful = "46733123454"
	phoneFailed     = "46733123450"
)

func main() {
	phone := flag.String("phone", phoneSuccessful, "Payer MSISDN ("+phoneFailed+" fails, "+phoneSuccessful+" succeeds)")
	country := flag.String("country", "", "Payer country, defaults to the configured merchant country")
	amount := flag.String("amount", "1.00", "Amount to request")
	component := flag.String("component", "sandbox", "Payment reference component")
	area := flag.String("area", "test", "Payment reference area")
	itemID := flag.Uint64("item", 1, "Payment reference item id")
	userID := flag.Uint64("user", 1, "Payment reference user id")
	issue := flag.Bool("issue-token", false, "Print an API bearer token for -user and exit")
	verbose := flag.Bool("v", false, "Log every provider call")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		exit("Failed to load configuration: %v", err)
	}

	tp := timeProvider.NewRealTimeProvider()

	if *issue {
		token, err := middleware.IssueToken(cfg.Auth.JWTSecret, cfg.Auth.Issuer, *userID, 24*time.Hour, tp.Now())
		if err != nil {
			exit("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	appLogger := logger.NewNoopLogger()
	if *verbose {
		appLogger = logger.NewZapLogger(false, "debug")
	}

	providerConfig := momo.CreateConfigFromViperConfig(cfg)
	if providerConfig.Environment != momo.EnvironmentSandbox {
		exit("Refusing to run: provider.environment is %q, not sandbox", providerConfig.Environment)
	}

	client, err := momo.NewClient(providerConfig, appLogger, tp)
	if err != nil {
		exit("Invalid provider configuration: %v", err)
	}

	money, err := entity.ParseAmount(*amount)
	if err != nil {
		exit("Invalid amount: %v", err)
	}
	ref, err := entity.NewPaymentReference(*component, *area, *itemID, *userID)
	if err != nil {
		exit("Invalid reference: %v", err)
	}
	payerCountry := *country
	if payerCountry == "" {
		payerCountry = client.Country()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !client.ValidUser(ctx, *phone) {
		fmt.Printf("Warning: %s is not reported as an active account holder\n", *phone)
	}

	fmt.Printf("Requesting %s %s from %s (%s), note %s\n",
		money.StringFixed(2), client.SettlementCurrency(momo.CurrencyForCountry(payerCountry)), *phone, payerCountry, ref)

	result, err := client.RequestPayment(ctx, gateway.PaymentRequest{
		Amount:       money,
		Currency:     client.SettlementCurrency(momo.CurrencyForCountry(payerCountry)),
		PayerPhone:   *phone,
		PayerCountry: payerCountry,
		Reference:    ref,
	})
	if err != nil {
		exit("Request rejected: %v", err)
	}

	fmt.Printf("Request-to-pay: %d %s\n", result.StatusCode, client.StatusMessage(result.StatusCode))
	if !result.Accepted() {
		os.Exit(1)
	}
	fmt.Printf("Reference: %s\n", result.ExternalReference)

	attempts := cfg.Gateway.PollAttempts
	for attempt := 1; attempt <= attempts; attempt++ {
		doc := client.TransactionEnquiry(ctx, result.ExternalReference, result.Token)
		status := string(doc.Status)
		if status == "" {
			status = "unknown"
		}
		fmt.Printf("[%d/%d] %s", attempt, attempts, status)
		if doc.Reason != "" {
			fmt.Printf(" (%s)", doc.Reason)
		}
		fmt.Println()

		if doc.Status.IsTerminal() {
			if doc.Status == entity.ProviderStatusSuccessful {
				fmt.Printf("Settled %s %s, provider transaction %s\n", doc.Amount, doc.Currency, doc.FinancialTransactionID)
				return
			}
			os.Exit(1)
		}

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			exit("Interrupted")
		case <-tp.After(coreport.Duration(cfg.Gateway.PollInterval)):
		}
	}

	fmt.Println("Gave up waiting for a final status")
	os.Exit(2)
}

func exit(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
