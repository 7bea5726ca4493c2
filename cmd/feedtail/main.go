// Command feedtail connects to the push channel and prints every reconciled
// event until the connection drops.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"trustdesk/internal/adapters/ws"
	"trustdesk/internal/domain"
	"trustdesk/internal/feed"
	"trustdesk/internal/fixtures"
	"trustdesk/internal/logging"
)

func main() {
	url := flag.String("url", "ws://localhost:8001/ws", "push channel URL")
	seeded := flag.Bool("seed", false, "start from the compiled-in fixtures instead of empty collections")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logger := logging.New(*logLevel, "text")

	var seed feed.Seed
	if *seeded {
		set, err := fixtures.Load(time.Now())
		if err != nil {
			color.Red("fixtures: %v", err)
			os.Exit(1)
		}
		seed = feed.Seed{Transactions: set.Transactions, Alerts: set.Alerts}
	}

	rec := feed.NewReconciler(seed, feed.WithLogger(logger), feed.WithObserver(printMessage))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	color.Cyan("tailing %s", *url)
	err := ws.New(*url, rec, logger).Run(ctx)

	stats := feed.ComputeStats(rec.Transactions())
	active := len(feed.ActiveAlerts(rec.Alerts()))
	color.White("transactions %d (high %d, medium %d, pending %d), new alerts %d",
		stats.Total, stats.High, stats.Medium, stats.Pending, active)
	if err != nil {
		color.Red("Disconnected: %v", err)
		stop()
		os.Exit(1)
	}
	color.Yellow("Disconnected")
}

func printMessage(m feed.Message) {
	switch msg := m.(type) {
	case feed.NewTransaction:
		t := msg.Transaction
		line := fmt.Sprintf("+ %s %s %s $%s score %d (%s)",
			t.ID, t.ShopID, t.CashierName, t.TransactionTotal.StringFixed(2), t.FraudScore, t.Risk())
		riskColor(t.Risk()).Println(line)
	case feed.NewAlert:
		a := msg.Alert
		color.New(color.FgRed, color.Bold).Printf("! %s -> %s %s score %d [%s]\n",
			a.ID, a.TransactionID, a.CashierName, a.FraudScore, a.Status)
	case feed.TransactionUpdate:
		color.Cyan("~ %s -> %s %s", msg.ID, msg.Status, msg.Notes)
	}
}

func riskColor(r domain.RiskLevel) *color.Color {
	switch r {
	case domain.RiskHigh:
		return color.New(color.FgRed)
	case domain.RiskMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
