// Command reconcile is the operator batch-job surface for the
// reconciliation guard.
//
// Destructive sweeps require an explicit --company scope and only write
// with --apply; the default is a dry run that prints the full report of
// intended changes. --list is a read-only cross-company overview.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"luxora/config"
	"luxora/database"
	bookingRepoPkg "luxora/database/repository/booking"
	clientRepoPkg "luxora/database/repository/client"
	collaboratorRepoPkg "luxora/database/repository/collaborator"
	financeRepoPkg "luxora/database/repository/finance"
	"luxora/models"
	"luxora/services/reconcile"
	"luxora/utils"

	"github.com/spf13/pflag"
)

func main() {
	company := pflag.String("company", "", "company id scoping the run (required for sweeps)")
	apply := pflag.Bool("apply", false, "write changes; without this flag the run is a dry-run report")
	list := pflag.Bool("list", false, "read-only payout overview across all companies")
	timeout := pflag.Duration("timeout", 5*time.Minute, "overall run timeout")
	pflag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()

	guard := &reconcile.Guard{
		Finance:       financeRepoPkg.NewMongoFinanceRepo(),
		Bookings:      bookingRepoPkg.NewMongoBookingRepo(),
		Collaborators: collaboratorRepoPkg.NewMongoCollaboratorRepo(),
		Clients:       clientRepoPkg.NewMongoClientRepo(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *list {
		statuses, err := guard.ListPayoutStatus(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reconcile: list failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%-36s %8s %8s\n", "COMPANY", "PAYOUTS", "ORPHANED")
		for _, s := range statuses {
			fmt.Printf("%-36s %8d %8d\n", s.CompanyID, s.Payouts, s.Orphaned)
		}
		return
	}

	scope := models.Scope{CompanyID: *company}
	if scope.IsZero() {
		fmt.Fprintln(os.Stderr, "reconcile: --company is required for sweeps (no implicit all-companies default)")
		os.Exit(1)
	}

	purge, err := guard.PurgeOrphanedPayouts(ctx, scope, *apply)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconcile: purge failed: %v\n", err)
		os.Exit(1)
	}
	printReport("purge-orphaned-payouts", purge)

	normalize, err := guard.NormalizeDirectory(ctx, scope, *apply)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconcile: normalize failed: %v\n", err)
		os.Exit(1)
	}
	printReport("normalize-directory", normalize)

	if !*apply {
		fmt.Println("dry run: no changes written (pass --apply to execute)")
	}
}

func printReport(name string, report *reconcile.Report) {
	fmt.Printf("== %s ==\n", name)
	for _, action := range report.Actions {
		fmt.Printf("  %-6s %-14s %-36s %s\n", action.Op, action.Kind, action.ID, action.Detail)
	}
	fmt.Printf("summary: upserts=%d deletions=%d unresolved=%d\n",
		report.Upserts, report.Deletions, report.Unresolved)
}
