// Command billing-demo computes a small subscription billing schedule with
// the calendrical value types and, when -persist is set, stores and reads it
// back through the Postgres-backed ScheduleStore.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/chronoval/calendrical-go/chrono"
	"github.com/chronoval/calendrical-go/chrono/codec"
	"github.com/chronoval/calendrical-go/example/core"
	"github.com/chronoval/calendrical-go/example/shell/config"
	"github.com/chronoval/calendrical-go/example/shell/storage"
)

func main() {
	persist := flag.Bool("persist", false, "store the schedule in Postgres and read it back")
	flag.Parse()

	firstMonth, err := chrono.BuildYearMonth(2024, 11)
	if err != nil {
		log.Fatal(err)
	}

	signupDate, err := chrono.BuildLocalDate(2024, 10, 31)
	if err != nil {
		log.Fatal(err)
	}

	trial := chrono.PeriodOf(0, 1, 14)
	grace := chrono.SecondsOf(72 * 3600)

	months, err := core.BillingMonths(firstMonth, 4)
	if err != nil {
		log.Fatal(err)
	}

	trialEnd, err := core.TrialEnd(signupDate, trial)
	if err != nil {
		log.Fatal(err)
	}

	window, err := core.GraceWindow(grace, 4)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("billing months:")
	for _, month := range months {
		fmt.Printf("  %s\n", month)
	}
	fmt.Printf("trial %s from %s ends %s\n", trial, signupDate, trialEnd)
	fmt.Printf("total grace window: %s\n", window)

	serialized, err := codec.MarshalYearMonth(firstMonth)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("first billing month serializes as %s\n", serialized)

	if !*persist {
		return
	}

	store, err := storage.NewScheduleStoreFromPGXPool(config.PostgresPGXPoolConfig())
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	record := storage.ScheduleRecord{
		ID:           uuid.New(),
		Customer:     "acme",
		BillingMonth: firstMonth,
		TrialPeriod:  trial,
		Grace:        grace,
	}

	if err = store.Save(ctx, record); err != nil {
		log.Fatal(err)
	}

	stored, err := store.FindByCustomer(ctx, "acme")
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range stored {
		fmt.Printf("stored schedule %s: bills %s, trial %s, grace %s\n",
			r.ID, r.BillingMonth, r.TrialPeriod, r.Grace)
	}
}
