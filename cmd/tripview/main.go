// Command tripview loads a stored trip and prints its metrics at every
// sampled point, the way a detail screen does while the user scrubs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/jengzang/trip-metrics-backend-go/internal/config"
	"github.com/jengzang/trip-metrics-backend-go/internal/database"
	"github.com/jengzang/trip-metrics-backend-go/internal/metrics"
	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/repository"
	"github.com/jengzang/trip-metrics-backend-go/internal/service"
)

func main() {
	tripID := flag.String("trip", "", "trip ID to load")
	step := flag.Int("step", 1, "print every Nth point")
	flag.Parse()

	if *tripID == "" || *step < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	collector := metrics.NewCollector()
	detail := service.NewTripDetail(
		repository.NewTripRepository(db),
		repository.NewSettingsRepository(db, models.UnitPreference{
			MetricUnits:    cfg.MetricUnits,
			MetricDistance: cfg.MetricDistance,
		}),
		service.NewLogReporter(collector),
		service.LogProgress{},
		collector,
	)

	ctx := context.Background()
	if !detail.Load(ctx, *tripID) {
		log.Fatalf("Trip %s could not be loaded", *tripID)
	}

	trip, _ := detail.Current()
	if err := printMetrics(ctx, os.Stdout, detail, trip, *step); err != nil {
		log.Fatal(err)
	}
}

// printMetrics writes one row for every step-th point and always one for the
// last point
func printMetrics(ctx context.Context, out io.Writer, detail *service.TripDetail, trip *models.Trip, step int) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", trip.Name)
	fmt.Fprintln(w, "SEQ\tELAPSED\tDISTANCE\tSPEED\tFUEL")

	for i, p := range trip.Points {
		if i%step != 0 && i != len(trip.Points)-1 {
			continue
		}
		m, err := detail.SelectPoint(ctx, p.Sequence)
		if err != nil {
			return fmt.Errorf("point %d: %w", p.Sequence, err)
		}
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s %s\t%s %s\n",
			p.Sequence, m.ElapsedTime,
			m.Distance, m.DistanceUnits,
			m.Speed, m.SpeedUnits,
			m.FuelConsumption, m.FuelConsumptionUnits)
	}

	return w.Flush()
}
