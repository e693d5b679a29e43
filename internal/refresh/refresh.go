// Package refresh decides, per ticker lookup, which ingestion and
// recomputation path to run based on forecast staleness and the stored
// statement history. It is a stateless decision table evaluated fresh on
// every lookup; concurrency safety lives entirely in the store's
// conflict-ignoring insert.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"earnings-screener/internal/ingest"
	"earnings-screener/internal/models"
)

// Action names the refresh path chosen for a lookup.
type Action string

const (
	ActionFullBackfill Action = "full_backfill"
	ActionIncremental  Action = "incremental"
	ActionRegular      Action = "regular"
	ActionRecalcOnly   Action = "recalc_only"
)

// A third-quarter TTM record means the next full-year statement is now
// expected, so an earnings refresh must re-ingest the whole history.
const annualSignalQuarter = 3

// Store is the persistence slice the orchestrator drives.
type Store interface {
	LatestQuarterIfExists(ctx context.Context, companyID int) (*models.EarningsReport, error)
	InsertBatch(ctx context.Context, reports []models.EarningsReport) (bool, error)
}

// Source supplies already-fetched raw statement payloads. Fetching itself
// (provider client, rate limits, retries) lives outside this core.
type Source interface {
	// FullHistory returns the company's complete statement history, one
	// batch per statement duration/variant grouping.
	FullHistory(ctx context.Context, companyID int) ([]ingest.Batch, error)
	// LatestTTM returns only the company's trailing-twelve-month payload.
	LatestTTM(ctx context.Context, companyID int) (ingest.Batch, error)
}

// Updater performs the non-earnings (price/guidance) refresh.
type Updater interface {
	RegularUpdate(ctx context.Context, companyID int) error
}

// Deriver recomputes derived metrics for one duration.
type Deriver interface {
	RecalcForDuration(ctx context.Context, companyID int, duration string) error
}

// Orchestrator wires the collaborators for a lookup-scoped refresh.
type Orchestrator struct {
	store   Store
	source  Source
	updater Updater
	deriver Deriver
	log     *slog.Logger
	now     func() time.Time
}

// New creates an orchestrator. The clock is wall time.
func New(store Store, source Source, updater Updater, deriver Deriver, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		store:   store,
		source:  source,
		updater: updater,
		deriver: deriver,
		log:     log,
		now:     time.Now,
	}
}

// Refresh runs the decision table for one company and executes the chosen
// path, returning which action was taken.
func (o *Orchestrator) Refresh(ctx context.Context, companyID int, forecast models.Forecast) (Action, error) {
	now := o.now()

	if forecast.EarningsUpdateDue(now) {
		latest, err := o.store.LatestQuarterIfExists(ctx, companyID)
		if err != nil {
			return "", fmt.Errorf("loading latest quarter: %w", err)
		}
		if latest == nil || latest.QuarterStr == annualSignalQuarter {
			if err := o.fullBackfill(ctx, companyID); err != nil {
				return "", err
			}
			return ActionFullBackfill, nil
		}
		if err := o.incremental(ctx, companyID); err != nil {
			return "", err
		}
		return ActionIncremental, nil
	}

	if forecast.RegularUpdateDue(now) {
		if err := o.updater.RegularUpdate(ctx, companyID); err != nil {
			return "", fmt.Errorf("regular update: %w", err)
		}
		if err := o.deriver.RecalcForDuration(ctx, companyID, models.DurationAnnual); err != nil {
			return "", err
		}
		return ActionRegular, nil
	}

	// Nothing is stale; still recompute so records ingested by an earlier
	// partial failure end up derived.
	if err := o.deriver.RecalcForDuration(ctx, companyID, models.DurationAnnual); err != nil {
		return "", err
	}
	return ActionRecalcOnly, nil
}

// fullBackfill normalizes and persists the complete statement history,
// then recomputes annual derived metrics.
func (o *Orchestrator) fullBackfill(ctx context.Context, companyID int) error {
	batches, err := o.source.FullHistory(ctx, companyID)
	if err != nil {
		return fmt.Errorf("loading full history: %w", err)
	}
	for _, batch := range batches {
		reports, err := ingest.Normalize(batch)
		if err != nil {
			return fmt.Errorf("normalizing %s batch: %w", batch.Kind, err)
		}
		inserted, err := o.store.InsertBatch(ctx, reports)
		if err != nil {
			return fmt.Errorf("persisting %s batch: %w", batch.Kind, err)
		}
		if !inserted {
			// A concurrent lookup won the race; the surviving rows are
			// identical, so carry on.
			o.log.Debug("backfill batch already present",
				"company_id", companyID, "kind", string(batch.Kind))
		}
	}
	return o.deriver.RecalcForDuration(ctx, companyID, models.DurationAnnual)
}

// incremental normalizes and persists only the latest TTM payload, then
// recomputes TTM derived metrics.
func (o *Orchestrator) incremental(ctx context.Context, companyID int) error {
	batch, err := o.source.LatestTTM(ctx, companyID)
	if err != nil {
		return fmt.Errorf("loading latest TTM payload: %w", err)
	}
	reports, err := ingest.Normalize(batch)
	if err != nil {
		return fmt.Errorf("normalizing TTM batch: %w", err)
	}
	if _, err := o.store.InsertBatch(ctx, reports); err != nil {
		return fmt.Errorf("persisting TTM batch: %w", err)
	}
	return o.deriver.RecalcForDuration(ctx, companyID, models.DurationTTM)
}
