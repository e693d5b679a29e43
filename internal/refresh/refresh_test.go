package refresh

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earnings-screener/internal/ingest"
	"earnings-screener/internal/models"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	latest    *models.EarningsReport
	latestErr error
	inserted  [][]models.EarningsReport
	insertErr error
}

func (s *fakeStore) LatestQuarterIfExists(context.Context, int) (*models.EarningsReport, error) {
	return s.latest, s.latestErr
}

func (s *fakeStore) InsertBatch(_ context.Context, reports []models.EarningsReport) (bool, error) {
	if s.insertErr != nil {
		return false, s.insertErr
	}
	s.inserted = append(s.inserted, reports)
	return true, nil
}

type fakeSource struct {
	history      []ingest.Batch
	historyCalls int
	ttm          ingest.Batch
	ttmCalls     int
}

func (s *fakeSource) FullHistory(context.Context, int) ([]ingest.Batch, error) {
	s.historyCalls++
	return s.history, nil
}

func (s *fakeSource) LatestTTM(context.Context, int) (ingest.Batch, error) {
	s.ttmCalls++
	return s.ttm, nil
}

type fakeUpdater struct {
	calls int
	err   error
}

func (u *fakeUpdater) RegularUpdate(context.Context, int) error {
	u.calls++
	return u.err
}

type fakeDeriver struct {
	durations []string
	err       error
}

func (d *fakeDeriver) RecalcForDuration(_ context.Context, _ int, duration string) error {
	if d.err != nil {
		return d.err
	}
	d.durations = append(d.durations, duration)
	return nil
}

func otherBatch(fiscal, ending string) ingest.Batch {
	return ingest.Batch{
		Kind:      ingest.KindOther,
		CompanyID: 1,
		Currency:  "USD",
		Other: []ingest.OtherStatement{{
			FiscalQuarter: fiscal,
			Term:          models.DurationTTM,
			PeriodEnding:  ending,
			Revenue:       100,
		}},
	}
}

func newTestOrchestrator(store *fakeStore, source *fakeSource, updater *fakeUpdater, deriver *fakeDeriver) *Orchestrator {
	o := New(store, source, updater, deriver, slog.New(slog.NewTextHandler(io.Discard, nil)))
	o.now = func() time.Time { return testNow }
	return o
}

func dueForecast() models.Forecast {
	return models.Forecast{
		ExpectedReportDate: testNow.Add(-24 * time.Hour),
		NextUpdateDate:     testNow.Add(-24 * time.Hour),
	}
}

func quietForecast() models.Forecast {
	return models.Forecast{
		ExpectedReportDate: testNow.Add(24 * time.Hour),
		NextUpdateDate:     testNow.Add(24 * time.Hour),
	}
}

func TestRefreshBackfillsWhenNoHistory(t *testing.T) {
	store := &fakeStore{latest: nil}
	source := &fakeSource{history: []ingest.Batch{otherBatch("2024-Q1", "2024-03-31")}}
	updater := &fakeUpdater{}
	deriver := &fakeDeriver{}
	o := newTestOrchestrator(store, source, updater, deriver)

	// Earnings due wins even when the regular update is also stale.
	action, err := o.Refresh(context.Background(), 1, dueForecast())
	require.NoError(t, err)

	assert.Equal(t, ActionFullBackfill, action)
	assert.Equal(t, 1, source.historyCalls)
	assert.Zero(t, source.ttmCalls)
	assert.Zero(t, updater.calls)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, []string{models.DurationAnnual}, deriver.durations)
}

func TestRefreshBackfillsAfterThirdQuarter(t *testing.T) {
	store := &fakeStore{latest: &models.EarningsReport{Duration: models.DurationTTM, QuarterStr: 3, YearStr: 2025}}
	source := &fakeSource{history: []ingest.Batch{otherBatch("2025-Q4", "2025-12-31")}}
	deriver := &fakeDeriver{}
	o := newTestOrchestrator(store, source, &fakeUpdater{}, deriver)

	action, err := o.Refresh(context.Background(), 1, dueForecast())
	require.NoError(t, err)

	assert.Equal(t, ActionFullBackfill, action)
	assert.Equal(t, 1, source.historyCalls)
	assert.Equal(t, []string{models.DurationAnnual}, deriver.durations)
}

func TestRefreshIncrementalMidYear(t *testing.T) {
	store := &fakeStore{latest: &models.EarningsReport{Duration: models.DurationTTM, QuarterStr: 1, YearStr: 2026}}
	source := &fakeSource{ttm: otherBatch("2026-Q2", "2026-06-30")}
	deriver := &fakeDeriver{}
	o := newTestOrchestrator(store, source, &fakeUpdater{}, deriver)

	action, err := o.Refresh(context.Background(), 1, dueForecast())
	require.NoError(t, err)

	assert.Equal(t, ActionIncremental, action)
	assert.Zero(t, source.historyCalls)
	assert.Equal(t, 1, source.ttmCalls)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, []string{models.DurationTTM}, deriver.durations)
}

func TestRefreshRegularUpdate(t *testing.T) {
	forecast := models.Forecast{
		ExpectedReportDate: testNow.Add(24 * time.Hour),
		NextUpdateDate:     testNow.Add(-time.Hour),
	}
	store := &fakeStore{}
	source := &fakeSource{}
	updater := &fakeUpdater{}
	deriver := &fakeDeriver{}
	o := newTestOrchestrator(store, source, updater, deriver)

	action, err := o.Refresh(context.Background(), 1, forecast)
	require.NoError(t, err)

	assert.Equal(t, ActionRegular, action)
	assert.Equal(t, 1, updater.calls)
	assert.Zero(t, source.historyCalls)
	assert.Zero(t, source.ttmCalls)
	assert.Equal(t, []string{models.DurationAnnual}, deriver.durations)
}

func TestRefreshRecalcOnlyWhenFresh(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{}
	updater := &fakeUpdater{}
	deriver := &fakeDeriver{}
	o := newTestOrchestrator(store, source, updater, deriver)

	action, err := o.Refresh(context.Background(), 1, quietForecast())
	require.NoError(t, err)

	assert.Equal(t, ActionRecalcOnly, action)
	assert.Zero(t, updater.calls)
	assert.Zero(t, source.historyCalls)
	assert.Empty(t, store.inserted)
	assert.Equal(t, []string{models.DurationAnnual}, deriver.durations)
}

func TestRefreshPropagatesStoreFailure(t *testing.T) {
	store := &fakeStore{latestErr: errors.New("connection reset")}
	o := newTestOrchestrator(store, &fakeSource{}, &fakeUpdater{}, &fakeDeriver{})

	_, err := o.Refresh(context.Background(), 1, dueForecast())
	assert.ErrorContains(t, err, "connection reset")
}

func TestRefreshPropagatesInsertFailure(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("insert failed")}
	source := &fakeSource{history: []ingest.Batch{otherBatch("2024-Q1", "2024-03-31")}}
	deriver := &fakeDeriver{}
	o := newTestOrchestrator(store, source, &fakeUpdater{}, deriver)

	_, err := o.Refresh(context.Background(), 1, dueForecast())
	assert.ErrorContains(t, err, "insert failed")
	assert.Empty(t, deriver.durations)
}

func TestRefreshPropagatesMalformedDate(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{history: []ingest.Batch{otherBatch("2024-Q1", "not a date")}}
	o := newTestOrchestrator(store, source, &fakeUpdater{}, &fakeDeriver{})

	_, err := o.Refresh(context.Background(), 1, dueForecast())
	assert.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestRefreshPropagatesUpdaterFailure(t *testing.T) {
	forecast := models.Forecast{
		ExpectedReportDate: testNow.Add(24 * time.Hour),
		NextUpdateDate:     testNow.Add(-time.Hour),
	}
	updater := &fakeUpdater{err: errors.New("quote service down")}
	deriver := &fakeDeriver{}
	o := newTestOrchestrator(&fakeStore{}, &fakeSource{}, updater, deriver)

	_, err := o.Refresh(context.Background(), 1, forecast)
	assert.ErrorContains(t, err, "quote service down")
	assert.Empty(t, deriver.durations)
}
