package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/quote"
	"github.com/sells-group/roofquote/internal/resilience"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testLead(id, source string, created time.Time) model.LeadRecord {
	return model.LeadRecord{
		Lead: model.Lead{
			ID:        id,
			Name:      "Dana Smith",
			Email:     "dana@example.com",
			Phone:     "555-0100",
			Address:   "44932 Bellflower Ln, Temecula, CA 92592",
			Answers:   map[string]string{"material": "asphalt"},
			Quote:     &quote.Response{LowEstimate: 11550, HighEstimate: 18711, Region: "US", StateCode: "CA"},
			Source:    source,
			CreatedAt: created,
		},
		Deliveries: []model.DeliveryResult{
			{Sink: "webhook:zapier", Status: model.DeliveryDelivered, Attempts: 1},
			{Sink: "notion", Status: model.DeliveryFailed, Attempts: 3, Error: "503", DLQID: "dlq-1"},
		},
	}
}

// --- Leads ---

func TestSQLite_Migrate_Idempotent(t *testing.T) {
	st := newTestSQLiteStore(t)
	require.NoError(t, st.Migrate(context.Background()))
}

func TestSQLite_SaveAndListLeads(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, st.SaveLead(ctx, testLead("lead-old", "web", now.Add(-2*time.Hour))))
	require.NoError(t, st.SaveLead(ctx, testLead("lead-new", "web", now)))

	recs, err := st.ListLeads(ctx, model.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "lead-new", recs[0].Lead.ID, "newest first")
	assert.Equal(t, "lead-old", recs[1].Lead.ID)

	got := recs[0]
	assert.Equal(t, "Dana Smith", got.Lead.Name)
	assert.Equal(t, "asphalt", got.Lead.Answers["material"])
	require.NotNil(t, got.Lead.Quote)
	assert.Equal(t, int64(18711), got.Lead.Quote.HighEstimate)
	require.Len(t, got.Deliveries, 2)
	assert.Equal(t, 1, got.Failed())
}

func TestSQLite_SaveLead_Upserts(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	rec := testLead("lead-1", "web", time.Now())
	require.NoError(t, st.SaveLead(ctx, rec))

	rec.Deliveries[1] = model.DeliveryResult{Sink: "notion", Status: model.DeliveryDelivered, Attempts: 1}
	require.NoError(t, st.SaveLead(ctx, rec))

	recs, err := st.ListLeads(ctx, model.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Failed())
}

func TestSQLite_SaveLead_AssignsIDAndTime(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveLead(ctx, model.LeadRecord{Lead: model.Lead{Name: "No ID", Email: "x@y.z"}}))

	recs, err := st.ListLeads(ctx, model.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.NotEmpty(t, recs[0].Lead.ID)
	assert.False(t, recs[0].Lead.CreatedAt.IsZero())
	assert.Empty(t, recs[0].Deliveries)
}

func TestSQLite_ListLeads_Filters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, st.SaveLead(ctx, testLead("a", "web", now.Add(-48*time.Hour))))
	require.NoError(t, st.SaveLead(ctx, testLead("b", "cli", now.Add(-time.Hour))))
	require.NoError(t, st.SaveLead(ctx, testLead("c", "web", now)))

	bySource, err := st.ListLeads(ctx, model.LeadFilter{Source: "web"})
	require.NoError(t, err)
	assert.Len(t, bySource, 2)

	recent, err := st.ListLeads(ctx, model.LeadFilter{Since: now.Add(-2 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	page, err := st.ListLeads(ctx, model.LeadFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].Lead.ID)
}

// --- Dead letter queue ---

func dlqEntry(id, sink string, next time.Time) resilience.DLQEntry {
	return resilience.DLQEntry{
		ID:          id,
		LeadID:      "lead-1",
		Sink:        sink,
		Payload:     json.RawMessage(`{"id":"lead-1","name":"Dana Smith"}`),
		Error:       "503 Service Unavailable",
		ErrorType:   resilience.ErrorTypeTransient,
		MaxRetries:  3,
		NextRetryAt: next,
	}
}

func TestSQLite_DLQ_EnqueueAndDue(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.EnqueueDLQ(ctx, dlqEntry("dlq-1", "notion", time.Now().Add(-time.Minute))))

	entries, err := st.DueDLQ(ctx, resilience.DLQFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "dlq-1", e.ID)
	assert.Equal(t, "lead-1", e.LeadID)
	assert.Equal(t, "notion", e.Sink)
	assert.JSONEq(t, `{"id":"lead-1","name":"Dana Smith"}`, string(e.Payload))
	assert.Equal(t, 0, e.RetryCount)
	assert.Equal(t, 3, e.MaxRetries)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestSQLite_DLQ_DueRespectsNextRetryAt(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.EnqueueDLQ(ctx, dlqEntry("later", "notion", time.Now().Add(time.Hour))))
	require.NoError(t, st.EnqueueDLQ(ctx, dlqEntry("now", "notion", time.Now().Add(-time.Second))))

	entries, err := st.DueDLQ(ctx, resilience.DLQFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "now", entries[0].ID)
}

func TestSQLite_DLQ_DueFiltersSink(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	past := time.Now().Add(-time.Minute)

	require.NoError(t, st.EnqueueDLQ(ctx, dlqEntry("n", "notion", past)))
	require.NoError(t, st.EnqueueDLQ(ctx, dlqEntry("s", "salesforce", past)))

	entries, err := st.DueDLQ(ctx, resilience.DLQFilter{Sink: "salesforce"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "s", entries[0].ID)
}

func TestSQLite_DLQ_IncrementRetryExhausts(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	past := time.Now().Add(-time.Minute)

	e := dlqEntry("dlq-x", "notion", past)
	e.MaxRetries = 2
	require.NoError(t, st.EnqueueDLQ(ctx, e))

	require.NoError(t, st.IncrementDLQRetry(ctx, "dlq-x", past, "still down"))
	entries, err := st.DueDLQ(ctx, resilience.DLQFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].RetryCount)
	assert.Equal(t, "still down", entries[0].Error)

	require.NoError(t, st.IncrementDLQRetry(ctx, "dlq-x", past, "still down"))
	entries, err = st.DueDLQ(ctx, resilience.DLQFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries, "exhausted entries are not due")

	count, err := st.CountDLQ(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "exhausted entries stay for review")
}

func TestSQLite_DLQ_IncrementUnknown(t *testing.T) {
	st := newTestSQLiteStore(t)
	err := st.IncrementDLQRetry(context.Background(), "missing", time.Now(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLite_DLQ_RemoveAndCount(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.EnqueueDLQ(ctx, dlqEntry("a", "notion", time.Now())))
	require.NoError(t, st.EnqueueDLQ(ctx, dlqEntry("b", "notion", time.Now())))

	count, err := st.CountDLQ(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, st.RemoveDLQ(ctx, "a"))
	count, err = st.CountDLQ(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLite_DLQ_EnqueueDefaults(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.EnqueueDLQ(ctx, resilience.DLQEntry{LeadID: "lead-9", Sink: "webhook:crm"}))

	count, err := st.CountDLQ(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Default schedule is one minute out, so nothing is due yet.
	entries, err := st.DueDLQ(ctx, resilience.DLQFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_Drivers(t *testing.T) {
	st, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, st)
	require.NoError(t, st.Close())

	_, err = Open(context.Background(), "mysql", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}
