package queue

import (
	"testing"
	"time"

	vo "lineup/internal/domain/queue/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newActiveQueue(t *testing.T) *Queue {
	t.Helper()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	q, err := NewQueue("q_test00000001", 1, day)
	require.NoError(t, err)
	require.NotNil(t, q)
	return q
}

// =====================================================================
// TestNewQueue_*
// =====================================================================

func TestNewQueue_ValidInput(t *testing.T) {
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	q, err := NewQueue("q_test00000001", 5, day)

	require.NoError(t, err)
	require.NotNil(t, q)

	assert.Equal(t, "q_test00000001", q.SID())
	assert.Equal(t, uint(5), q.ServiceID())
	assert.Equal(t, day, q.OperatingDay())
	assert.Equal(t, vo.StatusActive, q.Status())
	assert.Equal(t, 1, q.NextNumber())
	assert.Nil(t, q.CurrentTicketID())
	assert.Nil(t, q.ClosedAt())
	assert.Equal(t, 1, q.Version())
	assert.True(t, q.CanAcceptTickets())
	assert.True(t, q.CanCallNext())
}

func TestNewQueue_MissingSID(t *testing.T) {
	q, err := NewQueue("", 1, time.Now())

	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestNewQueue_ZeroServiceID(t *testing.T) {
	q, err := NewQueue("q_test00000001", 0, time.Now())

	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestNewQueue_ZeroOperatingDay(t *testing.T) {
	q, err := NewQueue("q_test00000001", 1, time.Time{})

	assert.Error(t, err)
	assert.Nil(t, q)
}

// =====================================================================
// TestQueue_AllocateNumber
// =====================================================================

func TestQueue_AllocateNumber_Sequential(t *testing.T) {
	q := newActiveQueue(t)

	for want := 1; want <= 5; want++ {
		got, err := q.AllocateNumber()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 6, q.NextNumber())
}

func TestQueue_AllocateNumber_WhilePaused(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.Pause())

	got, err := q.AllocateNumber()

	require.NoError(t, err, "booking stays open while paused")
	assert.Equal(t, 1, got)
}

func TestQueue_AllocateNumber_WhenClosed(t *testing.T) {
	q := newActiveQueue(t)
	q.Close()

	_, err := q.AllocateNumber()

	assert.ErrorIs(t, err, ErrQueueClosed)
	assert.Equal(t, 1, q.NextNumber(), "closed queue must not burn numbers")
}

func TestQueue_AllocateNumber_NeverReused(t *testing.T) {
	q := newActiveQueue(t)

	first, err := q.AllocateNumber()
	require.NoError(t, err)

	// Cancelling a ticket never returns its number to the pool.
	second, err := q.AllocateNumber()
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

// =====================================================================
// TestQueue_Pause / Resume / Close
// =====================================================================

func TestQueue_Pause(t *testing.T) {
	q := newActiveQueue(t)

	require.NoError(t, q.Pause())

	assert.Equal(t, vo.StatusPaused, q.Status())
	assert.True(t, q.CanAcceptTickets())
	assert.False(t, q.CanCallNext())
}

func TestQueue_Pause_AlreadyPaused(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.Pause())
	version := q.Version()

	require.NoError(t, q.Pause())

	assert.Equal(t, version, q.Version(), "idempotent pause must not bump version")
}

func TestQueue_Pause_WhenClosed(t *testing.T) {
	q := newActiveQueue(t)
	q.Close()

	err := q.Pause()

	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueue_Resume(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.Pause())

	require.NoError(t, q.Resume())

	assert.Equal(t, vo.StatusActive, q.Status())
	assert.True(t, q.CanCallNext())
}

func TestQueue_Resume_WhenClosed(t *testing.T) {
	q := newActiveQueue(t)
	q.Close()

	err := q.Resume()

	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueue_Close(t *testing.T) {
	q := newActiveQueue(t)

	changed := q.Close()

	assert.True(t, changed)
	assert.Equal(t, vo.StatusClosed, q.Status())
	require.NotNil(t, q.ClosedAt())
	assert.False(t, q.CanAcceptTickets())
	assert.False(t, q.CanCallNext())
}

func TestQueue_Close_Idempotent(t *testing.T) {
	q := newActiveQueue(t)

	require.True(t, q.Close())
	closedAt := q.ClosedAt()
	version := q.Version()

	changed := q.Close()

	assert.False(t, changed, "second close is a no-op")
	assert.Equal(t, closedAt, q.ClosedAt())
	assert.Equal(t, version, q.Version())
}

func TestQueue_Close_FromPaused(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.Pause())

	assert.True(t, q.Close())
	assert.Equal(t, vo.StatusClosed, q.Status())
}

// =====================================================================
// TestQueue_ServingSlot
// =====================================================================

func TestQueue_OccupyServingSlot(t *testing.T) {
	q := newActiveQueue(t)

	require.NoError(t, q.OccupyServingSlot(42))

	assert.True(t, q.HasServingTicket())
	require.NotNil(t, q.CurrentTicketID())
	assert.Equal(t, uint(42), *q.CurrentTicketID())
}

func TestQueue_OccupyServingSlot_AlreadyOccupied(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.OccupyServingSlot(42))

	err := q.OccupyServingSlot(43)

	assert.ErrorIs(t, err, ErrServingSlotOccupied)
	assert.Equal(t, uint(42), *q.CurrentTicketID())
}

func TestQueue_OccupyServingSlot_SameTicket(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.OccupyServingSlot(42))
	version := q.Version()

	require.NoError(t, q.OccupyServingSlot(42))

	assert.Equal(t, version, q.Version())
}

func TestQueue_ReleaseServingSlot(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.OccupyServingSlot(42))

	q.ReleaseServingSlot(42)

	assert.False(t, q.HasServingTicket())
	assert.Nil(t, q.CurrentTicketID())
}

func TestQueue_ReleaseServingSlot_WrongTicket(t *testing.T) {
	q := newActiveQueue(t)
	require.NoError(t, q.OccupyServingSlot(42))

	q.ReleaseServingSlot(7)

	assert.True(t, q.HasServingTicket(), "slot held by another ticket stays occupied")
}

// =====================================================================
// TestQueue_Announcement / Reconstruct
// =====================================================================

func TestQueue_UpdateAnnouncement(t *testing.T) {
	q := newActiveQueue(t)
	version := q.Version()

	q.UpdateAnnouncement("## Delays expected")

	assert.Equal(t, "## Delays expected", q.Announcement())
	assert.Equal(t, version+1, q.Version())

	q.UpdateAnnouncement("## Delays expected")
	assert.Equal(t, version+1, q.Version(), "unchanged announcement must not bump version")
}

func TestReconstructQueue_RoundTrip(t *testing.T) {
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	ticketID := uint(9)
	now := time.Now()

	q, err := ReconstructQueue(
		3, "q_test00000001", 5, day,
		vo.StatusPaused, 17, &ticketID, "be right back", nil,
		8, now, now,
	)

	require.NoError(t, err)
	assert.Equal(t, uint(3), q.ID())
	assert.Equal(t, vo.StatusPaused, q.Status())
	assert.Equal(t, 17, q.NextNumber())
	require.NotNil(t, q.CurrentTicketID())
	assert.Equal(t, uint(9), *q.CurrentTicketID())
	assert.Equal(t, "be right back", q.Announcement())
	assert.Equal(t, 8, q.Version())
}

func TestReconstructQueue_InvalidStatus(t *testing.T) {
	q, err := ReconstructQueue(
		1, "q_test00000001", 1, time.Now(),
		vo.QueueStatus("open"), 1, nil, "", nil,
		1, time.Now(), time.Now(),
	)

	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestReconstructQueue_ZeroNextNumber(t *testing.T) {
	q, err := ReconstructQueue(
		1, "q_test00000001", 1, time.Now(),
		vo.StatusActive, 0, nil, "", nil,
		1, time.Now(), time.Now(),
	)

	assert.Error(t, err)
	assert.Nil(t, q)
}
