package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/types"
)

func testConfig() *domain.EventConfig {
	return &domain.EventConfig{
		Dates: []string{"2025-10-06", "2025-10-07"},
		DefaultSlots: []domain.SlotTemplate{
			{ID: "s1", Label: "1:45 PM - 2:15 PM"},
			{ID: "s2", Label: "2:15 PM - 2:45 PM"},
		},
	}
}

func TestBuildExpandsDatesBySlots(t *testing.T) {
	entries := Build(testConfig())

	require.Len(t, entries, 4)
	require.Equal(t, Entry{ID: "2025-10-06-s1", Date: "2025-10-06", Label: "1:45 PM - 2:15 PM"}, entries[0])
	require.Equal(t, Entry{ID: "2025-10-07-s2", Date: "2025-10-07", Label: "2:15 PM - 2:45 PM"}, entries[3])
}

func TestBuildUsesDateSpecificSlots(t *testing.T) {
	cfg := testConfig()
	cfg.DateSlots = map[string][]domain.SlotTemplate{
		"2025-10-07": {{ID: "x1", Label: "10:00 AM - 10:30 AM"}},
	}

	entries := Build(cfg)

	require.Len(t, entries, 3)
	require.Equal(t, "2025-10-07-x1", entries[2].ID)
}

func TestBuildEmptyConfig(t *testing.T) {
	require.Empty(t, Build(&domain.EventConfig{}))
}

func TestWindowOpenPastAndFutureDates(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)

	require.False(t, WindowOpen(cfg, "2025-10-06", now), "past date must be closed")
	require.True(t, WindowOpen(cfg, "2025-10-08", now), "future date must be open")
}

func TestWindowOpenTodayRespectsWindow(t *testing.T) {
	cfg := testConfig()
	cfg.GlobalWindow = &domain.EnrollmentWindow{
		Start: types.TimeString("16:00"),
		End:   types.TimeString("18:00"),
	}

	day := "2025-10-06"
	before := time.Date(2025, 10, 6, 15, 59, 0, 0, time.UTC)
	atStart := time.Date(2025, 10, 6, 16, 0, 0, 0, time.UTC)
	atEnd := time.Date(2025, 10, 6, 18, 0, 0, 0, time.UTC)
	after := time.Date(2025, 10, 6, 18, 1, 0, 0, time.UTC)

	require.False(t, WindowOpen(cfg, day, before))
	require.True(t, WindowOpen(cfg, day, atStart), "window start is inclusive")
	require.True(t, WindowOpen(cfg, day, atEnd), "window end is inclusive")
	require.False(t, WindowOpen(cfg, day, after))
}

func TestWindowOpenDateSpecificOverridesGlobal(t *testing.T) {
	cfg := testConfig()
	cfg.GlobalWindow = &domain.EnrollmentWindow{
		Start: types.TimeString("16:00"),
		End:   types.TimeString("18:00"),
	}
	cfg.Windows = map[string]domain.EnrollmentWindow{
		"2025-10-06": {Start: types.TimeString("09:00"), End: types.TimeString("10:00")},
	}

	now := time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC)
	require.True(t, WindowOpen(cfg, "2025-10-06", now))

	now = time.Date(2025, 10, 6, 17, 0, 0, 0, time.UTC)
	require.False(t, WindowOpen(cfg, "2025-10-06", now), "global window must not apply")
}

func TestWindowOpenNoWindowAlwaysOpen(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2025, 10, 6, 3, 0, 0, 0, time.UTC)
	require.True(t, WindowOpen(cfg, "2025-10-06", now))
}

func TestSlotID(t *testing.T) {
	require.Equal(t, "2025-10-06-s1", SlotID("2025-10-06", "s1"))
}
