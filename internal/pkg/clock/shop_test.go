//go:build unit

package clock_test

import (
	"testing"
	"time"

	"washbook/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopClock(t *testing.T) {
	t.Run("unknown zone is rejected", func(t *testing.T) {
		_, err := clock.NewShopClock(clock.NewRealClock(), "Mars/Olympus_Mons")
		require.Error(t, err)
	})

	t.Run("stamp converts to the shop zone", func(t *testing.T) {
		// 02:30 UTC is still the previous day in Bogotá (UTC-5).
		mock := clock.NewMockClock(time.Date(2026, 3, 11, 2, 30, 0, 0, time.UTC))
		sc, err := clock.NewShopClock(mock, "America/Bogota")
		require.NoError(t, err)

		date, timeOfDay := sc.Stamp()
		assert.Equal(t, "2026-03-10", date)
		assert.Equal(t, "21:30:00", timeOfDay)
		assert.Equal(t, "2026-03-10", sc.Today())
	})

	t.Run("midday stays on the same date", func(t *testing.T) {
		mock := clock.NewMockClock(time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC))
		sc, err := clock.NewShopClock(mock, "America/Bogota")
		require.NoError(t, err)

		date, timeOfDay := sc.Stamp()
		assert.Equal(t, "2026-03-10", date)
		assert.Equal(t, "12:00:00", timeOfDay)
	})
}
