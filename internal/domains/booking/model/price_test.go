package model_test

import (
	"carehub/internal/domains/booking/model"
	"carehub/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePrice(t *testing.T) {
	start := time.Date(2030, time.March, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		hourlyRate float64
		end        time.Time
		days       int
		want       float64
	}{
		{
			name:       "three hours over two days",
			hourlyRate: 20,
			end:        start.Add(3 * time.Hour),
			days:       2,
			want:       120,
		},
		{
			name:       "fractional hours",
			hourlyRate: 18,
			end:        start.Add(90 * time.Minute),
			days:       1,
			want:       27,
		},
		{
			name:       "rounded to cents",
			hourlyRate: 10,
			end:        start.Add(20 * time.Minute),
			days:       1,
			want:       3.33,
		},
		{
			name:       "zero rate",
			hourlyRate: 0,
			end:        start.Add(8 * time.Hour),
			days:       5,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, model.ComputePrice(tt.hourlyRate, start, tt.end, tt.days), 0.0001)
		})
	}
}

func TestDurationHours(t *testing.T) {
	start := time.Date(2030, time.March, 3, 9, 0, 0, 0, time.UTC)

	assert.InDelta(t, 2.25, model.DurationHours(start, start.Add(135*time.Minute)), 0.0001)
}

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantMsg string
	}{
		{
			name:  "future window",
			start: now.Add(time.Hour),
			end:   now.Add(4 * time.Hour),
		},
		{
			name:  "starting exactly now",
			start: now,
			end:   now.Add(time.Hour),
		},
		{
			name:    "end equals start",
			start:   now.Add(time.Hour),
			end:     now.Add(time.Hour),
			wantMsg: model.MsgEndBeforeStart,
		},
		{
			name:    "end before start",
			start:   now.Add(2 * time.Hour),
			end:     now.Add(time.Hour),
			wantMsg: model.MsgEndBeforeStart,
		},
		{
			name:    "start in the past",
			start:   now.Add(-time.Hour),
			end:     now.Add(time.Hour),
			wantMsg: model.MsgStartInPast,
		},
		{
			name:    "reversed window in the past reports the ordering first",
			start:   now.Add(-time.Hour),
			end:     now.Add(-2 * time.Hour),
			wantMsg: model.MsgEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateSchedule(tt.start, tt.end, now)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateChildrenAges(t *testing.T) {
	assert.NoError(t, model.ValidateChildrenAges(2, []int64{1, 4}))

	err := model.ValidateChildrenAges(3, []int64{1, 4})
	require.Error(t, err)
	assert.Equal(t, model.MsgChildrenAges, err.Error())
}
