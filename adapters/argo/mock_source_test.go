package argo

import (
	"context"
	"testing"
	"time"

	"oceanquery/domain/query"
	"oceanquery/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDataset_DefaultWindow(t *testing.T) {
	source := NewMockSource(1)

	ds, err := source.FetchDataset(context.Background(), ports.DatasetRequest{})
	require.NoError(t, err)

	// 30-day default window, inclusive of both endpoints.
	assert.Equal(t, 31, ds.TimeSeries.Len())
	assert.Len(t, ds.TimeSeries.Latitudes, 31)
	assert.Len(t, ds.TimeSeries.Longitudes, 31)
	assert.Len(t, ds.TimeSeries.Temperatures, 31)
	assert.Len(t, ds.TimeSeries.Salinities, 31)

	require.NotNil(t, ds.Statistics)
	assert.Equal(t, 31, ds.Statistics.DataPoints)
}

func TestFetchDataset_RequestedWindow(t *testing.T) {
	source := NewMockSource(1)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	ds, err := source.FetchDataset(context.Background(), ports.DatasetRequest{
		TimeRange: &query.TimeRange{Start: start, End: end},
	})
	require.NoError(t, err)

	require.Equal(t, 10, ds.TimeSeries.Len())
	assert.Equal(t, start, ds.TimeSeries.Dates[0])
	assert.Equal(t, end, ds.TimeSeries.Dates[9])
}

func TestFetchDataset_DatesAscendDaily(t *testing.T) {
	source := NewMockSource(7)

	ds, err := source.FetchDataset(context.Background(), ports.DatasetRequest{
		TimeRange: &query.TimeRange{
			Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	for i := 1; i < ds.TimeSeries.Len(); i++ {
		assert.Equal(t, 24*time.Hour, ds.TimeSeries.Dates[i].Sub(ds.TimeSeries.Dates[i-1]))
	}
}

func TestFetchDataset_WindowClamping(t *testing.T) {
	source := NewMockSource(1)

	t.Run("inverted range clamps to one day", func(t *testing.T) {
		ds, err := source.FetchDataset(context.Background(), ports.DatasetRequest{
			TimeRange: &query.TimeRange{
				Start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, ds.TimeSeries.Len())
	})

	t.Run("oversized range clamps to a year", func(t *testing.T) {
		ds, err := source.FetchDataset(context.Background(), ports.DatasetRequest{
			TimeRange: &query.TimeRange{
				Start: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 366, ds.TimeSeries.Len())
	})
}

func TestFetchDataset_ValueRanges(t *testing.T) {
	source := NewMockSource(42)

	ds, err := source.FetchDataset(context.Background(), ports.DatasetRequest{})
	require.NoError(t, err)

	for i := 0; i < ds.TimeSeries.Len(); i++ {
		assert.GreaterOrEqual(t, ds.TimeSeries.Latitudes[i], 40.0)
		assert.Less(t, ds.TimeSeries.Latitudes[i], 60.0)
		assert.GreaterOrEqual(t, ds.TimeSeries.Longitudes[i], -60.0)
		assert.Less(t, ds.TimeSeries.Longitudes[i], -20.0)
		// Gaussian noise around the base value; generous bounds.
		assert.InDelta(t, 18.0, ds.TimeSeries.Temperatures[i], 12.0)
		assert.InDelta(t, 35.0, ds.TimeSeries.Salinities[i], 3.0)
	}
}

func TestFetchDataset_DepthProfile(t *testing.T) {
	source := NewMockSource(3)

	ds, err := source.FetchDataset(context.Background(), ports.DatasetRequest{})
	require.NoError(t, err)

	require.Len(t, ds.DepthProfile.Depths, 40)
	require.Len(t, ds.DepthProfile.Values, 40)
	assert.Equal(t, 0.0, ds.DepthProfile.Depths[0])
	assert.Equal(t, 1950.0, ds.DepthProfile.Depths[39])
	for i := 1; i < len(ds.DepthProfile.Depths); i++ {
		assert.Equal(t, 50.0, ds.DepthProfile.Depths[i]-ds.DepthProfile.Depths[i-1])
	}
	// Surface water is warmer than the deep cast.
	assert.Greater(t, ds.DepthProfile.Values[0], ds.DepthProfile.Values[39])
}

func TestFetchDataset_SeededDeterminism(t *testing.T) {
	tr := &query.TimeRange{
		Start: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	}

	first, err := NewMockSource(99).FetchDataset(context.Background(), ports.DatasetRequest{TimeRange: tr})
	require.NoError(t, err)
	second, err := NewMockSource(99).FetchDataset(context.Background(), ports.DatasetRequest{TimeRange: tr})
	require.NoError(t, err)

	assert.Equal(t, first.TimeSeries, second.TimeSeries)
	assert.Equal(t, first.DepthProfile, second.DepthProfile)
	assert.Equal(t, first.Statistics, second.Statistics)
}

func TestFetchDataset_CancelledContext(t *testing.T) {
	source := NewMockSource(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.FetchDataset(ctx, ports.DatasetRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
