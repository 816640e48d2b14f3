package transform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining_sync/internal/mapper"
	"dining_sync/internal/source"
	"dining_sync/internal/source/dining"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func batch(n int) []dining.RawEatery {
	raws := make([]dining.RawEatery, 0, n)
	for i := 1; i <= n; i++ {
		raw := upstreamEatery(int64(i), fmt.Sprintf("Eatery %d", i), "Cafe")
		raw.OperatingHours = []dining.RawOperatingHour{{
			Events: []dining.RawEvent{{Descr: "Open", StartTimestamp: 1736946000, EndTimestamp: 1736982000}},
		}}
		raws = append(raws, raw)
	}
	return raws
}

func TestRunner_PreservesInputOrder(t *testing.T) {
	runner := NewRunner(NewTransformer(time.Now, time.UTC), 3, discardLogger())

	eateries, err := runner.TransformAll(context.Background(), batch(20))
	require.NoError(t, err)
	require.Len(t, eateries, 20)
	for i, e := range eateries {
		assert.Equal(t, int64(i+1), e.CornellID)
	}
}

func TestRunner_AggregatesFailures(t *testing.T) {
	runner := NewRunner(NewTransformer(time.Now, time.UTC), 4, discardLogger())

	raws := batch(6)
	raws[2].CampusArea = source.Descriptor{DescrShort: "Ithaca"}

	eateries, err := runner.TransformAll(context.Background(), raws)
	require.Error(t, err)
	assert.Nil(t, eateries)

	var agg *AggregateError
	require.True(t, errors.As(err, &agg))
	require.Len(t, agg.Failures, 1)
	assert.Equal(t, 2, agg.Failures[0].Index)
	assert.Equal(t, int64(3), agg.Failures[0].CornellID)
	assert.Equal(t, "Eatery 3", agg.Failures[0].Name)
	assert.Len(t, agg.Partial, 5)

	assert.Contains(t, err.Error(), "failed to transform 1 eatery(ies):\nEatery \"Eatery 3\": ")

	var unknown *mapper.UnknownValueError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Ithaca", unknown.Value)
}

func TestRunner_AttemptsEveryRecord(t *testing.T) {
	runner := NewRunner(NewTransformer(time.Now, time.UTC), 2, discardLogger())

	raws := batch(5)
	raws[0].EateryTypes = []source.Descriptor{{Descr: "Spaceport"}}
	raws[4].PayMethods = []source.Descriptor{{DescrShort: "IOU"}}

	_, err := runner.TransformAll(context.Background(), raws)

	var agg *AggregateError
	require.True(t, errors.As(err, &agg))
	require.Len(t, agg.Failures, 2)
	assert.Equal(t, 0, agg.Failures[0].Index)
	assert.Equal(t, 4, agg.Failures[1].Index)
	assert.Len(t, agg.Partial, 3)
}

func TestRunner_CanceledContext(t *testing.T) {
	runner := NewRunner(NewTransformer(time.Now, time.UTC), 2, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.TransformAll(ctx, batch(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_EmptyInput(t *testing.T) {
	runner := NewRunner(NewTransformer(time.Now, time.UTC), 0, discardLogger())

	eateries, err := runner.TransformAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, eateries)
}
