package adoption

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestInstrumented_CountsRegistrationsAndDuplicates(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	svc, _, _ := newTestService(t)
	inst := NewInstrumented(svc, nil, provider.Meter(tracerName), nil)

	in := RegisterInput{AnimalID: "pet-1", AdopterID: "u-1"}
	first, err := inst.Register(context.Background(), in)
	require.NoError(t, err)

	again, err := inst.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrAlreadyInQueue)
	require.Equal(t, first.ID, again.ID)

	_, err = inst.Evaluate(context.Background(), first.ID, "org-1", StatusApproved)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	got := sums(rm)
	require.Equal(t, int64(1), got["adoption.interests.registered"])
	require.Equal(t, int64(1), got["adoption.interests.duplicate"])
	require.Equal(t, int64(1), got["adoption.interests.evaluated"])
}

func sums(rm metricdata.ResourceMetrics) map[string]int64 {
	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}
	return out
}
