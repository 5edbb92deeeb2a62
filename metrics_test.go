package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int64]()

	// Initial state
	m := v.Metrics()
	require.Equal(t, VectorMetrics{ElemSize: 8}, m)

	require.NoError(t, v.Reserve(8))
	for i := 0; i < 6; i++ {
		require.NoError(t, v.PushBack(int64(i)))
	}

	m = v.Metrics()
	require.Equal(t, 6, m.Len)
	require.Equal(t, 8, m.Cap)
	require.Equal(t, 48, m.SizeInUse)
	require.Equal(t, 64, m.BytesReserved)
	require.InDelta(t, 0.75, m.Utilization, 1e-9)

	require.Equal(t, v.SizeInUse(), m.SizeInUse)
	require.Equal(t, v.BytesReserved(), m.BytesReserved)
	require.Equal(t, v.Utilization(), m.Utilization)
}

func TestVectorMetricsAfterClear(t *testing.T) {
	v := Of(1, 2, 3, 4)
	require.Equal(t, 1.0, v.Utilization())

	v.Clear()
	require.Zero(t, v.SizeInUse())
	require.Zero(t, v.Utilization())
	require.Equal(t, 4*v.ElemSize(), v.BytesReserved(), "clear keeps the storage")
}

func TestVectorMetricsZeroSizedElements(t *testing.T) {
	v, err := NewSized[struct{}](10)
	require.NoError(t, err)

	m := v.Metrics()
	require.Zero(t, m.ElemSize)
	require.Zero(t, m.BytesReserved)
	require.Equal(t, 1.0, m.Utilization)
}
