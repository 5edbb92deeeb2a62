package vector

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	return int(sizeOf[T]())
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.ElemSize()
}

// BytesReserved returns the number of bytes held by the backing storage.
func (v *Vector[T]) BytesReserved() int {
	return v.capacity * v.ElemSize()
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes occupied by live elements
	BytesReserved int     // Bytes held by the backing storage
	Utilization   float64 // Ratio of length to capacity (0.0-1.0)
}
