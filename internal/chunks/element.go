package chunks

// Element is the set of fixed-width numeric types a chunk can hold.
// Elements are stored packed, in native byte order.
type Element interface {
	~float32 | ~float64 |
		~int8 | ~uint8 |
		~int16 | ~uint16 |
		~int32 | ~uint32 |
		~int64 | ~uint64
}
