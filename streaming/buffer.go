package streaming

import "sync"

// sampleBuffer is an auto-growing circular buffer of pending samples
// pushed to a Processor but not yet sliced into a full block. Adapted
// from the teacher's RingBuffer: same circular read/write-cursor
// discipline, grown (doubled) instead of rejecting writes that exceed
// capacity, since a Processor never knows in advance how large a Push
// chunk will be relative to its configured block size.
type sampleBuffer struct {
	data     []float64
	capacity int
	size     int
	readPos  int
	writePos int
	mu       sync.Mutex
}

// newSampleBuffer creates a buffer with the given initial capacity.
func newSampleBuffer(capacity int) *sampleBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &sampleBuffer{data: make([]float64, capacity), capacity: capacity}
}

// Write appends samples, growing the buffer if it doesn't have enough
// free space.
func (b *sampleBuffer) Write(samples []float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	needed := len(samples)
	if needed == 0 {
		return
	}
	if b.size+needed > b.capacity {
		b.grow(b.size + needed)
	}
	for _, sample := range samples {
		b.data[b.writePos] = sample
		b.writePos = (b.writePos + 1) % b.capacity
		b.size++
	}
}

// Read removes and returns up to n samples, fewer if less are available.
func (b *sampleBuffer) Read(n int) []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > b.size {
		n = b.size
	}
	if n <= 0 {
		return nil
	}
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = b.data[b.readPos]
		b.readPos = (b.readPos + 1) % b.capacity
		b.size--
	}
	return result
}

// ReadAll removes and returns every buffered sample.
func (b *sampleBuffer) ReadAll() []float64 {
	b.mu.Lock()
	n := b.size
	b.mu.Unlock()
	return b.Read(n)
}

// Available returns the number of samples ready to Read.
func (b *sampleBuffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// grow doubles capacity until it can hold minCapacity samples, relocating
// existing unread samples to the front of the new backing array.
func (b *sampleBuffer) grow(minCapacity int) {
	newCapacity := b.capacity
	for newCapacity < minCapacity {
		newCapacity *= 2
	}
	newData := make([]float64, newCapacity)
	if b.size > 0 {
		if b.readPos < b.writePos {
			copy(newData, b.data[b.readPos:b.writePos])
		} else {
			n1 := copy(newData, b.data[b.readPos:])
			copy(newData[n1:], b.data[:b.writePos])
		}
	}
	b.data = newData
	b.capacity = newCapacity
	b.readPos = 0
	b.writePos = b.size
}
