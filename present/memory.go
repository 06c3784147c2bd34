package present

import (
	"sync"

	"github.com/ffnt/fbtext"
)

// Memory is a double-buffered presenter in process memory. Frames are
// drawn into the back buffer; Present swaps it with the front buffer.
// Snapshot may be called from any goroutine.
type Memory struct {
	mu     sync.Mutex
	width  int
	height int
	front  []byte
	back   []byte
	frames int
}

var _ fbtext.Presenter = (*Memory)(nil)

// NewMemory returns a Memory presenter of the given size.
func NewMemory(width, height int) *Memory {
	size := width * height * fbtext.BytesPerPixel
	return &Memory{
		width:  width,
		height: height,
		front:  make([]byte, size),
		back:   make([]byte, size),
	}
}

// NewDeviceMemory returns a Memory presenter of the device framebuffer size.
func NewDeviceMemory() *Memory {
	return NewMemory(fbtext.Width, fbtext.Height)
}

// Width returns the width of the buffers.
func (m *Memory) Width() int { return m.width }

// Height returns the height of the buffers.
func (m *Memory) Height() int { return m.height }

// Buffer returns the back buffer.
func (m *Memory) Buffer() []byte { return m.back }

// Present swaps the back and front buffers.
func (m *Memory) Present() error {
	m.mu.Lock()
	m.front, m.back = m.back, m.front
	m.frames++
	m.mu.Unlock()
	return nil
}

// Frames returns the number of frames presented.
func (m *Memory) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Snapshot copies the last presented frame into dst and returns the filled
// part of dst. A nil dst allocates a new buffer.
func (m *Memory) Snapshot(dst []byte) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dst == nil {
		dst = make([]byte, len(m.front))
	}
	n := copy(dst, m.front)
	return dst[:n]
}

// Framebuffer returns a copy of the last presented frame.
func (m *Memory) Framebuffer() (*fbtext.Framebuffer, error) {
	return fbtext.NewFramebufferSize(m.Snapshot(nil), m.width, m.height)
}
