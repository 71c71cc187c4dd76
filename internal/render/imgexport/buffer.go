package imgexport

import (
	"sync"

	"github.com/ChrisGora/semaphore"

	"simwall/pkg/life"
)

// frame is one generation queued for encoding. A nil grid ends the stream.
type frame struct {
	gen  int
	grid *life.Grid
}

// frameBuffer is a bounded FIFO between the stepping goroutine and the
// encoder. put blocks while the buffer is full and take while it is empty.
type frameBuffer struct {
	spaceAvailable semaphore.Semaphore
	workAvailable  semaphore.Semaphore

	mu     sync.Mutex
	frames []frame
	head   int
	count  int
}

func newFrameBuffer(size int) *frameBuffer {
	if size < 1 {
		size = 1
	}
	return &frameBuffer{
		spaceAvailable: semaphore.Init(size, size),
		workAvailable:  semaphore.Init(size, 0),
		frames:         make([]frame, size),
	}
}

func (b *frameBuffer) put(f frame) {
	b.spaceAvailable.Wait()
	b.mu.Lock()
	b.frames[(b.head+b.count)%len(b.frames)] = f
	b.count++
	b.mu.Unlock()
	b.workAvailable.Post()
}

func (b *frameBuffer) take() frame {
	b.workAvailable.Wait()
	b.mu.Lock()
	f := b.frames[b.head]
	b.frames[b.head] = frame{}
	b.head = (b.head + 1) % len(b.frames)
	b.count--
	b.mu.Unlock()
	b.spaceAvailable.Post()
	return f
}
