package system

import (
	"image"
	"sync"
)

// ImagePool recycles *image.RGBA buffers by size. Slates for a given
// resolution are all the same size, so one pool per rectangle is enough.
type ImagePool struct {
	mu    sync.RWMutex
	pools map[image.Rectangle]*sync.Pool
}

func NewImagePool() *ImagePool {
	return &ImagePool{pools: make(map[image.Rectangle]*sync.Pool)}
}

// Get returns a buffer for rect. Its contents are whatever the previous
// user left behind.
func (p *ImagePool) Get(rect image.Rectangle) *image.RGBA {
	p.mu.RLock()
	pool, ok := p.pools[rect]
	p.mu.RUnlock()

	if !ok {
		p.mu.Lock()
		pool, ok = p.pools[rect]
		if !ok {
			pool = &sync.Pool{
				New: func() any { return image.NewRGBA(rect) },
			}
			p.pools[rect] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.RGBA)
}

// Put hands img back. Buffers of a size never requested through Get are
// dropped.
func (p *ImagePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	p.mu.RLock()
	pool, ok := p.pools[img.Rect]
	p.mu.RUnlock()

	if ok {
		pool.Put(img)
	}
}
