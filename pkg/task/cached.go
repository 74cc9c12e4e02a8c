package task

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru"
)

// CachedTask wraps a Task with a cache of whole pages of target memory.
//
// Walking many threads of a stopped process reads the same stack pages over
// and over; the cache turns those reads into copies. It allocates, so it is
// meant for walks done by a reporter against a suspended target, never for
// walks done from inside a signal handler. References are counted on the
// wrapped task.
type CachedTask struct {
	Task
	pageSize uint64
	pages    *lru.Cache
}

// Cached returns t wrapped with a cache holding up to npages pages.
func Cached(t Task, npages int) (*CachedTask, error) {
	pages, err := lru.New(npages)
	if err != nil {
		return nil, fmt.Errorf("could not create page cache: %w", err)
	}
	return &CachedTask{Task: t, pageSize: uint64(os.Getpagesize()), pages: pages}, nil
}

// ReadMemory copies len(buf) bytes at addr from the cache, loading missing
// pages from the wrapped task.
func (c *CachedTask) ReadMemory(buf []byte, addr uint64) (int, error) {
	n := 0
	for n < len(buf) {
		a := addr + uint64(n)
		base := a &^ (c.pageSize - 1)
		page, err := c.page(base)
		if err != nil {
			return n, err
		}
		off := a - base
		if off >= uint64(len(page)) {
			return n, fmt.Errorf("could not read memory at %#x: page only partially mapped", a)
		}
		n += copy(buf[n:], page[off:])
	}
	return n, nil
}

func (c *CachedTask) page(base uint64) ([]byte, error) {
	if v, ok := c.pages.Get(base); ok {
		return v.([]byte), nil
	}
	page := make([]byte, c.pageSize)
	n, err := c.Task.ReadMemory(page, base)
	if n == 0 {
		if err == nil {
			err = fmt.Errorf("could not read memory at %#x", base)
		}
		return nil, err
	}
	page = page[:n]
	c.pages.Add(base, page)
	return page, nil
}

// Purge drops every cached page. It must be called whenever the target is
// resumed.
func (c *CachedTask) Purge() {
	c.pages.Purge()
}
