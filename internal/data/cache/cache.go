package cache

import (
	"sync"

	"github.com/marykwonn/Project-Texas/internal/util"
)

type MissReason int

const (
	MissReasonNone MissReason = iota
	MissReasonNotFound
	MissReasonError
	MissReasonInode
	MissReasonSize
	MissReasonModTime
	MissReasonFingerprint
)

func (r MissReason) String() string {
	switch r {
	case MissReasonNone:
		return "none"
	case MissReasonNotFound:
		return "not found"
	case MissReasonError:
		return "stat error"
	case MissReasonInode:
		return "inode changed"
	case MissReasonSize:
		return "size changed"
	case MissReasonModTime:
		return "modtime changed"
	case MissReasonFingerprint:
		return "content changed"
	default:
		return "unknown"
	}
}

type Result[T any] struct {
	Value      T
	Found      bool
	MissReason MissReason
}

type entry[T any] struct {
	value       T
	fingerprint util.Fingerprint
}

// FileCache holds values parsed from files, keyed by path. An entry is only
// returned while the file still matches the fingerprint taken when it was
// parsed.
type FileCache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
}

func New[T any]() *FileCache[T] {
	return &FileCache[T]{entries: make(map[string]entry[T])}
}

func (c *FileCache[T]) Get(path string) Result[T] {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()

	if !ok {
		return Result[T]{MissReason: MissReasonNotFound}
	}
	if reason := validate(path, e.fingerprint); reason != MissReasonNone {
		util.LogDebugf("Cache invalidated for %s: %s", path, reason)
		c.drop(path)
		return Result[T]{MissReason: reason}
	}
	return Result[T]{Value: e.value, Found: true}
}

// GetOrLoad returns the cached value for path or calls load and caches its
// result. The fingerprint is taken before load runs, so a file that changes
// while it is being parsed misses on the next call.
func (c *FileCache[T]) GetOrLoad(path string, load func() (T, error)) (T, error) {
	if res := c.Get(path); res.Found {
		util.LogDebugf("Cache hit for %s", path)
		return res.Value, nil
	}

	fp, fpErr := util.FingerprintFile(path)
	value, err := load()
	if err != nil {
		return value, err
	}
	if fpErr == nil {
		c.store(path, value, fp)
	}
	return value, nil
}

func (c *FileCache[T]) drop(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

func (c *FileCache[T]) store(path string, value T, fp util.Fingerprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry[T]{value: value, fingerprint: fp}
}

// validate checks stat identity first and only hashes the file tail when
// inode, size and modtime all match.
func validate(path string, cached util.Fingerprint) MissReason {
	info, err := util.GetFileInfo(path)
	if err != nil {
		return MissReasonError
	}
	if info.Inode != cached.Info.Inode {
		return MissReasonInode
	}
	if info.Size != cached.Info.Size {
		return MissReasonSize
	}
	if info.ModTime != cached.Info.ModTime {
		return MissReasonModTime
	}

	tail, err := util.CalculateFileFingerprint(path)
	if err != nil {
		return MissReasonError
	}
	if tail != cached.Tail {
		return MissReasonFingerprint
	}
	return MissReasonNone
}
