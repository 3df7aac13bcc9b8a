package recording

import "github.com/pensool/pensool"

// ResourcePool stores the paths referenced by recorded commands.
// Each added path is cloned so the recording stays immutable.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths []*pensool.Path
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{paths: make([]*pensool.Path, 0, 64)}
}

// AddPath clones path into the pool and returns its reference.
func (p *ResourcePool) AddPath(path *pensool.Path) PathRef {
	var cloned *pensool.Path
	if path != nil {
		cloned = path.Clone()
	}
	p.paths = append(p.paths, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for ref, or nil if ref is out of range.
func (p *ResourcePool) GetPath(ref PathRef) *pensool.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}
