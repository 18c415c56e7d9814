package xtype

import (
	"slices"
	"sync/atomic"
)

// Registry 是从类型定义文件加载的类型集合，支持原子重载。
//
// 重载会创建新的 *Type 实例。已存储的值仍引用旧实例，
// 与重载后存储的同名类型的值按类型指针比较时不相等。
type Registry struct {
	path  string
	types atomic.Pointer[map[string]*Type]
}

// NewRegistry 从 path 加载类型定义。
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path 返回类型定义文件路径。
func (r *Registry) Path() string {
	return r.path
}

// Lookup 返回名为 name 的类型。
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := (*r.types.Load())[name]
	return t, ok
}

// Names 返回已定义的类型名，按字典序排列。
func (r *Registry) Names() []string {
	m := *r.types.Load()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reload 重新读取类型定义文件。失败时保留当前类型集合。
func (r *Registry) Reload() error {
	types, err := LoadTypesFile(r.path)
	if err != nil {
		return err
	}
	r.types.Store(&types)
	return nil
}
