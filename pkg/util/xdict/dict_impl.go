package xdict

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel/metric"
)

// dictImpl 是 Dict 的分片实现。
type dictImpl struct {
	shards     []shard
	mask       uint64
	opts       *options
	closed     atomic.Bool
	entryCount atomic.Int64
	refCount   atomic.Int64
	reg        metric.Registration
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// entry 表示一个驻留字符串条目。
// refcnt 受所属分片的 mu 保护，归零时条目从 map 中删除。
type entry struct {
	s      string
	refcnt int
	// zc 为 true 时 s 直接引用 owned 缓冲区（零拷贝插入），
	// 条目回收后调用 release 归还。
	owned   []byte
	release func([]byte)
	zc      bool
}

func newDictImpl(o options) (*dictImpl, error) {
	shards := make([]shard, o.shardCount)
	for i := range shards {
		shards[i].entries = make(map[string]*entry)
	}
	d := &dictImpl{
		shards: shards,
		mask:   o.shardMask,
		opts:   &o,
	}
	if o.meterProvider != nil {
		reg, err := registerMetrics(o.meterProvider, d)
		if err != nil {
			return nil, err
		}
		d.reg = reg
	}
	return d, nil
}

func (d *dictImpl) getShard(s string) *shard {
	h := xxhash.Sum64String(s)
	return &d.shards[h&d.mask]
}

// getShardBytes 与 getShard 对相同内容选中同一分片，避免 []byte→string 分配。
func (d *dictImpl) getShardBytes(b []byte) *shard {
	h := xxhash.Sum64(b)
	return &d.shards[h&d.mask]
}

func (d *dictImpl) Insert(b []byte) (Ref, error) {
	// string(b) 在 map 查找中不分配；仅在创建新条目时复制。
	return d.insert(b, false, nil)
}

func (d *dictImpl) InsertString(s string) (Ref, error) {
	if len(s) == 0 {
		return d.insert(nil, false, nil)
	}
	return d.insert(unsafe.Slice(unsafe.StringData(s), len(s)), false, nil)
}

func (d *dictImpl) InsertOwned(o *Owned) (Ref, error) {
	buf, release, ok := o.take()
	if !ok {
		return Ref{}, ErrConsumed
	}
	return d.insert(buf, true, release)
}

// insert 是三种插入方式的公共路径。
// zc 表示零拷贝插入：成功创建新条目时 b 成为条目存储，
// 其余情况（内容已存在、出错）在返回前调用 release 丢弃 b。
func (d *dictImpl) insert(b []byte, zc bool, release func([]byte)) (Ref, error) {
	absorbed := false
	defer func() {
		if zc && !absorbed && release != nil {
			release(b)
		}
	}()

	if d.closed.Load() {
		return Ref{}, ErrClosed
	}

	s := d.getShardBytes(b)
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.closed.Load() {
		return Ref{}, ErrClosed
	}

	if e, ok := s.entries[string(b)]; ok {
		e.refcnt++
		d.refCount.Add(1)
		return Ref{e: e}, nil
	}

	if d.opts.maxEntries > 0 {
		// 使用 CAS 严格限制条目数量，避免跨分片并发突破上限。
		for {
			cur := d.entryCount.Load()
			if cur >= int64(d.opts.maxEntries) {
				return Ref{}, ErrCapacity
			}
			if d.entryCount.CompareAndSwap(cur, cur+1) {
				break
			}
		}
	} else {
		d.entryCount.Add(1)
	}

	e := &entry{refcnt: 1}
	if zc {
		e.s = unsafe.String(unsafe.SliceData(b), len(b))
		e.owned = b
		e.release = release
		e.zc = true
		absorbed = true
	} else {
		e.s = string(b)
	}
	s.entries[e.s] = e
	d.refCount.Add(1)
	return Ref{e: e}, nil
}

func (d *dictImpl) Remove(r Ref) {
	if r.e == nil {
		return
	}
	e := r.e
	s := d.getShard(e.s)

	s.mu.Lock()
	if e.refcnt <= 0 {
		s.mu.Unlock()
		d.opts.logger.Warn("xdict: remove of released entry ignored",
			slog.Int("len", len(e.s)))
		return
	}
	e.refcnt--
	d.refCount.Add(-1)
	if e.refcnt > 0 {
		s.mu.Unlock()
		return
	}
	if cur, ok := s.entries[e.s]; ok && cur == e {
		delete(s.entries, e.s)
	}
	d.entryCount.Add(-1)
	owned, release := e.owned, e.release
	e.owned, e.release = nil, nil
	s.mu.Unlock()

	// 回调在锁外执行，允许回调内部再次使用字典。
	if e.zc && release != nil {
		release(owned)
	}
}

func (d *dictImpl) Len() int {
	return int(max(d.entryCount.Load(), 0))
}

func (d *dictImpl) Refs(str string) int {
	s := d.getShard(str)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[str]; ok {
		return e.refcnt
	}
	return 0
}

func (d *dictImpl) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	if d.reg != nil {
		return d.reg.Unregister()
	}
	return nil
}

// 编译期接口检查。
var _ Dict = (*dictImpl)(nil)
