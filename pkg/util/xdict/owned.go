package xdict

import "sync/atomic"

// Owned 表示一个所有权已转移给被调用方的缓冲区。
//
// Owned 只能被消费一次：被 [Dict.InsertOwned] 吸收，或被 [Owned.Drop] 丢弃。
// 消费后 [Owned.Bytes] 返回 nil。
type Owned struct {
	buf      []byte
	release  func([]byte)
	consumed atomic.Bool
}

// Own 包装 b，表示调用方把 b 的所有权交给接收方。
// 交出后调用方不得再读写 b。
func Own(b []byte) *Owned {
	return &Owned{buf: b}
}

// OwnFunc 与 Own 相同，并注册 release 回调。
// release 恰好执行一次：缓冲区被丢弃时立即执行；被字典吸收时在条目回收后执行。
func OwnFunc(b []byte, release func([]byte)) *Owned {
	return &Owned{buf: b, release: release}
}

// Bytes 返回尚未消费的缓冲区内容；已消费时返回 nil。
// 返回的切片仅在消费前有效。
func (o *Owned) Bytes() []byte {
	if o == nil || o.consumed.Load() {
		return nil
	}
	return o.buf
}

// Consumed 报告 o 是否已被消费。
func (o *Owned) Consumed() bool {
	return o == nil || o.consumed.Load()
}

// Drop 丢弃缓冲区。对已消费的 Owned 或 nil 是 no-op，
// 因此可以安全地在 defer 中调用，兜底所有退出路径。
func (o *Owned) Drop() {
	buf, release, ok := o.take()
	if !ok {
		return
	}
	if release != nil {
		release(buf)
	}
}

// take 原子地消费 o，返回缓冲区及回调。已消费时 ok 为 false。
func (o *Owned) take() (buf []byte, release func([]byte), ok bool) {
	if o == nil || !o.consumed.CompareAndSwap(false, true) {
		return nil, nil, false
	}
	buf, release = o.buf, o.release
	o.buf, o.release = nil, nil
	return buf, release, true
}
