package xtype

import "github.com/omeyang/xvalue/pkg/util/xdict"

// Input 是一次 Store 调用的原始输入。
//
// Data 与 Owned 二选一：
//   - Data：调用方保留缓冲区，编解码器必须复制需要保存的内容
//   - Owned：调用方把缓冲区所有权交给编解码器，编解码器必须在每条退出路径上
//     恰好消费一次（吸收进字典或丢弃），包括出错路径
type Input struct {
	Data   []byte
	Owned  *xdict.Owned
	Format Format
	Hints  Hints
}

// Bytes 返回输入内容。Owned 优先。
func (in Input) Bytes() []byte {
	if in.Owned != nil {
		return in.Owned.Bytes()
	}
	return in.Data
}

// Release 丢弃尚未被消费的 Owned 缓冲区；Data 输入是 no-op。
func (in Input) Release() {
	in.Owned.Drop()
}

// TextInput 构造文本输入，调用方保留 s。
func TextInput(s string) Input {
	return Input{Data: []byte(s), Format: FormatText, Hints: HintString}
}

// BinaryInput 构造二进制输入，调用方保留 b。
func BinaryInput(b []byte) Input {
	return Input{Data: b, Format: FormatBinary}
}

// Output 是一次 Print/Hash 调用的结果。
//
// Dynamic 为 false 时 Data 借用自值本身或其缓存的规范字符串，调用方不得修改，
// 且在值被 Free 后失效；为 true 时 Data 是新分配的，归调用方所有。
type Output struct {
	Data    []byte
	Dynamic bool
}

// Codec 是值类型编解码器的生命周期契约。
//
// V 是编解码器的值句柄类型。一个值只能由 Store 或 Duplicate 创建，
// 只能由 Free 销毁。编解码器不做内部加锁：对同一个值的写操作（Print 会写入缓存）
// 由调用方串行化；构造完成后只读共享是安全的。
type Codec[V any] interface {
	// Store 解析并校验输入，返回新值。失败时不泄露任何部分状态。
	Store(typ *Type, in Input) (V, error)

	// Compare 报告两个值是否相等。只定义相等，不定义顺序。
	Compare(a, b V) bool

	// Print 以指定格式输出值。
	Print(v V, format Format) (Output, error)

	// Hash 返回值的哈希键。相等的值一定产生相同的哈希键。
	Hash(v V) (Output, error)

	// Duplicate 深拷贝值。失败时不产生半构造的值。
	Duplicate(v V) (V, error)

	// Free 释放值持有的所有资源。对零值是 no-op；对同一值调用两次是错误用法。
	Free(v V)
}
