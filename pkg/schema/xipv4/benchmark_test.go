package xipv4

import (
	"testing"

	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xdict"
)

func BenchmarkStoreText(b *testing.B) {
	c, _ := newForTest(b)
	in := xtype.TextInput("198.51.100.7%eth0")
	b.ReportAllocs()
	for b.Loop() {
		v, _ := c.Store(testType, in)
		c.Free(v)
	}
}

func BenchmarkStoreTextOwned(b *testing.B) {
	c, _ := newForTest(b)
	// 常驻一份相同内容，使 Owned 缓冲区走去重分支。
	keep := mustStoreText(b, c, "198.51.100.7%eth0")
	defer c.Free(keep)
	buf := []byte("198.51.100.7%eth0")
	b.ReportAllocs()
	for b.Loop() {
		v, _ := c.Store(testType, xtype.Input{Owned: xdict.Own(buf), Format: xtype.FormatText})
		c.Free(v)
	}
}

func BenchmarkStoreBinary(b *testing.B) {
	c, _ := newForTest(b)
	in := xtype.BinaryInput([]byte{0xC6, 0x33, 0x64, 0x07, 'e', 't', 'h', '0'})
	b.ReportAllocs()
	for b.Loop() {
		v, _ := c.Store(testType, in)
		c.Free(v)
	}
}

func BenchmarkPrint(b *testing.B) {
	c, _ := newForTest(b)
	v := mustStoreBinary(b, c, []byte{0xC6, 0x33, 0x64, 0x07, 'e', 't', 'h', '0'})
	defer c.Free(v)

	b.Run("binary", func(b *testing.B) {
		for b.Loop() {
			_, _ = c.Print(v, xtype.FormatBinary)
		}
	})
	b.Run("text_cached", func(b *testing.B) {
		for b.Loop() {
			_, _ = c.Print(v, xtype.FormatText)
		}
	})
}

func BenchmarkCompare(b *testing.B) {
	c, _ := newForTest(b)
	x := mustStoreText(b, c, "198.51.100.7%eth0")
	defer c.Free(x)
	y := mustStoreBinary(b, c, []byte{0xC6, 0x33, 0x64, 0x07, 'e', 't', 'h', '0'})
	defer c.Free(y)
	for b.Loop() {
		_ = c.Compare(x, y)
	}
}

func BenchmarkSum64(b *testing.B) {
	c, _ := newForTest(b)
	v := mustStoreText(b, c, "198.51.100.7")
	defer c.Free(v)
	for b.Loop() {
		_, _ = c.Sum64(v)
	}
}

func BenchmarkDuplicate(b *testing.B) {
	c, _ := newForTest(b)
	v := mustStoreText(b, c, "198.51.100.7%eth0")
	defer c.Free(v)
	b.ReportAllocs()
	for b.Loop() {
		dup, _ := c.Duplicate(v)
		c.Free(dup)
	}
}
