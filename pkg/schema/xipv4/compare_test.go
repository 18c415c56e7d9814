package xipv4

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xvalue/pkg/schema/xtype"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"192.0.2.1", "192.0.2.1", true},
		{"192.0.2.1%eth0", "192.0.2.1%eth0", true},
		{"192.0.2.1%", "192.0.2.1%", true},
		{"192.0.2.1", "192.0.2.2", false},
		{"192.0.2.1%eth0", "192.0.2.1%eth1", false},
		{"192.0.2.1%eth0", "192.0.2.1", false},
		{"192.0.2.1%", "192.0.2.1", false},
	}
	c, _ := newForTest(t)
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			a := mustStoreText(t, c, tt.a)
			defer c.Free(a)
			b := mustStoreText(t, c, tt.b)
			defer c.Free(b)

			assert.True(t, c.Compare(a, a), "reflexive")
			assert.Equal(t, tt.want, c.Compare(a, b))
			assert.Equal(t, tt.want, c.Compare(b, a), "symmetric")
		})
	}
}

func TestCompareAcrossFormats(t *testing.T) {
	c, _ := newForTest(t)
	text := mustStoreText(t, c, "198.51.100.7%eth0")
	defer c.Free(text)
	bin := mustStoreBinary(t, c, []byte{0xC6, 0x33, 0x64, 0x07, 'e', 't', 'h', '0'})
	defer c.Free(bin)

	assert.True(t, c.Compare(text, bin))
}

func TestCompareDifferentTypes(t *testing.T) {
	c, _ := newForTest(t)
	other := &xtype.Type{Name: "ipv4-address-no-zone"}

	a := mustStoreText(t, c, "192.0.2.1")
	defer c.Free(a)
	b, err := c.Store(other, xtype.TextInput("192.0.2.1"))
	require.NoError(t, err)
	defer c.Free(b)

	assert.False(t, c.Compare(a, b))
}

func TestCompareZeroValues(t *testing.T) {
	c, _ := newForTest(t)
	v := mustStoreText(t, c, "192.0.2.1")
	defer c.Free(v)

	assert.True(t, c.Compare(nil, nil))
	assert.True(t, c.Compare(&Value{}, &Value{}))
	assert.False(t, c.Compare(v, nil))
	assert.False(t, c.Compare(nil, v))
	assert.False(t, c.Compare(v, &Value{typ: testType}))
}

func TestHashConsistentWithCompare(t *testing.T) {
	c, _ := newForTest(t)
	inputs := []string{"192.0.2.1", "192.0.2.1%eth0", "10.0.0.1%eth0", "192.0.2.1%"}

	values := make([]*Value, 0, len(inputs)*2)
	for _, s := range inputs {
		values = append(values, mustStoreText(t, c, s))
		bin, err := c.Print(values[len(values)-1], xtype.FormatBinary)
		require.NoError(t, err)
		values = append(values, mustStoreBinary(t, c, bin.Data))
	}
	defer func() {
		for _, v := range values {
			c.Free(v)
		}
	}()

	for _, a := range values {
		for _, b := range values {
			if !c.Compare(a, b) {
				continue
			}
			ha, err := c.Hash(a)
			require.NoError(t, err)
			hb, err := c.Hash(b)
			require.NoError(t, err)
			assert.Equal(t, ha.Data, hb.Data)

			sa, err := c.Sum64(a)
			require.NoError(t, err)
			sb, err := c.Sum64(b)
			require.NoError(t, err)
			assert.Equal(t, sa, sb)
		}
	}
}

func TestHashIsBinaryForm(t *testing.T) {
	c, _ := newForTest(t)
	v := mustStoreText(t, c, "198.51.100.7%eth0")
	defer c.Free(v)

	key, err := c.Hash(v)
	require.NoError(t, err)
	bin, err := c.Print(v, xtype.FormatBinary)
	require.NoError(t, err)
	assert.Equal(t, bin, key)

	sum, err := c.Sum64(v)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(bin.Data), sum)
}

func TestHashZeroValue(t *testing.T) {
	c, _ := newForTest(t)
	_, err := c.Hash(&Value{})
	assert.ErrorIs(t, err, xtype.ErrRender)
	_, err = c.Sum64(nil)
	assert.ErrorIs(t, err, xtype.ErrRender)
}
