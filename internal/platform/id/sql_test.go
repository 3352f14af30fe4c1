package id

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	_ driver.Valuer = U64ID(0)
	_ sql.Scanner   = (*U64ID)(nil)
)

func TestValue(t *testing.T) {
	v, err := FromRaw(123454321).Value()
	require.NoError(t, err)
	require.Equal(t, "75bc371", v)
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want U64ID
	}{
		{name: "text", src: "a12b345", want: FromRaw(0xa12b345)},
		{name: "bytes", src: []byte("75bc371"), want: FromRaw(123454321)},
		{name: "legacy bigint", src: int64(12345), want: FromRaw(0x12345)},
		{name: "unsigned", src: uint64(12345), want: FromRaw(0x12345)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got U64ID
			require.NoError(t, got.Scan(tt.src))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScan_Failures(t *testing.T) {
	for _, src := range []any{nil, "zzz", int64(-1), 1.5, true} {
		var got U64ID
		require.ErrorIs(t, got.Scan(src), ErrInvalidEncoding, "src %v", src)
	}
}

func TestScan_NullableColumn(t *testing.T) {
	var n sql.Null[U64ID]
	require.NoError(t, n.Scan(nil))
	require.False(t, n.Valid)

	require.NoError(t, n.Scan("ff"))
	require.True(t, n.Valid)
	require.Equal(t, FromRaw(0xff), n.V)
}
