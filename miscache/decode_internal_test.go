package miscache

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipc2023-classical/planner17-sub002/vset"
)

// value builds a raw entry: digest, then the given varints.
func value(varints ...uint64) []byte {
	b := proto.NewBuffer(nil)
	_ = b.EncodeFixed64(42)
	for _, x := range varints {
		_ = b.EncodeVarint(x)
	}

	return b.Bytes()
}

func TestDecode_RoundTrip(t *testing.T) {
	sets := []vset.Set{vset.Of(8, 1, 3, 7), vset.New(8)}
	got, digest, err := decode(8, encode(42, sets))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), digest)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(sets[0]))
	assert.True(t, got[1].Empty())
}

func TestDecode_Corrupt(t *testing.T) {
	cases := []struct {
		name string
		val  []byte
	}{
		{"short digest", []byte{1, 2, 3}},
		{"missing count", value()},
		{"huge count", value(1 << 40)},
		{"missing set", value(1)},
		{"set larger than universe", value(1, 9)},
		{"truncated set", value(1, 2, 1)},
		{"delta wraps negative", value(1, 1, 1<<63)},
		{"delta past universe", value(1, 1, 9)},
		{"vertex past universe", value(1, 2, 5, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				_, _, err := decode(8, tc.val)
				assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
			})
		})
	}
}
