package vset

import (
	"encoding/binary"
	"fmt"
	mbits "math/bits"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/soniakeys/bits"
)

// Set is a set of vertices over a fixed universe [0, Len()).
type Set struct {
	b bits.Bits
}

// New returns an empty set over a universe of n vertices.
func New(n int) Set {
	if n < 0 {
		panic(fmt.Sprintf("vset: negative universe %d", n))
	}

	return Set{b: bits.New(n)}
}

// Of returns a set over n vertices holding vs.
func Of(n int, vs ...int) Set {
	s := New(n)
	for _, v := range vs {
		s.Add(v)
	}

	return s
}

// Full returns the set of all n vertices.
func Full(n int) Set {
	s := New(n)
	if n > 0 {
		s.b.SetAll()
	}

	return s
}

// Len returns the universe size.
func (s Set) Len() int { return s.b.Num }

// Has reports whether v is a member.
func (s Set) Has(v int) bool {
	s.check(v)

	return s.b.Bit(v) == 1
}

// Add inserts v.
func (s Set) Add(v int) {
	s.check(v)
	s.b.SetBit(v, 1)
}

// Remove deletes v.
func (s Set) Remove(v int) {
	s.check(v)
	s.b.SetBit(v, 0)
}

// Clear removes every member.
func (s Set) Clear() { s.b.ClearAll() }

// Count returns the number of members.
func (s Set) Count() int { return s.b.OnesCount() }

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	if s.b.Num == 0 {
		return true
	}

	return s.b.AllZeros()
}

// First returns the smallest member, or -1.
func (s Set) First() int {
	if s.b.Num == 0 {
		return -1
	}

	return s.b.OneFrom(0)
}

// Next returns the smallest member greater than v, or -1.
func (s Set) Next(v int) int {
	if v+1 >= s.b.Num {
		return -1
	}

	return s.b.OneFrom(v + 1)
}

// Each calls fn for every member in ascending order.
func (s Set) Each(fn func(v int)) {
	if s.b.Num == 0 {
		return
	}
	s.b.IterateOnes(func(v int) bool {
		fn(v)
		return true
	})
}

// Slice returns the members in ascending order.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Count())
	s.Each(func(v int) { out = append(out, v) })

	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	c := bits.New(s.b.Num)
	c.Set(s.b)

	return Set{b: c}
}

// Union adds every member of o to s.
func (s Set) Union(o Set) {
	s.same(o)
	for i, w := range o.b.Bits {
		s.b.Bits[i] |= w
	}
}

// Minus removes every member of o from s.
func (s Set) Minus(o Set) {
	s.same(o)
	for i, w := range o.b.Bits {
		s.b.Bits[i] &^= w
	}
}

// Intersect keeps only the members also in o.
func (s Set) Intersect(o Set) {
	s.same(o)
	for i, w := range o.b.Bits {
		s.b.Bits[i] &= w
	}
}

// Equal reports whether s and o hold the same members.
func (s Set) Equal(o Set) bool {
	if s.b.Num != o.b.Num {
		return false
	}
	for i, w := range s.b.Bits {
		if o.b.Bits[i] != w {
			return false
		}
	}

	return true
}

// SubsetOf reports whether every member of s is in o.
func (s Set) SubsetOf(o Set) bool {
	s.same(o)
	for i, w := range s.b.Bits {
		if w&^o.b.Bits[i] != 0 {
			return false
		}
	}

	return true
}

// Intersects reports whether s and o share a member.
func (s Set) Intersects(o Set) bool {
	s.same(o)
	for i, w := range s.b.Bits {
		if w&o.b.Bits[i] != 0 {
			return true
		}
	}

	return false
}

// IntersectCount returns |s ∩ o|.
func (s Set) IntersectCount(o Set) int {
	s.same(o)
	c := 0
	for i, w := range s.b.Bits {
		c += mbits.OnesCount64(w & o.b.Bits[i])
	}

	return c
}

// Hash returns the xxhash fingerprint of the universe size and members.
// Equal sets hash equally; distinct sets may collide.
func (s Set) Hash() uint64 {
	buf := make([]byte, 0, 8*(len(s.b.Bits)+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.b.Num))
	for _, w := range s.b.Bits {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}

	return xxhash.Sum64(buf)
}

// Words exposes the backing words, read only. Used for encoding.
func (s Set) Words() []uint64 { return s.b.Bits }

// String renders the members as "{0 2 5}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(v int) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(v))
	})
	sb.WriteByte('}')

	return sb.String()
}

func (s Set) check(v int) {
	if v < 0 || v >= s.b.Num {
		panic(fmt.Sprintf("vset: vertex %d out of universe [0,%d)", v, s.b.Num))
	}
}

func (s Set) same(o Set) {
	if s.b.Num != o.b.Num {
		panic(fmt.Sprintf("vset: universe mismatch %d != %d", s.b.Num, o.b.Num))
	}
}
