// Package miscache memoizes solved graphs in a badger key-value store, so
// repeated solves of the same causal graph across runs are free.
//
// Keys are "mis/<fingerprint>/<findAll>/<k>" where the fingerprint is an
// xxhash digest of the graph's adjacency rows. Values carry a second,
// independently computed edge digest that is checked on read, then the
// sets as delta-coded varint lists.
//
// Only exhaustive results belong in the cache; callers must not store the
// result of a solve that timed out.
package miscache

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
	"github.com/ipc2023-classical/planner17-sub002/vset"
)

var (
	// ErrClosed is returned by operations on a closed cache.
	ErrClosed = errors.New("miscache: cache is closed")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("miscache: corrupt entry")
)

// Cache is a persistent (or in-memory) store of solve results.
// It is safe for concurrent use.
type Cache struct {
	db *badger.DB
}

// Open opens the cache in dir. An empty dir gives an in-memory store.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.MetricsEnabled = false
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "miscache: open %q", dir)
	}

	return &Cache{db: db}, nil
}

// Close releases the store.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return err
}

// Fingerprint digests the order and every adjacency row of g.
func Fingerprint(g *ngraph.Graph) uint64 {
	d := xxhash.New()
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(g.Order()))
	d.Write(word[:])
	for v := 0; v < g.Order(); v++ {
		for _, w := range g.Row(v).Words() {
			binary.LittleEndian.PutUint64(word[:], w)
			d.Write(word[:])
		}
	}

	return d.Sum64()
}

// edgeDigest is the collision check stored with each value.
func edgeDigest(g *ngraph.Graph) uint64 {
	b := proto.NewBuffer(nil)
	_ = b.EncodeVarint(uint64(g.Order()))
	for _, e := range g.Edges() {
		_ = b.EncodeVarint(uint64(e[0]))
		_ = b.EncodeVarint(uint64(e[1]))
	}

	return xxhash.Sum64(b.Bytes())
}

func key(g *ngraph.Graph, findAll bool, k int) []byte {
	return []byte(fmt.Sprintf("mis/%016x/%t/%d", Fingerprint(g), findAll, k))
}

// Get returns the cached sets for g under the given solve parameters.
func (c *Cache) Get(g *ngraph.Graph, findAll bool, k int) ([]vset.Set, bool, error) {
	if c.db == nil {
		return nil, false, ErrClosed
	}
	var val []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(g, findAll, k))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)

		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "miscache: get")
	}

	sets, digest, err := decode(g.Order(), val)
	if err != nil {
		return nil, false, err
	}
	if digest != edgeDigest(g) {
		klog.V(1).Infof("miscache: fingerprint collision on %d-vertex graph, ignoring entry", g.Order())
		return nil, false, nil
	}

	return sets, true, nil
}

// Put stores sets for g under the given solve parameters.
func (c *Cache) Put(g *ngraph.Graph, findAll bool, k int, sets []vset.Set) error {
	if c.db == nil {
		return ErrClosed
	}
	val := encode(edgeDigest(g), sets)
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(g, findAll, k), val)
	})

	return errors.Wrap(err, "miscache: put")
}

func encode(digest uint64, sets []vset.Set) []byte {
	b := proto.NewBuffer(nil)
	_ = b.EncodeFixed64(digest)
	_ = b.EncodeVarint(uint64(len(sets)))
	for _, s := range sets {
		_ = b.EncodeVarint(uint64(s.Count()))
		prev := 0
		s.Each(func(v int) {
			_ = b.EncodeVarint(uint64(v - prev))
			prev = v
		})
	}

	return b.Bytes()
}

func decode(n int, val []byte) ([]vset.Set, uint64, error) {
	b := proto.NewBuffer(val)
	digest, err := b.DecodeFixed64()
	if err != nil {
		return nil, 0, errors.Wrap(ErrCorrupt, err.Error())
	}
	count, err := b.DecodeVarint()
	if err != nil {
		return nil, 0, errors.Wrap(ErrCorrupt, err.Error())
	}
	// every set takes at least one byte
	if count > uint64(len(val)) {
		return nil, 0, errors.Wrapf(ErrCorrupt, "%d sets in %d bytes", count, len(val))
	}
	sets := make([]vset.Set, 0, count)
	for i := uint64(0); i < count; i++ {
		size, err := b.DecodeVarint()
		if err != nil {
			return nil, 0, errors.Wrapf(ErrCorrupt, "set %d: %v", i, err)
		}
		if size > uint64(n) {
			return nil, 0, errors.Wrapf(ErrCorrupt, "set %d: %d vertices of %d", i, size, n)
		}
		s := vset.New(n)
		v := 0
		for j := uint64(0); j < size; j++ {
			d, err := b.DecodeVarint()
			if err != nil {
				return nil, 0, errors.Wrapf(ErrCorrupt, "set %d: %v", i, err)
			}
			if d > uint64(n) {
				return nil, 0, errors.Wrapf(ErrCorrupt, "set %d: delta %d of %d", i, d, n)
			}
			v += int(d)
			if v < 0 || v >= n {
				return nil, 0, errors.Wrapf(ErrCorrupt, "set %d: vertex %d of %d", i, v, n)
			}
			s.Add(v)
		}
		sets = append(sets, s)
	}

	return sets, digest, nil
}
