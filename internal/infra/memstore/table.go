package memstore

import (
	"parking-engine/internal/infra"
)

// table holds committed rows. Guarded by Store.mu.
type table[K comparable, V any] struct {
	name   string
	rows   map[K]V
	key    func(*V) K
	unique func(*V) string // "" means the row takes part in no unique index
}

func newTable[K comparable, V any](name string, key func(*V) K, unique func(*V) string) *table[K, V] {
	return &table[K, V]{name: name, rows: make(map[K]V), key: key, unique: unique}
}

// overlay stages a transaction's writes over a table. A nil entry is a deletion.
type overlay[K comparable, V any] struct {
	t      *table[K, V]
	tx     *memTx
	writes map[K]*V
}

func newOverlay[K comparable, V any](t *table[K, V], tx *memTx) *overlay[K, V] {
	o := &overlay[K, V]{t: t, tx: tx, writes: make(map[K]*V)}
	tx.staged = append(tx.staged, o)
	return o
}

func (o *overlay[K, V]) get(k K) (*V, bool) {
	if w, ok := o.writes[k]; ok {
		if w == nil {
			return nil, false
		}
		c := *w
		return &c, true
	}
	o.tx.rlock()
	defer o.tx.runlock()
	v, ok := o.t.rows[k]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (o *overlay[K, V]) scan(match func(*V) bool) []*V {
	var out []*V
	o.tx.rlock()
	for k, v := range o.t.rows {
		if _, staged := o.writes[k]; staged {
			continue
		}
		if match(&v) {
			out = append(out, &v)
		}
	}
	o.tx.runlock()
	for _, w := range o.writes {
		if w == nil {
			continue
		}
		c := *w
		if match(&c) {
			out = append(out, &c)
		}
	}
	return out
}

func (o *overlay[K, V]) insert(v *V) error {
	if err := o.tx.writable(); err != nil {
		return err
	}
	if _, exists := o.get(o.t.key(v)); exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, o.t.name+" id", nil)
	}
	return o.put(v)
}

func (o *overlay[K, V]) update(v *V) error {
	if err := o.tx.writable(); err != nil {
		return err
	}
	if _, exists := o.get(o.t.key(v)); !exists {
		return infra.NotFound(o.t.name)
	}
	return o.put(v)
}

func (o *overlay[K, V]) remove(k K) error {
	if err := o.tx.writable(); err != nil {
		return err
	}
	if _, exists := o.get(k); !exists {
		return infra.NotFound(o.t.name)
	}
	o.writes[k] = nil
	return nil
}

func (o *overlay[K, V]) put(v *V) error {
	k := o.t.key(v)
	if o.t.unique != nil {
		if u := o.t.unique(v); u != "" {
			clash := o.scan(func(other *V) bool {
				return o.t.key(other) != k && o.t.unique(other) == u
			})
			if len(clash) > 0 {
				return infra.WrapRepoErr(infra.KindDuplicateKey, o.t.name+" "+u, nil)
			}
		}
	}
	c := *v
	o.writes[k] = &c
	return nil
}

// validate re-checks unique indexes against rows committed since the writes were staged.
// Caller holds Store.mu for writing.
func (o *overlay[K, V]) validate() error {
	if o.t.unique == nil {
		return nil
	}
	for k, w := range o.writes {
		if w == nil {
			continue
		}
		u := o.t.unique(w)
		if u == "" {
			continue
		}
		for ck, cv := range o.t.rows {
			if ck == k {
				continue
			}
			if _, staged := o.writes[ck]; staged {
				continue
			}
			if o.t.unique(&cv) == u {
				return infra.WrapRepoErr(infra.KindDuplicateKey, o.t.name+" "+u, nil)
			}
		}
	}
	return nil
}

// apply publishes the staged writes. Caller holds Store.mu for writing.
func (o *overlay[K, V]) apply() {
	for k, w := range o.writes {
		if w == nil {
			delete(o.t.rows, k)
			continue
		}
		o.t.rows[k] = *w
	}
}
