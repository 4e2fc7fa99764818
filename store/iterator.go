package store

import (
	"bytes"
	"sync"

	"github.com/google/btree"

	"github.com/emberfi/ember/errors"
)

///////////////////////////////////////////////////////
// From btree items to Iterator

type btreeIter struct {
	data    btree.Item
	hasMore bool
	read    <-chan btree.Item
	stop    chan<- struct{}
	once    sync.Once
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

func ascendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read: read,
		stop: stop,
	}

	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			close(read)
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Ascend(insert)
		} else if start == nil { // end != nil
			bt.AscendLessThan(bkey{end}, insert)
		} else if end == nil { // start != nil
			bt.AscendGreaterOrEqual(bkey{start}, insert)
		} else { // both != nil
			bt.AscendRange(bkey{start}, bkey{end}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func descendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read: read,
		stop: stop,
	}

	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			close(read)
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Descend(insert)
		} else if start == nil { // end != nil
			bt.DescendLessOrEqual(bkeyLess{end}, insert)
		} else if end == nil { // start != nil
			bt.DescendGreaterThan(bkeyLess{start}, insert)
		} else { // both != nil
			bt.DescendRange(bkeyLess{end}, bkeyLess{start}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func (b *btreeIter) wrap(parent Iterator) *itemIter {
	return &itemIter{
		wrap:   b,
		parent: newLookahead(parent),
	}
}

func (b *btreeIter) wrapReverse(parent Iterator) *itemIter {
	return &itemIter{
		wrap:    b,
		parent:  newLookahead(parent),
		reverse: true,
	}
}

func (b *btreeIter) next() {
	b.data, b.hasMore = <-b.read
}

func (b *btreeIter) close() {
	b.once.Do(func() {
		b.stop <- struct{}{}
	})
}

// get requires this is valid, gets what we are pointing at
func (b *btreeIter) get() keyer {
	return b.data.(keyer)
}

func (b *btreeIter) valid() bool {
	return b.hasMore
}

// lookahead caches the next item of an iterator so that the key can be
// compared before the item is consumed.
type lookahead struct {
	iter    Iterator
	key     []byte
	value   []byte
	done    bool
	primed  bool
	lastErr error
}

func newLookahead(iter Iterator) *lookahead {
	return &lookahead{iter: iter}
}

func (l *lookahead) peek() (key []byte, ok bool, err error) {
	if !l.primed {
		l.advance()
	}
	if l.lastErr != nil {
		return nil, false, l.lastErr
	}
	if l.done {
		return nil, false, nil
	}
	return l.key, true, nil
}

// take returns the cached item and moves the lookahead forward.
func (l *lookahead) take() (key, value []byte) {
	key, value = l.key, l.value
	l.advance()
	return key, value
}

func (l *lookahead) advance() {
	l.primed = true
	key, value, err := l.iter.Next()
	switch {
	case err == nil:
		l.key, l.value = key, value
	case errors.ErrIteratorDone.Is(err):
		l.done = true
		l.key, l.value = nil, nil
	default:
		l.lastErr = err
	}
}

func (l *lookahead) release() {
	l.iter.Release()
}

// itemIter combines btree results with those of the parent store, taking
// into consideration overwrites and deletes.
type itemIter struct {
	wrap *btreeIter
	// if we are iterating in a cache-wrap (and who isn't), we need to
	// combine this iterator with the parent
	parent *lookahead
	// reverse flips key comparison for descending iteration
	reverse bool
}

var _ Iterator = (*itemIter)(nil)

// Next returns the next key/value pair in order of iteration, or
// errors.ErrIteratorDone when exhausted.
func (i *itemIter) Next() ([]byte, []byte, error) {
	for {
		src, err := i.firstKey()
		if err != nil {
			return nil, nil, err
		}

		switch src {
		case none:
			return nil, nil, errors.ErrIteratorDone
		case parent:
			key, value := i.parent.take()
			return key, value, nil
		case us, both:
			item := i.wrap.get()
			i.wrap.next()
			if src == both {
				// same key in the parent is shadowed
				i.parent.take()
			}
			if set, ok := item.(setItem); ok {
				return set.Key(), set.value, nil
			}
			// deleted item, try the next one
		}
	}
}

// Release releases the Iterator.
func (i *itemIter) Release() {
	i.parent.release()
	i.wrap.close()
}

// firstKey selects the iterator with the lowest key, if any.
func (i *itemIter) firstKey() (source, error) {
	parKey, parOk, err := i.parent.peek()
	if err != nil {
		return none, err
	}

	if !parOk {
		if !i.wrap.valid() {
			return none, nil
		}
		return us, nil
	}
	if !i.wrap.valid() {
		return parent, nil
	}

	// both are valid... compare keys....
	usKey := i.wrap.get().Key()

	cmp := bytes.Compare(parKey, usKey)
	if i.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent, nil
	case cmp > 0:
		return us, nil
	default:
		return both, nil
	}
}
