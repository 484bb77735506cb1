package v1

type kvPair[T any] struct {
	key []byte
	val T
}

// revisionList records the previous value of every written key
// so that a ledger can be reverted to any earlier snapshot.
type revisionList[T any] struct {
	revs []*kvPair[T]
}

func newRevisionList[T any]() *revisionList[T] {
	return &revisionList[T]{
		revs: make([]*kvPair[T], 0),
	}
}

func (revlist *revisionList[T]) set(key []byte, val T) {
	revlist.revs = append(revlist.revs, &kvPair[T]{
		key: key,
		val: val,
	})
}

func (revlist *revisionList[T]) snapshot() int {
	return len(revlist.revs)
}

func (revlist *revisionList[T]) revert(snap int) {
	revlist.revs = revlist.revs[:snap]
}

func (revlist *revisionList[T]) reset() {
	revlist.revs = revlist.revs[:0]
}

// restores returns the revisions recorded after `snap` in reverse order.
func (revlist *revisionList[T]) restores(snap int) []*kvPair[T] {
	if snap < 0 || snap > len(revlist.revs) {
		return nil
	}
	src := revlist.revs[snap:]
	ret := make([]*kvPair[T], len(src))
	for i, kv := range src {
		ret[len(src)-1-i] = kv
	}
	return ret
}
