package bridge

import "github.com/katalvlaran/lvds/avl"

// NewAVL creates an empty AVL tree.
func (r *Registry) NewAVL() Handle { return r.register(KindAVL, avl.New()) }

// AVLInsert adds key; inserted is false for a duplicate.
func (r *Registry) AVLInsert(h Handle, key int) (inserted bool, err error) {
	err = with(r, h, KindAVL, func(t *avl.Tree) error {
		inserted = t.Insert(key)
		return nil
	})

	return inserted, err
}

// AVLDelete removes key; removed is false when key was absent.
func (r *Registry) AVLDelete(h Handle, key int) (removed bool, err error) {
	err = with(r, h, KindAVL, func(t *avl.Tree) error {
		removed = t.Delete(key)
		return nil
	})

	return removed, err
}

// AVLSearch reports whether key is stored.
func (r *Registry) AVLSearch(h Handle, key int) (found bool, err error) {
	err = with(r, h, KindAVL, func(t *avl.Tree) error {
		found = t.Search(key)
		return nil
	})

	return found, err
}

// AVLHeight returns the tree height; 0 for an empty tree.
func (r *Registry) AVLHeight(h Handle) (height int, err error) {
	err = with(r, h, KindAVL, func(t *avl.Tree) error {
		height = t.Height()
		return nil
	})

	return height, err
}

// AVLInOrder returns the keys in ascending order.
func (r *Registry) AVLInOrder(h Handle) (keys []int, err error) {
	err = with(r, h, KindAVL, func(t *avl.Tree) error {
		keys = t.InOrder()
		return nil
	})

	return keys, err
}
