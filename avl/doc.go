// Package avl implements a height-balanced binary search tree (AVL tree)
// holding a set of int keys.
//
// What:
//
//   - Insert, Delete and Search in O(log n).
//   - Every node caches its height (leaf = 1, empty subtree = 0) and satisfies
//     |height(left) − height(right)| ≤ 1 after every operation.
//   - Read-only accessors (Root, Node.Left/Right/Height/Balance, InOrder, All)
//     let a renderer walk the live tree without keeping its own copy.
//
// Rebalancing:
//
//   - After an insert, the first unbalanced ancestor is repaired by one of the
//     four canonical cases, chosen by comparing the inserted key with the child
//     on the heavy side: LL (single right rotation), RR (single left rotation),
//     LR (left then right), RL (right then left).
//   - After a delete the key is gone, so the case is chosen by the child's
//     balance factor instead: a child leaning the same way or level gets a
//     single rotation, a child leaning the other way gets a double rotation.
//   - A node with two children takes the key of its in-order successor (the
//     minimum of the right subtree), and that successor is then deleted from
//     the right subtree.
//
// Errors:
//
//	None. Inserting a duplicate, or deleting or searching for a missing key,
//	is a defined no-op reported through a bool result.
//
// Concurrency:
//
//	A Tree is not safe for concurrent use; callers serialize access.
package avl
