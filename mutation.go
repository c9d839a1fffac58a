package wbtree

// ModKind classifies the outcome of a single modification.
type ModKind int8

const (
	// ModIdentity records that nothing changed.
	ModIdentity ModKind = iota
	// ModRebuilding records a payload replacement that must not be
	// rebalanced at this level, e.g. because a larger operation is still in
	// progress below.
	ModRebuilding
	// ModRebalancing is the normal case: the change propagates up through
	// the balance policy.
	ModRebalancing
)

func (k ModKind) String() string {
	switch k {
	case ModIdentity:
		return "identity"
	case ModRebuilding:
		return "rebuilding"
	case ModRebalancing:
		return "rebalancing"
	}
	return "invalid"
}

// ModResult is what a Modifier reports back for one target entry. Use one of
// the constructors; the zero value is an identity over an absent entry.
type ModResult[K any] struct {
	kind        ModKind
	replacement Node[K]
}

// IdentityResult leaves the target entry untouched.
func IdentityResult[K any]() ModResult[K] {
	return ModResult[K]{kind: ModIdentity}
}

// RebalancingResult replaces the target entry (or inserts, when the target
// was absent) and lets the balance policy restructure on the way up. A nil
// replacement deletes the entry. Only the replacement's payload is used; its
// children are supplied by the driver.
func RebalancingResult[K any](replacement Node[K]) ModResult[K] {
	return ModResult[K]{kind: ModRebalancing, replacement: replacement}
}

// RebuildingResult replaces the target entry's payload without rebalancing
// at this level. The replacement must not be nil.
func RebuildingResult[K any](replacement Node[K]) ModResult[K] {
	assert(replacement != nil, "rebuilding modification cannot delete")
	return ModResult[K]{kind: ModRebuilding, replacement: replacement}
}

// Modifier computes the replacement for a single target entry. Modify
// receives the sought key and the existing node carrying it, or nil when the
// key is absent. This one callback is how insert, remove and conditional
// replace are all expressed; only the closure varies per call site.
type Modifier[K any] interface {
	Modify(key K, existing Node[K]) ModResult[K]
}

// ModifierFunc adapts a plain function to the Modifier interface.
type ModifierFunc[K any] func(key K, existing Node[K]) ModResult[K]

// Modify calls f.
func (f ModifierFunc[K]) Modify(key K, existing Node[K]) ModResult[K] {
	return f(key, existing)
}

// MutationResult records the outcome of one mutation-driver invocation at a
// single tree location: the subtree root before and after the change, the
// pre-/post-images of the targeted entry, and the change classification.
type MutationResult[K any] struct {
	Key            K
	OriginalRoot   Node[K]
	ChangedRoot    Node[K]
	OriginalTarget Node[K]
	ChangedTarget  Node[K]
	Kind           ModKind
}

// Seek returns the node carrying key, or nil when absent.
func Seek[K any](cmp Comparator[K], root Node[K], key K) Node[K] {
	for node := root; node != nil; {
		c := cmp(key, node.Key())
		switch {
		case c < 0:
			node = node.Child(Left)
		case c > 0:
			node = node.Child(Right)
		default:
			return node
		}
	}
	return nil
}

// Mutate descends from root to the location of key, applies mod there, and
// lifts the result back up through the balance policy. The returned
// ChangedRoot is the new tree; root and all untouched subtrees stay valid
// and shared.
func Mutate[K any](cmp Comparator[K], policy BalancePolicy[K], f NodeFactory[K],
	root Node[K], key K, mod Modifier[K],
) MutationResult[K] {
	if root != nil {
		c := cmp(key, root.Key())
		if c != 0 {
			side := Left
			if c > 0 {
				side = Right
			}
			sub := Mutate(cmp, policy, f, root.Child(side), key, mod)
			return Lift(policy, f, sub, root, side)
		}
	}
	return modifyAt(policy, f, root, key, mod)
}

// modifyAt applies the modifier at the target location. target either
// carries key or is nil (key absent).
func modifyAt[K any](policy BalancePolicy[K], f NodeFactory[K],
	target Node[K], key K, mod Modifier[K],
) MutationResult[K] {
	r := mod.Modify(key, target)
	result := MutationResult[K]{
		Key:            key,
		OriginalRoot:   target,
		OriginalTarget: target,
		Kind:           r.kind,
	}
	switch r.kind {
	case ModIdentity:
		result.ChangedRoot = target
		result.ChangedTarget = target
	case ModRebuilding:
		assert(target != nil, "rebuilding modification requires an existing target")
		result.ChangedTarget = r.replacement
		result.ChangedRoot = f.New(r.replacement, target.Child(Left), target.Child(Right))
	case ModRebalancing:
		result.ChangedTarget = r.replacement
		switch {
		case r.replacement == nil && target == nil:
			// deleting an absent entry is an identity
			result.Kind = ModIdentity
		case r.replacement == nil:
			result.ChangedRoot = policy.Combine(f, target.Child(Left), target.Child(Right))
		case target == nil:
			result.ChangedRoot = policy.Balance(f, r.replacement, nil, nil)
		default:
			result.ChangedRoot = policy.Balance(f, r.replacement,
				target.Child(Left), target.Child(Right))
		}
	default:
		assert(false, "invalid modification kind")
	}
	T().Debugf("wbtree: mutate at target = %s", result.Kind)
	return result
}

// Lift turns a child-level mutation result into a parent-level one: the
// parent is rebuilt with the changed child in the mutated slot, rebalancing
// unless the child result was an identity or asked for a plain rebuild.
func Lift[K any](policy BalancePolicy[K], f NodeFactory[K],
	child MutationResult[K], parent Node[K], side Side,
) MutationResult[K] {
	assert(parent != nil, "lift: nil parent")
	result := MutationResult[K]{
		Key:            child.Key,
		OriginalRoot:   parent,
		OriginalTarget: child.OriginalTarget,
		ChangedTarget:  child.ChangedTarget,
		Kind:           child.Kind,
	}
	if child.Kind == ModIdentity {
		result.ChangedRoot = parent
		return result
	}
	var left, right Node[K]
	if side == Left {
		left, right = child.ChangedRoot, parent.Child(Right)
	} else {
		left, right = parent.Child(Left), child.ChangedRoot
	}
	if child.Kind == ModRebuilding {
		result.ChangedRoot = f.New(parent, left, right)
	} else {
		result.ChangedRoot = policy.Balance(f, parent, left, right)
	}
	return result
}
