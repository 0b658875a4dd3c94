// ==============================================================================================
// FILE: object/holder.go
// ==============================================================================================
// PURPOSE: ObjectHolder implements spec §4.2's Own/Share/None reference semantics. In the
//          C++ original this distinction drives manual reference counting; under Go's garbage
//          collector NewHolder (Own) and Share are behaviorally identical (both just hold an Object), so the
//          two constructors exist to document intent at each call site rather than to diverge
//          in behavior — see SPEC_FULL.md's Open Question resolution on self-reference.
// ==============================================================================================

package object

// ObjectHolder is an indirection cell around an Object: what a closure variable or instance
// field actually stores, so a name and the holder behind it can be rebound independently of
// the object it currently points to.
type ObjectHolder struct {
	obj Object
}

// NewHolder creates a holder owning obj.
func NewHolder(obj Object) *ObjectHolder {
	return &ObjectHolder{obj: obj}
}

// Share creates a new holder aliasing the same object h refers to — used by NewClassInstance to
// bind "self" in a new instance's fields without copying the instance.
func Share(h *ObjectHolder) *ObjectHolder {
	return &ObjectHolder{obj: h.Get()}
}

// NewNoneHolder creates a holder bound to None.
func NewNoneHolder() *ObjectHolder {
	return &ObjectHolder{obj: None}
}

// Get returns the held object, or None for a nil holder.
func (h *ObjectHolder) Get() Object {
	if h == nil || h.obj == nil {
		return None
	}
	return h.obj
}

// Set rebinds the holder to obj.
func (h *ObjectHolder) Set(obj Object) {
	h.obj = obj
}
