// ==============================================================================================
// FILE: object/closure.go
// ==============================================================================================
// PURPOSE: Closure is Mython's variable scope. Spec §3 allows exactly two kinds — the single
//          global closure, and a fresh closure per call that sees the globals plus its own
//          locals — with no generic lexical nesting (a method body never sees its caller's
//          locals, and there are no closures over enclosing function scopes). Grounded on the
//          teacher's object.Environment map-based store, with the teacher's arbitrary `outer`
//          chain collapsed to this one fixed two-level shape.
// ==============================================================================================

package object

// Closure binds names to ObjectHolders. A call closure additionally sees (but does not shadow
// into) its global closure: lookups that miss locally fall through to globals; assignment always
// writes to the closure it's called on.
type Closure struct {
	vars   map[string]*ObjectHolder
	global *Closure // nil for the global closure itself
}

// NewGlobalClosure creates the single top-level closure a program executes in.
func NewGlobalClosure() *Closure {
	return &Closure{vars: make(map[string]*ObjectHolder)}
}

// NewCallClosure creates a fresh closure for one method/function invocation, seeing global's
// bindings as fallback but never any other enclosing call's locals.
func NewCallClosure(global *Closure) *Closure {
	return &Closure{vars: make(map[string]*ObjectHolder), global: global}
}

// Get resolves name: current closure first, then the global closure if this isn't it.
func (c *Closure) Get(name string) (*ObjectHolder, bool) {
	if h, ok := c.vars[name]; ok {
		return h, true
	}
	if c.global != nil {
		return c.global.Get(name)
	}
	return nil, false
}

// Bind creates or replaces name's holder in this closure with a fresh one owning obj.
func (c *Closure) Bind(name string, obj Object) *ObjectHolder {
	h := NewHolder(obj)
	c.vars[name] = h
	return h
}

// BindHolder installs an already-existing holder under name in this closure, so the name shares
// that holder instead of getting a fresh one as with Bind.
func (c *Closure) BindHolder(name string, h *ObjectHolder) {
	c.vars[name] = h
}

// IsGlobal reports whether c is the top-level closure.
func (c *Closure) IsGlobal() bool {
	return c.global == nil
}

// Global returns the top-level closure reachable from c: c itself if c is already global, or
// the closure it was created with NewCallClosure against.
func (c *Closure) Global() *Closure {
	if c.global == nil {
		return c
	}
	return c.global
}
