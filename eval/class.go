// ==============================================================================================
// FILE: eval/class.go
// ==============================================================================================
// PURPOSE: Class definition, instantiation, and method dispatch — spec §4.3's
//          ClassDefinition/NewInstance/MethodCall nodes, plus the internal dunder dispatch the
//          arithmetic and comparison operators in operators.go reuse for __add__/__eq__/__lt__
//          and print/str() in eval.go reuse for __str__. Grounded on the teacher's applyFunction (fresh enclosed environment per
//          call, bind params, run body, unwrap the return) generalized from free functions to
//          bound methods: every call closure here additionally binds "self".
// ==============================================================================================

package eval

import (
	"mython/ast"
	"mython/object"
)

func (e *evaluator) execClassDefinition(n *ast.ClassDefinition, closure *object.Closure) (*object.ObjectHolder, error) {
	var parent *object.Class
	if n.Parent != "" {
		h, ok := closure.Get(n.Parent)
		if !ok {
			return nil, newError("base class %q is not defined", n.Parent)
		}
		parent, ok = h.Get().(*object.Class)
		if !ok {
			return nil, newError("%q is not a class", n.Parent)
		}
	}

	methods := make([]*object.Method, len(n.Methods))
	for i, m := range n.Methods {
		methods[i] = &object.Method{Name: m.Name, Params: m.Params, Body: m.Body}
	}

	class := object.NewClass(n.Name, parent, methods)
	closure.Bind(n.Name, class)
	return object.NewHolder(class), nil
}

func (e *evaluator) execNewInstance(n *ast.NewInstance, closure *object.Closure) (*object.ObjectHolder, error) {
	h, ok := closure.Get(n.ClassName)
	if !ok {
		return nil, newError("class %q is not defined", n.ClassName)
	}
	class, ok := h.Get().(*object.Class)
	if !ok {
		return nil, newError("%q is not a class", n.ClassName)
	}

	instance := object.NewClassInstance(class)

	if method, _, ok := class.GetMethod("__init__"); ok {
		args, err := e.evalArgs(n.Args, closure)
		if err != nil {
			return nil, err
		}
		if len(method.Params) != len(args) {
			return nil, newError("%s.__init__() takes %d arguments, got %d", class.Name, len(method.Params), len(args))
		}
		if _, err := e.invokeMethod(instance, method, args); err != nil {
			return nil, err
		}
	} else if len(n.Args) != 0 {
		return nil, newError("%s() takes no arguments (no __init__ defined)", class.Name)
	}

	return object.NewHolder(instance), nil
}

func (e *evaluator) execMethodCall(n *ast.MethodCall, closure *object.Closure) (*object.ObjectHolder, error) {
	receiver, err := e.exec(n.Receiver, closure)
	if err != nil {
		return nil, err
	}
	inst, ok := receiver.Get().(*object.ClassInstance)
	if !ok {
		return nil, newError("cannot call method %q on a %s", n.Method, receiver.Get().Type())
	}

	method, _, ok := inst.Class.GetMethod(n.Method)
	if !ok {
		return nil, newError("%s has no method %q", inst.Class.Name, n.Method)
	}

	args, err := e.evalArgs(n.Args, closure)
	if err != nil {
		return nil, err
	}
	if len(method.Params) != len(args) {
		return nil, newError("%s.%s() takes %d arguments, got %d", inst.Class.Name, n.Method, len(method.Params), len(args))
	}

	return e.invokeMethod(inst, method, args)
}

func (e *evaluator) evalArgs(exprs []ast.Expression, closure *object.Closure) ([]object.Object, error) {
	args := make([]object.Object, len(exprs))
	for i, a := range exprs {
		h, err := e.exec(a, closure)
		if err != nil {
			return nil, err
		}
		args[i] = h.Get()
	}
	return args, nil
}

// invokeMethod runs method bound to self, with args already bound positionally to its formal
// parameters. The call closure sees only the program's globals and this call's own locals —
// never the caller's locals (spec §3: no closures over enclosing function scopes).
func (e *evaluator) invokeMethod(self *object.ClassInstance, method *object.Method, args []object.Object) (*object.ObjectHolder, error) {
	call := object.NewCallClosure(e.global)
	call.Bind("self", self)
	for i, param := range method.Params {
		call.Bind(param, args[i])
	}
	return e.exec(method.Body, call)
}

// dispatchDunder calls method name on inst if it exists and accepts exactly len(args)
// arguments; handled is false (not an error) when the class simply has no such method, letting
// callers in operators.go fall back to their own default behavior.
func (e *evaluator) dispatchDunder(inst *object.ClassInstance, name string, args []object.Object) (object.Object, bool, error) {
	method, _, ok := inst.Class.GetMethod(name)
	if !ok || len(method.Params) != len(args) {
		return nil, false, nil
	}
	holder, err := e.invokeMethod(inst, method, args)
	if err != nil {
		return nil, true, err
	}
	return holder.Get(), true, nil
}
