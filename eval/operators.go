// ==============================================================================================
// FILE: eval/operators.go
// ==============================================================================================
// PURPOSE: Truthiness, arithmetic, and the Equal/Less comparison pair every other comparator
//          (!=, <=, >, >=) derives from — spec §6 deliberately routes every comparison through
//          __eq__/__lt__ only, never introducing a __gt__ or __le__ dunder.
// ==============================================================================================

package eval

import "mython/object"

// truthy implements spec §6's truthiness rules: 0, "", False, and None are false; everything
// else, including every ClassInstance, is true.
func truthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Number:
		return v.Value != 0
	case *object.String:
		return v.Value != ""
	case *object.Bool:
		return v.Value
	case object.NoneType:
		return false
	default:
		return true
	}
}

func nativeBool(b bool) *object.Bool {
	return &object.Bool{Value: b}
}

// arithmetic implements +, -, *, /. + additionally accepts two Strings (concatenation) or a
// ClassInstance with __add__ defined; - * / are Number-only. / truncates toward zero and errors
// on a zero divisor (spec §6).
func (e *evaluator) arithmetic(op string, left, right object.Object) (object.Object, error) {
	if op == "+" {
		if l, ok := left.(*object.Number); ok {
			if r, ok := right.(*object.Number); ok {
				return &object.Number{Value: l.Value + r.Value}, nil
			}
		}
		if l, ok := left.(*object.String); ok {
			if r, ok := right.(*object.String); ok {
				return &object.String{Value: l.Value + r.Value}, nil
			}
		}
		if inst, ok := left.(*object.ClassInstance); ok {
			result, handled, err := e.dispatchDunder(inst, "__add__", []object.Object{right})
			if err != nil {
				return nil, err
			}
			if handled {
				return result, nil
			}
		}
		return nil, newError("unsupported operand types for +: %s and %s", left.Type(), right.Type())
	}

	l, ok := left.(*object.Number)
	if !ok {
		return nil, newError("unsupported operand type for %s: %s", op, left.Type())
	}
	r, ok := right.(*object.Number)
	if !ok {
		return nil, newError("unsupported operand type for %s: %s", op, right.Type())
	}
	switch op {
	case "-":
		return &object.Number{Value: l.Value - r.Value}, nil
	case "*":
		return &object.Number{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, newError("division by zero")
		}
		return &object.Number{Value: l.Value / r.Value}, nil
	}
	return nil, newError("unknown arithmetic operator %q", op)
}

// equal implements spec §6's __eq__: native equality for matching primitive types; when left is
// a ClassInstance, __eq__ is dispatched unconditionally regardless of right's type. Any other
// combination — mismatched primitive types, one side None, or a ClassInstance with no __eq__ —
// is a runtime error, never a silent false.
func (e *evaluator) equal(left, right object.Object) (bool, error) {
	switch l := left.(type) {
	case *object.Number:
		if r, ok := right.(*object.Number); ok {
			return l.Value == r.Value, nil
		}
	case *object.String:
		if r, ok := right.(*object.String); ok {
			return l.Value == r.Value, nil
		}
	case *object.Bool:
		if r, ok := right.(*object.Bool); ok {
			return l.Value == r.Value, nil
		}
	case object.NoneType:
		if _, ok := right.(object.NoneType); ok {
			return true, nil
		}
	case *object.ClassInstance:
		result, handled, err := e.dispatchDunder(l, "__eq__", []object.Object{right})
		if err != nil {
			return false, err
		}
		if !handled {
			return false, newError("cannot compare %s and %s: class %s defines no __eq__", left.Type(), right.Type(), l.Class.Name)
		}
		b, ok := result.(*object.Bool)
		if !ok {
			return false, newError("__eq__ must return a bool, got %s", result.Type())
		}
		return b.Value, nil
	}
	return false, newError("cannot compare %s and %s", left.Type(), right.Type())
}

// less implements spec §6's __lt__: numeric order for Numbers, lexicographic for Strings,
// dispatch to left's __lt__ when both operands are class instances (of any classes).
func (e *evaluator) less(left, right object.Object) (bool, error) {
	switch l := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		if !ok {
			return false, newError("cannot compare %s and %s", left.Type(), right.Type())
		}
		return l.Value < r.Value, nil
	case *object.String:
		r, ok := right.(*object.String)
		if !ok {
			return false, newError("cannot compare %s and %s", left.Type(), right.Type())
		}
		return l.Value < r.Value, nil
	case *object.ClassInstance:
		r, ok := right.(*object.ClassInstance)
		if !ok {
			return false, newError("cannot compare %s and %s", left.Type(), right.Type())
		}
		result, handled, err := e.dispatchDunder(l, "__lt__", []object.Object{r})
		if err != nil {
			return false, err
		}
		if !handled {
			return false, newError("class %s defines no __lt__", l.Class.Name)
		}
		b, ok := result.(*object.Bool)
		if !ok {
			return false, newError("__lt__ must return a bool, got %s", result.Type())
		}
		return b.Value, nil
	}
	return false, newError("cannot compare %s and %s", left.Type(), right.Type())
}

// compare implements the full comparator set from only equal and less, per spec §6: != is ¬==,
// > is ¬< ∧ ¬==, <= is < ∨ ==, >= is ¬<. No comparator other than == and < is ever dispatched
// to a dunder directly.
func (e *evaluator) compare(op string, left, right object.Object) (bool, error) {
	switch op {
	case "==":
		return e.equal(left, right)
	case "!=":
		eq, err := e.equal(left, right)
		return !eq, err
	case "<":
		return e.less(left, right)
	case ">":
		lt, err := e.less(left, right)
		if err != nil {
			return false, err
		}
		eq, err := e.equal(left, right)
		if err != nil {
			return false, err
		}
		return !lt && !eq, nil
	case "<=":
		lt, err := e.less(left, right)
		if err != nil {
			return false, err
		}
		if lt {
			return true, nil
		}
		return e.equal(left, right)
	case ">=":
		lt, err := e.less(left, right)
		return !lt, err
	}
	return false, newError("unknown comparison operator %q", op)
}
