// ==============================================================================================
// FILE: eval/eval.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The tree-walking interpreter core. Execute is the single dispatcher every AST node
//          passes through, grounded on the teacher evaluator's central `Eval` type switch
//          (evaluator/evaluator.go) and its evalBlockStatement/evalProgram/applyFunction
//          return-bubbling pattern, adapted for Mython's class model and idiomatic Go errors.
// ==============================================================================================

package eval

import (
	"fmt"

	"mython/ast"
	"mython/object"
)

// evaluator carries the two pieces of state every Execute call needs beyond the current
// closure: where to print, and the program's single global closure (needed to build a fresh
// call closure for any method dispatch, no matter how deeply nested the call site is).
type evaluator struct {
	ctx    object.Context
	global *object.Closure
}

// Execute runs node in closure, returning the value it produces (or None for a pure-effect
// statement) and any runtime error.
func Execute(node ast.Node, closure *object.Closure, ctx object.Context) (*object.ObjectHolder, error) {
	e := &evaluator{ctx: ctx, global: closure.Global()}
	return e.exec(node, closure)
}

func (e *evaluator) exec(node ast.Node, closure *object.Closure) (*object.ObjectHolder, error) {
	switch n := node.(type) {

	// --- Literals ---
	case *ast.NumberLiteral:
		return object.NewHolder(&object.Number{Value: n.Value}), nil
	case *ast.StringLiteral:
		return object.NewHolder(&object.String{Value: n.Value}), nil
	case *ast.BoolLiteral:
		return object.NewHolder(&object.Bool{Value: n.Value}), nil
	case *ast.NoneLiteral:
		return object.NewNoneHolder(), nil

	// --- Variables ---
	case *ast.VariableValue:
		return e.execVariableValue(n, closure)
	case *ast.Assignment:
		val, err := e.exec(n.Value, closure)
		if err != nil {
			return nil, err
		}
		closure.Bind(n.Name, val.Get())
		return val, nil
	case *ast.FieldAssignment:
		return e.execFieldAssignment(n, closure)

	// --- I/O ---
	case *ast.Print:
		return e.execPrint(n, closure)
	case *ast.Stringify:
		s, err := e.stringOf(n.Expr, closure)
		if err != nil {
			return nil, err
		}
		return object.NewHolder(&object.String{Value: s}), nil

	// --- Operators ---
	case *ast.InfixExpression:
		return e.execInfix(n, closure)
	case *ast.PrefixExpression:
		return e.execPrefix(n, closure)

	// --- Control flow ---
	case *ast.Compound:
		return e.execCompound(n, closure)
	case *ast.ExpressionStatement:
		return e.exec(n.Expr, closure)
	case *ast.IfElse:
		return e.execIfElse(n, closure)
	case *ast.Return:
		val, err := e.exec(n.Value, closure)
		if err != nil {
			return nil, err
		}
		return nil, &returnSignal{Value: val}
	case *ast.MethodBody:
		result, err := e.exec(n.Body, closure)
		if rs, ok := err.(*returnSignal); ok {
			return rs.Value, nil
		}
		if err != nil {
			return nil, err
		}
		if result == nil {
			return object.NewNoneHolder(), nil
		}
		return result, nil

	// --- Classes ---
	case *ast.ClassDefinition:
		return e.execClassDefinition(n, closure)
	case *ast.NewInstance:
		return e.execNewInstance(n, closure)
	case *ast.MethodCall:
		return e.execMethodCall(n, closure)
	}

	return nil, newError("eval: unhandled AST node %T", node)
}

func (e *evaluator) execCompound(c *ast.Compound, closure *object.Closure) (*object.ObjectHolder, error) {
	for _, stmt := range c.Statements {
		if _, err := e.exec(stmt, closure); err != nil {
			return nil, err
		}
	}
	return object.NewNoneHolder(), nil
}

func (e *evaluator) execVariableValue(v *ast.VariableValue, closure *object.Closure) (*object.ObjectHolder, error) {
	if len(v.Path) == 0 {
		return nil, newError("empty variable reference")
	}
	holder, ok := closure.Get(v.Path[0])
	if !ok {
		return nil, newError("name %q is not defined", v.Path[0])
	}
	for _, field := range v.Path[1:] {
		inst, ok := holder.Get().(*object.ClassInstance)
		if !ok {
			return nil, newError("%s has no field %q: not a class instance", holder.Get().Type(), field)
		}
		fh, ok := inst.GetField(field)
		if !ok {
			return nil, newError("%s has no field %q", inst.Class.Name, field)
		}
		holder = fh
	}
	return holder, nil
}

func (e *evaluator) execFieldAssignment(f *ast.FieldAssignment, closure *object.Closure) (*object.ObjectHolder, error) {
	target, err := e.exec(f.Object, closure)
	if err != nil {
		return nil, err
	}
	inst, ok := target.Get().(*object.ClassInstance)
	if !ok {
		return nil, newError("cannot assign field %q on a %s", f.Field, target.Get().Type())
	}
	val, err := e.exec(f.Value, closure)
	if err != nil {
		return nil, err
	}
	inst.SetField(f.Field, val.Get())
	return val, nil
}

func (e *evaluator) execPrint(p *ast.Print, closure *object.Closure) (*object.ObjectHolder, error) {
	parts := make([]string, len(p.Args))
	for i, arg := range p.Args {
		s, err := e.stringOf(arg, closure)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	out := e.ctx.Output()
	for i, s := range parts {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, s)
	}
	fmt.Fprintln(out)
	return object.NewNoneHolder(), nil
}

// stringOf renders expr's printed form, dispatching to __str__ for a ClassInstance that defines
// it and falling back to the value's own Inspect() otherwise — shared by print and str().
func (e *evaluator) stringOf(expr ast.Expression, closure *object.Closure) (string, error) {
	holder, err := e.exec(expr, closure)
	if err != nil {
		return "", err
	}
	obj := holder.Get()
	inst, ok := obj.(*object.ClassInstance)
	if !ok {
		return obj.Inspect(), nil
	}
	result, handled, err := e.dispatchDunder(inst, "__str__", nil)
	if err != nil {
		return "", err
	}
	if !handled {
		return obj.Inspect(), nil
	}
	s, ok := result.(*object.String)
	if !ok {
		return "", newError("__str__ must return a string, got %s", result.Type())
	}
	return s.Value, nil
}

func (e *evaluator) execInfix(n *ast.InfixExpression, closure *object.Closure) (*object.ObjectHolder, error) {
	left, err := e.exec(n.Left, closure)
	if err != nil {
		return nil, err
	}
	right, err := e.exec(n.Right, closure)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "and":
		return object.NewHolder(nativeBool(truthy(left.Get()) && truthy(right.Get()))), nil
	case "or":
		return object.NewHolder(nativeBool(truthy(left.Get()) || truthy(right.Get()))), nil
	case "+", "-", "*", "/":
		result, err := e.arithmetic(n.Operator, left.Get(), right.Get())
		if err != nil {
			return nil, err
		}
		return object.NewHolder(result), nil
	case "==", "!=", "<", ">", "<=", ">=":
		result, err := e.compare(n.Operator, left.Get(), right.Get())
		if err != nil {
			return nil, err
		}
		return object.NewHolder(nativeBool(result)), nil
	}
	return nil, newError("unknown infix operator %q", n.Operator)
}

func (e *evaluator) execPrefix(n *ast.PrefixExpression, closure *object.Closure) (*object.ObjectHolder, error) {
	right, err := e.exec(n.Right, closure)
	if err != nil {
		return nil, err
	}
	if n.Operator != "not" {
		return nil, newError("unknown prefix operator %q", n.Operator)
	}
	return object.NewHolder(nativeBool(!truthy(right.Get()))), nil
}

func (e *evaluator) execIfElse(n *ast.IfElse, closure *object.Closure) (*object.ObjectHolder, error) {
	cond, err := e.exec(n.Condition, closure)
	if err != nil {
		return nil, err
	}
	if truthy(cond.Get()) {
		return e.exec(n.Then, closure)
	}
	if n.Else != nil {
		return e.exec(n.Else, closure)
	}
	return object.NewNoneHolder(), nil
}
