// ==============================================================================================
// FILE: eval/eval_test.go
// ==============================================================================================
// PURPOSE: Exercises Execute directly against hand-built ASTs (the parser is a separate
//          package with its own tests), covering spec §8's scenario set: arithmetic/print,
//          string concatenation, __str__ dispatch, inheritance/method resolution, __eq__
//          dispatch, and return unwinding only its own enclosing method body.
// ==============================================================================================

package eval

import (
	"bytes"
	"testing"

	"mython/ast"
	"mython/object"
)

func newTestContext() (object.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return object.NewContext(&buf), &buf
}

func TestExecute_ArithmeticAndPrint(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewGlobalClosure()

	program := &ast.Program{Statements: []ast.Statement{
		&ast.Print{Args: []ast.Expression{
			&ast.InfixExpression{
				Left:     &ast.NumberLiteral{Value: 2},
				Operator: "+",
				Right: &ast.InfixExpression{
					Left:     &ast.NumberLiteral{Value: 3},
					Operator: "*",
					Right:    &ast.NumberLiteral{Value: 4},
				},
			},
		}},
	}}

	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got, want := buf.String(), "14\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestExecute_DivisionByZero(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()
	expr := &ast.ExpressionStatement{Expr: &ast.InfixExpression{
		Left:     &ast.NumberLiteral{Value: 1},
		Operator: "/",
		Right:    &ast.NumberLiteral{Value: 0},
	}}
	if _, err := Execute(expr, closure, ctx); err == nil {
		t.Fatal("expected division by zero to error")
	}
}

func TestExecute_StringConcatenation(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewGlobalClosure()
	program := &ast.Program{Statements: []ast.Statement{
		&ast.Print{Args: []ast.Expression{
			&ast.InfixExpression{
				Left:     &ast.StringLiteral{Value: "foo"},
				Operator: "+",
				Right:    &ast.StringLiteral{Value: "bar"},
			},
		}},
	}}
	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got, want := buf.String(), "foobar\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestExecute_NonShortCircuitLogical(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()

	result, err := Execute(&ast.InfixExpression{
		Left:     &ast.BoolLiteral{Value: false},
		Operator: "and",
		Right:    &ast.BoolLiteral{Value: true},
	}, closure, ctx)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	b, ok := result.Get().(*object.Bool)
	if !ok || b.Value {
		t.Fatalf("expected False and True = False, got %v", result.Get())
	}

	// The right operand is evaluated even though the left is already False, so an undefined
	// name there surfaces as an error instead of being skipped.
	if _, err := Execute(&ast.InfixExpression{
		Left:     &ast.BoolLiteral{Value: false},
		Operator: "and",
		Right:    &ast.VariableValue{Path: []string{"undefined"}},
	}, closure, ctx); err == nil {
		t.Error("expected the right operand of and to be evaluated when the left is False")
	}
}

func TestExecute_DerivedComparisons(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()

	tests := []struct {
		op   string
		l, r int64
		want bool
	}{
		{"!=", 1, 2, true},
		{"!=", 1, 1, false},
		{">", 2, 1, true},
		{">", 1, 2, false},
		{">", 1, 1, false},
		{"<=", 1, 1, true},
		{"<=", 1, 2, true},
		{"<=", 2, 1, false},
		{">=", 2, 1, true},
		{">=", 1, 1, true},
		{">=", 1, 2, false},
	}
	for _, tt := range tests {
		result, err := Execute(&ast.InfixExpression{
			Left:     &ast.NumberLiteral{Value: tt.l},
			Operator: tt.op,
			Right:    &ast.NumberLiteral{Value: tt.r},
		}, closure, ctx)
		if err != nil {
			t.Fatalf("%d %s %d: %v", tt.l, tt.op, tt.r, err)
		}
		b := result.Get().(*object.Bool)
		if b.Value != tt.want {
			t.Errorf("%d %s %d = %v, want %v", tt.l, tt.op, tt.r, b.Value, tt.want)
		}
	}
}

func TestExecute_Truthiness(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()

	tests := []struct {
		node ast.Expression
		want bool
	}{
		{&ast.NumberLiteral{Value: 0}, false},
		{&ast.NumberLiteral{Value: 5}, true},
		{&ast.StringLiteral{Value: ""}, false},
		{&ast.StringLiteral{Value: "x"}, true},
		{&ast.BoolLiteral{Value: false}, false},
		{&ast.NoneLiteral{}, false},
	}
	for _, tt := range tests {
		result, err := Execute(&ast.PrefixExpression{Operator: "not", Right: tt.node}, closure, ctx)
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		b := result.Get().(*object.Bool)
		if b.Value == tt.want {
			t.Errorf("not %v = %v, want %v", tt.node, b.Value, !tt.want)
		}
	}
}

// pointClass builds a simple Point class with __init__, __str__, __eq__, and __add__ used across
// several of the tests below.
func pointClass() *ast.ClassDefinition {
	return &ast.ClassDefinition{
		Name: "Point",
		Methods: []*ast.MethodDecl{
			{
				Name:   "__init__",
				Params: []string{"x", "y"},
				Body: &ast.MethodBody{Body: &ast.Compound{Statements: []ast.Statement{
					&ast.FieldAssignment{Object: &ast.VariableValue{Path: []string{"self"}}, Field: "x", Value: &ast.VariableValue{Path: []string{"x"}}},
					&ast.FieldAssignment{Object: &ast.VariableValue{Path: []string{"self"}}, Field: "y", Value: &ast.VariableValue{Path: []string{"y"}}},
				}}},
			},
			{
				Name: "__str__",
				Body: &ast.MethodBody{Body: &ast.Return{Value: &ast.Stringify{Expr: &ast.VariableValue{Path: []string{"self", "x"}}}}},
			},
			{
				Name:   "__eq__",
				Params: []string{"other"},
				Body: &ast.MethodBody{Body: &ast.Return{Value: &ast.InfixExpression{
					Left:     &ast.VariableValue{Path: []string{"self", "x"}},
					Operator: "==",
					Right:    &ast.VariableValue{Path: []string{"other", "x"}},
				}}},
			},
		},
	}
}

func TestExecute_ClassInitAndStrDispatch(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewGlobalClosure()

	program := &ast.Program{Statements: []ast.Statement{
		pointClass(),
		&ast.Assignment{Name: "p", Value: &ast.NewInstance{ClassName: "Point", Args: []ast.Expression{
			&ast.NumberLiteral{Value: 7}, &ast.NumberLiteral{Value: 8},
		}}},
		&ast.Print{Args: []ast.Expression{&ast.VariableValue{Path: []string{"p"}}}},
	}}

	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got, want := buf.String(), "7\n"; got != want {
		t.Errorf("output = %q, want %q (expected __str__ dispatch)", got, want)
	}
}

func TestExecute_EqDispatch(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()

	program := &ast.Compound{Statements: []ast.Statement{
		pointClass(),
		&ast.Assignment{Name: "a", Value: &ast.NewInstance{ClassName: "Point", Args: []ast.Expression{
			&ast.NumberLiteral{Value: 1}, &ast.NumberLiteral{Value: 2},
		}}},
		&ast.Assignment{Name: "b", Value: &ast.NewInstance{ClassName: "Point", Args: []ast.Expression{
			&ast.NumberLiteral{Value: 1}, &ast.NumberLiteral{Value: 9},
		}}},
	}}
	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	result, err := Execute(&ast.InfixExpression{
		Left:     &ast.VariableValue{Path: []string{"a"}},
		Operator: "==",
		Right:    &ast.VariableValue{Path: []string{"b"}},
	}, closure, ctx)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.Get().(*object.Bool).Value {
		t.Error("expected a == b (same x field) via __eq__ dispatch")
	}
}

func TestExecute_InheritanceMethodResolution(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewGlobalClosure()

	base := &ast.ClassDefinition{
		Name: "Animal",
		Methods: []*ast.MethodDecl{
			{Name: "speak", Body: &ast.MethodBody{Body: &ast.Print{Args: []ast.Expression{&ast.StringLiteral{Value: "..."}}}}},
		},
	}
	dog := &ast.ClassDefinition{
		Name:   "Dog",
		Parent: "Animal",
		Methods: []*ast.MethodDecl{
			{Name: "speak", Body: &ast.MethodBody{Body: &ast.Print{Args: []ast.Expression{&ast.StringLiteral{Value: "Woof"}}}}},
		},
	}
	cat := &ast.ClassDefinition{
		Name:   "Cat",
		Parent: "Animal",
		// Cat defines no speak of its own; it must resolve to Animal.speak.
	}

	program := &ast.Program{Statements: []ast.Statement{
		base, dog, cat,
		&ast.Assignment{Name: "d", Value: &ast.NewInstance{ClassName: "Dog"}},
		&ast.Assignment{Name: "c", Value: &ast.NewInstance{ClassName: "Cat"}},
		&ast.ExpressionStatement{Expr: &ast.MethodCall{Receiver: &ast.VariableValue{Path: []string{"d"}}, Method: "speak"}},
		&ast.ExpressionStatement{Expr: &ast.MethodCall{Receiver: &ast.VariableValue{Path: []string{"c"}}, Method: "speak"}},
	}}

	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got, want := buf.String(), "Woof\n...\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestExecute_ReturnUnwindsOnlyEnclosingMethod(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewGlobalClosure()

	early := &ast.ClassDefinition{
		Name: "Box",
		Methods: []*ast.MethodDecl{
			{
				Name: "pick",
				Body: &ast.MethodBody{Body: &ast.Compound{Statements: []ast.Statement{
					&ast.IfElse{
						Condition: &ast.BoolLiteral{Value: true},
						Then: &ast.Compound{Statements: []ast.Statement{
							&ast.Return{Value: &ast.StringLiteral{Value: "early"}},
						}},
					},
					&ast.Print{Args: []ast.Expression{&ast.StringLiteral{Value: "unreachable"}}},
				}}},
			},
		},
	}

	program := &ast.Program{Statements: []ast.Statement{
		early,
		&ast.Assignment{Name: "b", Value: &ast.NewInstance{ClassName: "Box"}},
		&ast.Print{Args: []ast.Expression{&ast.MethodCall{Receiver: &ast.VariableValue{Path: []string{"b"}}, Method: "pick"}}},
	}}

	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got, want := buf.String(), "early\n"; got != want {
		t.Errorf("output = %q, want %q (return must skip the rest of pick's body without leaking past it)", got, want)
	}
}

func TestExecute_AddDispatchOnClassInstance(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()

	vec := &ast.ClassDefinition{
		Name: "Vec",
		Methods: []*ast.MethodDecl{
			{
				Name:   "__init__",
				Params: []string{"x"},
				Body:   &ast.MethodBody{Body: &ast.FieldAssignment{Object: &ast.VariableValue{Path: []string{"self"}}, Field: "x", Value: &ast.VariableValue{Path: []string{"x"}}}},
			},
			{
				Name:   "__add__",
				Params: []string{"other"},
				Body: &ast.MethodBody{Body: &ast.Return{Value: &ast.NewInstance{ClassName: "Vec", Args: []ast.Expression{
					&ast.InfixExpression{
						Left:     &ast.VariableValue{Path: []string{"self", "x"}},
						Operator: "+",
						Right:    &ast.VariableValue{Path: []string{"other", "x"}},
					},
				}}}},
			},
		},
	}

	program := &ast.Compound{Statements: []ast.Statement{
		vec,
		&ast.Assignment{Name: "a", Value: &ast.NewInstance{ClassName: "Vec", Args: []ast.Expression{&ast.NumberLiteral{Value: 3}}}},
		&ast.Assignment{Name: "b", Value: &ast.NewInstance{ClassName: "Vec", Args: []ast.Expression{&ast.NumberLiteral{Value: 4}}}},
	}}
	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	sum, err := Execute(&ast.InfixExpression{
		Left:     &ast.VariableValue{Path: []string{"a"}},
		Operator: "+",
		Right:    &ast.VariableValue{Path: []string{"b"}},
	}, closure, ctx)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	inst := sum.Get().(*object.ClassInstance)
	xh, _ := inst.GetField("x")
	if n := xh.Get().(*object.Number); n.Value != 7 {
		t.Errorf("expected a + b to have x = 7, got %d", n.Value)
	}
}

func TestExecute_UndefinedNameIsError(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()
	if _, err := Execute(&ast.VariableValue{Path: []string{"nope"}}, closure, ctx); err == nil {
		t.Fatal("expected an error for an undefined name")
	}
}

func TestExecute_CallClosureFallsThroughToGlobals(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewGlobalClosure()

	box := &ast.ClassDefinition{
		Name: "Box",
		Methods: []*ast.MethodDecl{
			{Name: "peek", Body: &ast.MethodBody{Body: &ast.Return{Value: &ast.VariableValue{Path: []string{"secret"}}}}},
		},
	}
	program := &ast.Program{Statements: []ast.Statement{
		box,
		&ast.Assignment{Name: "secret", Value: &ast.NumberLiteral{Value: 42}},
		&ast.Assignment{Name: "b", Value: &ast.NewInstance{ClassName: "Box"}},
	}}
	if _, err := Execute(program, closure, ctx); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	// "secret" was bound at global scope and peek has no local of that name, so peek's call
	// closure must fall through to the globals and read it.
	result, err := Execute(&ast.MethodCall{Receiver: &ast.VariableValue{Path: []string{"b"}}, Method: "peek"}, closure, ctx)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if n := result.Get().(*object.Number); n.Value != 42 {
		t.Errorf("expected peek() to read the global secret = 42, got %d", n.Value)
	}
}
