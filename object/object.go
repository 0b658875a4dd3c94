// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The runtime value/class model Mython programs execute over — primitive values,
//          classes, and instances.
// ==============================================================================================

package object

import (
	"fmt"
	"sort"
	"strconv"

	"mython/ast"
)

// ObjectType identifies the runtime kind of a Mython value.
type ObjectType string

const (
	NUMBER_OBJ         ObjectType = "NUMBER"
	STRING_OBJ         ObjectType = "STRING"
	BOOL_OBJ           ObjectType = "BOOL"
	NONE_OBJ           ObjectType = "NONE"
	CLASS_OBJ          ObjectType = "CLASS"
	CLASS_INSTANCE_OBJ ObjectType = "CLASS_INSTANCE"
)

// Object is the interface every Mython runtime value implements.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// ----------------------------------------------------------------------------------------------
// Primitives
// ----------------------------------------------------------------------------------------------

type Number struct{ Value int64 }

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return strconv.FormatInt(n.Value, 10) }

type String struct{ Value string }

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type Bool struct{ Value bool }

func (b *Bool) Type() ObjectType { return BOOL_OBJ }
func (b *Bool) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// NoneType is Mython's single null value. There is exactly one instance: None.
type NoneType struct{}

func (NoneType) Type() ObjectType { return NONE_OBJ }
func (NoneType) Inspect() string  { return "None" }

// None is the sole NoneType value; compare against it with Object equality, not a type switch.
var None Object = NoneType{}

// ----------------------------------------------------------------------------------------------
// Classes
// ----------------------------------------------------------------------------------------------

// Method is a class method: a name, its formal parameter names, and a body statement — normally an *ast.MethodBody wrapping the parsed block, which is
// where a Return's non-local exit is caught.
type Method struct {
	Name   string
	Params []string
	Body   ast.Statement
}

// Class is a single-inheritance class: a name, an optional parent, and its own method table.
// Lookup walks the ancestor chain; there is no multiple inheritance (spec Non-goals).
type Class struct {
	Name    string
	Parent  *Class
	methods map[string]*Method
}

// NewClass builds a Class from its own declared methods (not inherited ones).
func NewClass(name string, parent *Class, methods []*Method) *Class {
	table := make(map[string]*Method, len(methods))
	for _, m := range methods {
		table[m.Name] = m
	}
	return &Class{Name: name, Parent: parent, methods: table}
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return fmt.Sprintf("<class %s>", c.Name) }

// GetMethod resolves name by walking from c up through its ancestor chain, returning the method
// and the class that actually defines it (the receiver of the dispatch).
func (c *Class) GetMethod(name string) (method *Method, owner *Class, ok bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, found := cur.methods[name]; found {
			return m, cur, true
		}
	}
	return nil, nil, false
}

// HasMethod reports whether name resolves to a method accepting exactly argc arguments.
func (c *Class) HasMethod(name string, argc int) bool {
	m, _, ok := c.GetMethod(name)
	return ok && len(m.Params) == argc
}

// IsSubclassOf reports whether c is other or descends from it, walking the parent chain.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// MethodNames returns the class's own (non-inherited) method names in sorted order, used only
// for debug inspection — dispatch itself never needs an ordering.
func (c *Class) MethodNames() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClassInstance is a live object of some Class: its fields, stored by name.
type ClassInstance struct {
	Class  *Class
	Fields map[string]*ObjectHolder
}

// NewClassInstance allocates a fresh instance of class, whose field closure comes pre-populated
// with self bound to a Share of the instance itself (spec invariant: every ClassInstance's field
// closure always contains self aliasing the instance).
func NewClassInstance(class *Class) *ClassInstance {
	ci := &ClassInstance{Class: class, Fields: make(map[string]*ObjectHolder)}
	ci.Fields["self"] = Share(NewHolder(ci))
	return ci
}

func (ci *ClassInstance) Type() ObjectType { return CLASS_INSTANCE_OBJ }

// Inspect is the default, __str__-less rendering of an instance: its class name and identity,
// the way CPython falls back to "<Foo object at 0x...>" when __str__ is absent.
func (ci *ClassInstance) Inspect() string {
	return fmt.Sprintf("<%s object at %p>", ci.Class.Name, ci)
}

// GetField looks up a previously assigned field; ok is false if it was never set.
func (ci *ClassInstance) GetField(name string) (*ObjectHolder, bool) {
	h, ok := ci.Fields[name]
	return h, ok
}

// SetField assigns obj to name, replacing any existing binding.
func (ci *ClassInstance) SetField(name string, obj Object) {
	ci.Fields[name] = NewHolder(obj)
}
