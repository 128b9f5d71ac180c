// Package frontend sketches the expression tree a bytecode-to-LIR lowering
// pass would consume, grounded on jato's src/jit/expression.h. It stops
// short of lowering: Tree exists so isa/x86.Instruction has a documented
// upstream producer, not to implement one.
package frontend

// Type is the value category a Tree node carries, matching jato's
// jvm_type enum closely enough for Kind to dispatch on it.
type Type byte

const (
	TypeInvalid Type = iota
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeReference
)

// Operator names a Binop's arithmetic operation.
type Operator byte

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpRem
)

// Kind tags a Tree node's variant, mirroring enum expression_type.
type Kind byte

const (
	KindInvalid Kind = iota
	KindValue
	KindFValue
	KindLocal
	KindTemporary
	KindArrayDeref
	KindBinop
)

// Tree is a node in the expression DAG the bytecode decoder builds before
// lowering to LIR. Unlike expression.h's refcounted struct, Go's GC retires
// the refcount entirely; Tree is an ordinary immutable value built once by
// its constructor and shared by pointer.
type Tree struct {
	kind Kind
	typ  Type

	value  uint64  // KindValue
	fvalue float64 // KindFValue
	index  uint64  // KindLocal, KindTemporary

	arrayRef, arrayIndex *Tree // KindArrayDeref

	operator    Operator // KindBinop
	left, right *Tree    // KindBinop
}

// Kind returns the node's variant tag.
func (t *Tree) Kind() Kind { return t.kind }

// Type returns the node's JVM value category.
func (t *Tree) Type() Type { return t.typ }

// Value returns the node's constant, valid for KindValue.
func (t *Tree) Value() uint64 { return t.value }

// FValue returns the node's floating constant, valid for KindFValue.
func (t *Tree) FValue() float64 { return t.fvalue }

// Index returns the local or temporary slot index, valid for KindLocal
// and KindTemporary.
func (t *Tree) Index() uint64 { return t.index }

// ArrayRef and ArrayIndex return KindArrayDeref's operands.
func (t *Tree) ArrayRef() *Tree   { return t.arrayRef }
func (t *Tree) ArrayIndex() *Tree { return t.arrayIndex }

// Operator, Left, and Right return KindBinop's operator and operands.
func (t *Tree) Operator() Operator { return t.operator }
func (t *Tree) Left() *Tree        { return t.left }
func (t *Tree) Right() *Tree       { return t.right }

// ValueTree constructs an integral constant node.
func ValueTree(typ Type, value uint64) *Tree {
	return &Tree{kind: KindValue, typ: typ, value: value}
}

// FValueTree constructs a floating constant node.
func FValueTree(typ Type, fvalue float64) *Tree {
	return &Tree{kind: KindFValue, typ: typ, fvalue: fvalue}
}

// LocalTree constructs a reference to a method-local slot.
func LocalTree(typ Type, localIndex uint64) *Tree {
	return &Tree{kind: KindLocal, typ: typ, index: localIndex}
}

// TemporaryTree constructs a reference to a lowering-introduced temporary.
func TemporaryTree(typ Type, temporary uint64) *Tree {
	return &Tree{kind: KindTemporary, typ: typ, index: temporary}
}

// ArrayDerefTree constructs an array element reference.
func ArrayDerefTree(typ Type, arrayRef, arrayIndex *Tree) *Tree {
	return &Tree{kind: KindArrayDeref, typ: typ, arrayRef: arrayRef, arrayIndex: arrayIndex}
}

// BinopTree constructs a binary arithmetic node.
func BinopTree(typ Type, op Operator, left, right *Tree) *Tree {
	return &Tree{kind: KindBinop, typ: typ, operator: op, left: left, right: right}
}
