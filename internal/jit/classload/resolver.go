// Package classload is the minimal collaborator surface the printer calls
// through for ic_call: resolving a method handle back to a printable,
// qualified method name. It is not a class loader -- loading, linking, and
// initialization (runtime/classloader.c's actual job) are out of scope
// here, same as allocation is out of scope for regalloc.
package classload

import "fmt"

// MethodHandle is the resolved-call-site identity an inline cache carries.
// It is opaque to the printer: just the key a Resolver looks up.
type MethodHandle uint64

// Resolver looks up the qualified name lir-printer.c prints after an
// ic_call's operand block. It is total: ok is false rather than an error
// when h has no known binding, matching the printer's MalformedOperand
// path rather than a Go error return.
type Resolver interface {
	ResolveMethodName(h MethodHandle) (string, bool)
}

// StaticResolver is a Resolver backed by a fixed table, built once when a
// class's constant pool is resolved. It is the shape cmd/lirdump and tests
// use in place of a live classloader.
type StaticResolver struct {
	names map[MethodHandle]string
}

// NewStaticResolver builds a StaticResolver from a handle->name table. The
// caller owns the map; NewStaticResolver does not retain it.
func NewStaticResolver(names map[MethodHandle]string) *StaticResolver {
	cp := make(map[MethodHandle]string, len(names))
	for h, n := range names {
		cp[h] = n
	}
	return &StaticResolver{names: cp}
}

// ResolveMethodName implements Resolver.
func (r *StaticResolver) ResolveMethodName(h MethodHandle) (string, bool) {
	name, ok := r.names[h]
	return name, ok
}

// Bind records h -> qualifiedName, overwriting any previous binding. It
// mirrors how a class's methods accrete handles as the constant pool is
// walked during loading.
func (r *StaticResolver) Bind(h MethodHandle, qualifiedName string) {
	if r.names == nil {
		r.names = make(map[MethodHandle]string)
	}
	r.names[h] = qualifiedName
}

// QualifiedMethodName joins a class and method the way jato's class file
// parser derives a printable name from a constant-pool entry: ClassName.method.
func QualifiedMethodName(class, method string) string {
	return fmt.Sprintf("%s.%s", class, method)
}
