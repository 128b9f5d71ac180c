package x86

// StackSlot is a signed index into the current frame, relative to the
// frame pointer. Frame layout creates these; once assigned a StackSlot is
// immutable, so it is represented as a plain value rather than a pointer.
type StackSlot int64
