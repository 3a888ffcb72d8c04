package abi

// Constants of the calling convention the backend targets. Lowering and
// semantic validation both check against them so the limits stay explicit
// instead of living inside a fixed-size array somewhere.
const (
	// MaxCallArgs is the number of integer argument registers the target
	// convention passes arguments in (rdi, rsi, rdx, rcx, r8, r9 on x86-64).
	// Calls with more arguments are rejected.
	MaxCallArgs = 6

	// WordSize is the frame slot width in bytes. Every variable occupies one
	// slot; frame offsets advance in WordSize steps and the final stack size
	// is always a multiple of it.
	WordSize = 8
)
