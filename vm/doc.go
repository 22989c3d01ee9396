// Package vm implements the Brainfuck virtual machine: an immutable
// program store, a precomputed bracket jump table, a data tape of
// wrapping unsigned 8-bit cells, and the fetch-decode-execute engine
// driving them.
//
// The machine is deliberately direct. One instruction executes per
// Step, loop jumps cost O(1) through the jump table, and both the
// program load and every data pointer move are bounds-checked, so a
// malformed program fails with a reported error instead of touching
// memory it does not own.
package vm
