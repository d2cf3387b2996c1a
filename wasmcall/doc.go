// Package wasmcall adapts WebAssembly guest functions into invocable
// callables.
//
// A wazero api.Function becomes an invocation.Invocable: its signature is
// derived from the function definition's core value types, frame slots are
// lowered onto the flat uint64 call stack, and the function is fired with
// results discarded. This lets a test double stand in for a handler that is
// actually hosted in a wasm module.
//
// Signatures can also be described in WIT (go.bytecodealliance.org/wit):
// FromWIT maps WIT primitive types to slot encodings.
//
// Object-reference slots have no wasm representation and are rejected at
// signature-derivation time.
package wasmcall
