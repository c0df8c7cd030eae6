// Package vybiumzkvmaccel provides the tip5 permutation and hash-10
// primitives over the 32-bit prime field 2^32 - 5, together with the
// acceleration layer that substitutes the native kernel for the slow
// interpreted reference implementation without changing observable behavior.
//
// # Features
//
// - 16-word tip5 permutation with Montgomery-domain field arithmetic
// - Fixed-input-length hash-10 sponge mode (10 words in, 5 words out)
// - Tree-value marshalling to and from the interpreter's noun encoding
// - Dual kernels (accelerated and reference) under one Kernel interface
// - Parity checking that holds the kernels to bit-identical output
//
// # Quick Start
//
// Hashing ten field words:
//
//	digest, err := vybiumzkvmaccel.Hash10([vybiumzkvmaccel.Rate]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Accelerating a tree-encoded call:
//
//	subject := vybiumzkvmaccel.NewCallSubject(vybiumzkvmaccel.NewList(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
//	result, err := vybiumzkvmaccel.Hash10Call(subject)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// All operations are pure and reentrant; the only shared state is the
// constant tables, initialized once and never mutated.
package vybiumzkvmaccel
