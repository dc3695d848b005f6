// Package build produces new string values from existing ones: Concat joins
// two values, HTMLEncode escapes markup characters.
//
// HTMLEncode writes into a Scratch buffer owned by the caller. The buffer
// keeps its capacity between calls, so a host typically holds one Scratch per
// execution context:
//
//	sc, err := build.NewScratch(alloc, build.DefaultScratchSize)
//	defer sc.Release()
//	out, err := build.HTMLEncode(alloc, sc, input)
//
// A Scratch is not safe for concurrent use.
package build
