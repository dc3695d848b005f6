// Package strip removes a caller-supplied set of characters from either end
// of a string value.
//
// The set is read as tokens: single ASCII bytes, or whole UTF-8 chunks. A
// set made only of ASCII bytes is matched byte by byte. A set holding at least
// one byte above 0x7F is matched chunk by chunk, so that stripping "é" never
// removes a lone 0xC3 or 0xA9 byte from the subject.
//
//	out, err := strip.Strip(alloc, input, set) // both ends
//	out, err := strip.LStrip(alloc, input, set)
//	out, err := strip.RStrip(alloc, input, set)
//	out, err := strip.Trim(alloc, input) // " \t\r\n"
//
// When the input or the set is empty, LStrip, RStrip and Strip return a new
// reference to the input rather than a copy.
package strip
