package build

import "github.com/randalmurphal/strkit/strval"

// Concat returns a new value holding a followed by b.
func Concat(alloc strval.Allocator, a, b *strval.Value) (*strval.Value, error) {
	if a == nil {
		return nil, strval.BadValue("concat", "Input string is nil.")
	}
	if b == nil {
		return nil, strval.BadValue("concat", "String to append is nil.")
	}
	left, right := a.Bytes(), b.Bytes()
	v, err := strval.Make(alloc, len(left)+len(right), func(dst []byte) {
		n := copy(dst, left)
		copy(dst[n:], right)
	})
	if err != nil {
		return nil, strval.NoMemory("concat")
	}
	return v, nil
}

// HTMLEncode returns a copy of input with & < > replaced by their entities.
// The encoded text is assembled in sc, which may be nil to use a temporary
// buffer. A zero or released sc grows again on demand.
func HTMLEncode(alloc strval.Allocator, sc *Scratch, input *strval.Value) (*strval.Value, error) {
	if input == nil {
		return nil, strval.BadValue("htmlencode", "Input is nil.")
	}
	if sc == nil {
		tmp, err := NewScratch(alloc, input.Len()+headroom)
		if err != nil {
			return nil, strval.NoMemory("htmlencode")
		}
		defer tmp.Release()
		sc = tmp
	}
	// A zero Scratch draws from the allocator of the first encode using it.
	if sc.alloc == nil && alloc != nil {
		sc.alloc = alloc
	}

	sc.Reset()
	for _, c := range input.Bytes() {
		if err := sc.reserve(); err != nil {
			return nil, strval.NoMemory("htmlencode")
		}
		switch c {
		case '&':
			sc.writeString("&amp;")
		case '<':
			sc.writeString("&lt;")
		case '>':
			sc.writeString("&gt;")
		default:
			sc.writeByte(c)
		}
	}

	v, err := strval.FromBytes(alloc, sc.Bytes())
	if err != nil {
		return nil, strval.NoMemory("htmlencode")
	}
	return v, nil
}
