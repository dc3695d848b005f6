package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/strkit/strval"
)

func mustValue(t *testing.T, a strval.Allocator, s string) *strval.Value {
	t.Helper()
	v, err := strval.FromString(a, s)
	require.NoError(t, err)
	return v
}

type stripFunc func(strval.Allocator, *strval.Value, *strval.Value) (*strval.Value, error)

func TestStripOperations(t *testing.T) {
	tests := []struct {
		name   string
		fn     stripFunc
		input  string
		set    string
		expect string
	}{
		{"strip single byte", Strip, "xxhixx", "x", "hi"},
		{"strip several bytes", Strip, "-=-hi=-", "-=", "hi"},
		{"strip nothing matching", Strip, "hello", "z", "hello"},
		{"strip everything", Strip, "aaaa", "a", ""},
		{"strip everything from mixed set", Strip, "abba", "ba", ""},
		{"strip keeps inner matches", Strip, " a b ", " ", "a b"},
		{"lstrip single byte", LStrip, "xxhixx", "x", "hixx"},
		{"lstrip everything", LStrip, "xxx", "x", ""},
		{"rstrip single byte", RStrip, "xxhixx", "x", "xxhi"},
		{"rstrip everything", RStrip, "xxx", "x", ""},

		{"lstrip one chunk", LStrip, "ééhello", "é", "hello"},
		{"rstrip one chunk", RStrip, "helloéé", "é", "hello"},
		{"strip one chunk", Strip, "éhelloé", "é", "hello"},
		{"strip one chunk consuming all", Strip, "ééé", "é", ""},
		{"strip four byte chunk", Strip, "😀ok😀😀", "😀", "ok"},
		{"strip mixed chunks", Strip, "€ é hi é€", "é€ ", "hi"},
		{"strip ascii and chunk", Strip, "xéxhelloéx", "xé", "hello"},
		{"strip mixed consuming all", Strip, "é€é€", "€é", ""},
		{"lstrip mixed", LStrip, "x€xabc€", "€x", "abc€"},
		{"rstrip mixed", RStrip, "€abcx€x", "€x", "€abc"},

		{"lone continuation byte survives", LStrip, "\xa9hello", "é", "\xa9hello"},
		{"lone lead byte survives", RStrip, "hello\xc3", "é", "hello\xc3"},
		{"other chunk sharing lead survives", Strip, "èhelloè", "é", "èhelloè"},
		{"other chunk sharing lead survives in set", Strip, "èhelloè", "xé", "èhelloè"},
		{"truncated chunk at end", LStrip, "é\xc3", "é", "\xc3"},
		{"truncated chunk at start", RStrip, "\xa9é", "é", "\xa9"},
		{"malformed set lead never matches", Strip, "\x80é\x80", "\x80é", "\x80é\x80"},
		{"truncated set chunk never matches", Strip, "\xc3aé", "é\xc3", "\xc3a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := strval.NewLimitAllocator(0, nil)
			input := mustValue(t, alloc, tt.input)
			set := mustValue(t, alloc, tt.set)

			out, err := tt.fn(alloc, input, set)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, out.String())

			out.Release()
			input.Release()
			set.Release()
			assert.Equal(t, 0, alloc.Live())
		})
	}
}

func TestChunkMatchingIsNotByteMatching(t *testing.T) {
	// Every byte of the subject's prefix is one of the bytes of "é", but
	// only the whole chunk may be removed.
	input := mustValue(t, nil, "\xa9\xc3\xa9\xc3x")
	set := mustValue(t, nil, "é")

	out, err := LStrip(nil, input, set)
	require.NoError(t, err)
	assert.Equal(t, "\xa9\xc3\xa9\xc3x", out.String())

	input = mustValue(t, nil, "ééhello")
	out, err = LStrip(nil, input, set)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestStripPassthrough(t *testing.T) {
	alloc := strval.NewLimitAllocator(0, nil)
	empty := mustValue(t, alloc, "")
	input := mustValue(t, alloc, "  hi  ")

	for name, fn := range map[string]stripFunc{"strip": Strip, "lstrip": LStrip, "rstrip": RStrip} {
		t.Run(name+" empty set", func(t *testing.T) {
			out, err := fn(alloc, input, empty)
			require.NoError(t, err)
			assert.Same(t, input, out)
			assert.Equal(t, 2, input.Refcount())
			out.Release()
		})

		t.Run(name+" empty input", func(t *testing.T) {
			set := mustValue(t, alloc, "é ")
			out, err := fn(alloc, empty, set)
			require.NoError(t, err)
			assert.Same(t, empty, out)
			assert.Equal(t, "", out.String())
			out.Release()
			set.Release()
		})
	}

	assert.Equal(t, 2, alloc.Live())
}

func TestStripNilArguments(t *testing.T) {
	v := mustValue(t, nil, "abc")

	for name, fn := range map[string]stripFunc{"strip": Strip, "lstrip": LStrip, "rstrip": RStrip} {
		t.Run(name, func(t *testing.T) {
			_, err := fn(nil, nil, v)
			require.Error(t, err)
			assert.True(t, strval.IsBadValue(err))
			assert.Contains(t, err.Error(), "Input string is nil.")

			_, err = fn(nil, v, nil)
			require.Error(t, err)
			assert.True(t, strval.IsBadValue(err))
			assert.Contains(t, err.Error(), "Cannot strip nil value.")
		})
	}

	_, err := Trim(nil, nil)
	assert.True(t, strval.IsBadValue(err))
}

func TestStripOutOfMemory(t *testing.T) {
	input := mustValue(t, nil, "xxsome long contentxx")
	set := mustValue(t, nil, "x")
	alloc := strval.NewLimitAllocator(8, nil)

	out, err := Strip(alloc, input, set)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, strval.IsOutOfMemory(err))
	assert.Equal(t, 0, alloc.Live())
}

func TestStripIdempotent(t *testing.T) {
	cases := []struct{ input, set string }{
		{"  hi  ", " "},
		{"xyxhixyx", "xy"},
		{"ééhelloéé", "é"},
		{"€ é hi é€", "é€ "},
		{"\xa9é\xc3", "é"},
		{"", "abc"},
		{"abc", ""},
		{"aaaa", "a"},
	}

	for _, c := range cases {
		input := mustValue(t, nil, c.input)
		set := mustValue(t, nil, c.set)

		once, err := Strip(nil, input, set)
		require.NoError(t, err)
		twice, err := Strip(nil, once, set)
		require.NoError(t, err)
		assert.Equal(t, once.String(), twice.String(), "strip(%q, %q)", c.input, c.set)
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		input, expect string
	}{
		{"  \t\nhi\r\n ", "hi"},
		{"hi", "hi"},
		{"", ""},
		{" \t\r\n", ""},
		{"\va\v", "\va\v"},
		{" a b ", "a b"},
	}

	for _, tt := range tests {
		alloc := strval.NewLimitAllocator(0, nil)
		input := mustValue(t, alloc, tt.input)

		out, err := Trim(alloc, input)
		require.NoError(t, err)
		assert.Equal(t, tt.expect, out.String())
		assert.NotSame(t, input, out)

		out.Release()
		input.Release()
		assert.Equal(t, 0, alloc.Live())
	}
}

func TestBounds(t *testing.T) {
	from, to := Bounds([]byte("aaa"), []byte("a"))
	assert.Equal(t, 3, from)
	assert.Equal(t, 3, to)

	from, to = Bounds([]byte("éxé"), []byte("é"))
	assert.Equal(t, 2, from)
	assert.Equal(t, 3, to)

	from, to = Bounds(nil, []byte("a"))
	assert.Equal(t, 0, from)
	assert.Equal(t, 0, to)

	assert.Equal(t, 0, Left([]byte("abc"), nil))
	assert.Equal(t, 3, Right([]byte("abc"), nil))
	assert.Equal(t, 2, Right([]byte("ab€"), []byte("€")))
}
