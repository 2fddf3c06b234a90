package regtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/embedgen/internal/render"
)

func TestAccessors(t *testing.T) {
	ptr, size := accessors(render.Options{Symbol: "blob", Namespace: "a::b", Style: render.StyleArray})
	assert.Equal(t, "a::b::blob.data()", ptr)
	assert.Equal(t, "a::b::blob.size()", size)

	ptr, size = accessors(render.Options{Symbol: "blob", Style: render.StyleCString})
	assert.Equal(t, "blob", ptr)
	assert.Equal(t, "blob_size", size)
}

func TestCompiledRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles C++ programs")
	}
	cxx, err := FindCompiler()
	if err != nil {
		t.Skip(err)
	}

	binary := []byte{0x00, 0x01, '7', 0x7f, 0x80, 0xff, '"', '\\', '?', '?', '=', '\n'}
	text := []byte("line one\n\t\"quoted\" ??= café 中文\r\n")

	inputs := []struct {
		name string
		mode render.Mode
		data []byte
	}{
		{"binary", render.ModeBinary, binary},
		{"text", render.ModeText, text},
		{"empty", render.ModeBinary, nil},
	}
	styles := []render.Style{render.StyleArray, render.StyleCArray, render.StyleCString, render.StyleStringView}

	for _, in := range inputs {
		for _, st := range styles {
			t.Run(in.name+"/"+string(st), func(t *testing.T) {
				opts := render.Options{Symbol: "blob", Namespace: "check::data", Mode: in.mode, Style: st, LineWidth: 5}
				header, err := render.Render(in.data, opts)
				require.NoError(t, err)

				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				defer cancel()

				got, err := RoundTrip(ctx, cxx, t.TempDir(), header, opts)
				require.NoError(t, err)
				if len(in.data) == 0 {
					assert.Empty(t, got)
				} else {
					assert.Equal(t, in.data, got)
				}
			})
		}
	}
}
