package altreader

import (
	"io"
	"strings"
	"testing"

	"github.com/jank-lang/jank/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltReaderBasics(t *testing.T) {
	r, err := New("test", strings.NewReader("(def x 1)"))
	require.NoError(t, err)
	v, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, value.ListType, v.Type)
	assert.Equal(t, 3, v.Len())

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestAltReaderCollections(t *testing.T) {
	r, err := New("test", strings.NewReader(`[1 2] {:a 1} #{1 2} 'x :kw 3.5 "s"`))
	require.NoError(t, err)
	vals, err := drain(r)
	require.NoError(t, err)
	require.Len(t, vals, 7)
	assert.Equal(t, value.VectorType, vals[0].Type)
	assert.Equal(t, value.MapType, vals[1].Type)
	assert.Equal(t, value.SetType, vals[2].Type)
	assert.Equal(t, value.ListType, vals[3].Type)
	assert.Equal(t, "quote", vals[3].First().Name)
	assert.Equal(t, value.KeywordType, vals[4].Type)
	assert.Equal(t, value.RealType, vals[5].Type)
}

func drain(r *Reader) ([]*value.Value, error) {
	var out []*value.Value
	for {
		v, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
