package obj_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	track "github.com/lytkinsa96/101-Digital-Modeling"
	"github.com/lytkinsa96/101-Digital-Modeling/obj"
)

const railOBJ = `# exported polyline
o Rail_Left
v 0.0 0.76 0.0
v 5.0 0.76 0.1
v 10.0 0.8 0.2 1.0
vn 0 0 1
vt 0.5 0.5
l 1 2
l 2 3
`

func TestRead(t *testing.T) {
	pts, err := obj.Read(strings.NewReader(railOBJ))
	require.NoError(t, err)
	assert.Equal(t, track.Polyline{
		track.P3(0, 0.76, 0),
		track.P3(5, 0.76, 0.1),
		track.P3(10, 0.8, 0.2),
	}, pts)
}

func TestRead_Empty(t *testing.T) {
	for name, in := range map[string]string{
		"empty":    "",
		"no verts": "# nothing\nvn 0 0 1\nl 1 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := obj.Read(strings.NewReader(in))
			assert.ErrorIs(t, err, track.ErrEmptyInput)
		})
	}
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"too few fields", "v 1 2 3\nv 1 2\n", 2},
		{"not a number", "# c\nv 1 two 3\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := obj.Read(strings.NewReader(tt.in))
			var pe *obj.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestRead_NumberError(t *testing.T) {
	_, err := obj.Read(strings.NewReader("v 1 x 3\n"))
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "line 1")
}

func TestRead_ByteOrderMarks(t *testing.T) {
	want := track.Polyline{track.P3(1, 2, 3), track.P3(4, 5, 6)}
	body := "v 1 2 3\r\nv 4 5 6\r\n"

	t.Run("utf-8", func(t *testing.T) {
		pts, err := obj.Read(strings.NewReader("\ufeff" + body))
		require.NoError(t, err)
		assert.Equal(t, want, pts)
	})

	t.Run("utf-16le", func(t *testing.T) {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		data, _, err := transform.String(enc, body)
		require.NoError(t, err)

		pts, err := obj.Read(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, want, pts)
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "left.obj")
	require.NoError(t, os.WriteFile(path, []byte(railOBJ), 0o600))

	pts, err := obj.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, pts, 3)

	_, err = obj.ReadFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
