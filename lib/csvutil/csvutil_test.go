package csvutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hitters.csv")

	err := WriteFile(
		path,
		[]string{"season", "name", "team", "PA"},
		[][]string{
			{"2024", "최정", "SSG", "550"},
			{"2025", "박성한", "SSG", "489"},
		},
	)
	require.NoError(t, err)

	// the file must start with a byte order mark
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3])

	header, rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"season", "name", "team", "PA"}, header)
	require.Len(t, rows, 2)
	require.Equal(t, "최정", rows[0][1])
}

func TestReadFileWithoutBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644)
	require.NoError(t, err)

	header, rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, header)
	require.Equal(t, [][]string{{"1", "2"}}, rows)
}

func TestCoerceFloat(t *testing.T) {
	require.Equal(t, 0.291, CoerceFloat("0.291"))
	require.Equal(t, 4.0, CoerceFloat(" 4 "))
	require.True(t, math.IsNaN(CoerceFloat("")))
	require.True(t, math.IsNaN(CoerceFloat("-")))
	require.True(t, math.IsNaN(CoerceFloat("n/a")))
}

func TestCoerceInt(t *testing.T) {
	require.Equal(t, 550, CoerceInt("550"))
	require.Equal(t, 0, CoerceInt(""))
	require.Equal(t, 0, CoerceInt("-"))
	require.Equal(t, 0, CoerceInt("abc"))
}

func TestFormatFloat(t *testing.T) {
	require.Equal(t, "0.291", FormatFloat(0.291))
	require.Equal(t, "", FormatFloat(math.NaN()))
	require.True(t, math.IsNaN(CoerceFloat(FormatFloat(math.NaN()))))
}
