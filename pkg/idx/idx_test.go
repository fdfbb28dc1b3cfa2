package idx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())

	_, err = idx.Parse("  ")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Equal(t, -1, idx.Compare(a, b))
	require.Equal(t, 1, idx.Compare(b, a))
	require.Equal(t, 0, idx.Compare(a, a))
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)

	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
	require.True(t, idx.ID("garbage").Time().IsZero())
}

func TestWithPrefix(t *testing.T) {
	id := idx.WithPrefix("anon")
	require.True(t, strings.HasPrefix(id.String(), "anon_"))
	require.Equal(t, strings.ToLower(id.String()), id.String())
	require.WithinDuration(t, time.Now(), id.Time(), time.Second)

	parsed, err := idx.ParsePrefixed("anon", id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = idx.ParsePrefixed("user", id.String())
	require.ErrorIs(t, err, idx.ErrInvalid)

	_, err = idx.ParsePrefixed("anon", "anon_nope")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestMustParse(t *testing.T) {
	require.NotPanics(t, func() { idx.MustParse("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV") })
	require.Panics(t, func() { idx.MustParse("nope") })
}
