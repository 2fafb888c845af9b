package inode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameLimit(t *testing.T) {
	_, err := NewDir(strings.Repeat("d", NameLen))
	require.NoError(t, err)
	_, err = NewFile(strings.Repeat("f", NameLen), 0, 0)
	require.NoError(t, err)

	_, err = NewDir(strings.Repeat("d", NameLen+1))
	require.ErrorIs(t, err, ErrNameTooLong)
	_, err = NewFile(strings.Repeat("f", NameLen+1), 0, 0)
	require.ErrorIs(t, err, ErrNameTooLong)

	// The root directory has no name at all.
	_, err = NewDir("")
	require.NoError(t, err)
}

func TestNameLimitIsBytes(t *testing.T) {
	// Nine runes, but four bytes each.
	_, err := NewFile(strings.Repeat("🜁", 9), 0, 0)
	require.ErrorIs(t, err, ErrNameTooLong)
	_, err = NewFile(strings.Repeat("🜁", 8), 0, 0)
	require.NoError(t, err)
}
