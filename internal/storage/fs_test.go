package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_RoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "abc123.pdf", []byte("%PDF-1.7 content"), "application/pdf"))

	got, err := s.Get(ctx, "abc123.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 content"), got)

	require.NoError(t, s.Delete(ctx, "abc123.pdf"))

	_, err = s.Get(ctx, "abc123.pdf")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFSStore_OverwriteReplacesContent(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k.docx", []byte("v1"), ""))
	require.NoError(t, s.Put(ctx, "k.docx", []byte("v2"), ""))

	got, err := s.Get(ctx, "k.docx")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestFSStore_DeleteMissing(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(context.Background(), "nope.pdf"), ErrBlobNotFound)
}

func TestFSStore_RejectsPathLikeKeys(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "a/b.pdf", `a\b.pdf`, "..secret", "../../etc/passwd"} {
		assert.Error(t, s.Put(ctx, key, []byte("x"), ""), "key %q", key)
		_, err := s.Get(ctx, key)
		assert.Error(t, err, "key %q", key)
	}
}
