package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(Config{
		Endpoint:  "s3.example.com",
		Bucket:    "zuinder",
		AccessKey: "access",
		SecretKey: "secret",
		PublicURL: "https://s3.example.com/zuinder/",
	})
	require.NoError(t, err)
	return s
}

func TestNew_RequiresEndpointAndBucket(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Bucket: "zuinder"})
	require.Error(t, err)

	_, err = New(Config{Endpoint: "s3.example.com"})
	require.Error(t, err)
}

func TestOwns(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.Owns("https://s3.example.com/zuinder/uploads/abc.png"))
	require.False(t, s.Owns("https://elsewhere.example.com/uploads/abc.png"))
	require.False(t, s.Owns(""))
}

func TestObjectKey(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	key, err := s.objectKey("https://s3.example.com/zuinder/uploads/abc.png")
	require.NoError(t, err)
	require.Equal(t, "uploads/abc.png", key)

	_, err = s.objectKey("https://elsewhere.example.com/x.png")
	require.Error(t, err)
}
