package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/stretchr/testify/require"
)

// fakeMediaStore records cleanup calls and can be forced to fail.
type fakeMediaStore struct {
	prefix    string
	deleted   []string
	deleteErr error
}

func (f *fakeMediaStore) Owns(url string) bool {
	return f.prefix != "" && strings.HasPrefix(url, f.prefix)
}

func (f *fakeMediaStore) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return f.deleteErr
}

func newTestLogger(t *testing.T) glog.Logger {
	t.Helper()

	logger, err := glog.NewConsoleWithName("test", glog.LevelInfo)
	require.NoError(t, err)
	return logger
}

func TestRemoveImageBestEffort_SwallowsDeleteFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeMediaStore{
		prefix:    "https://s3.example.com/zuinder/",
		deleteErr: errors.New("bucket unreachable"),
	}
	s := &CMS{logger: newTestLogger(t), media: fake}

	// must not panic or propagate; the caller's row deletion already
	// succeeded at this point
	s.removeImageBestEffort(context.Background(),
		"https://s3.example.com/zuinder/uploads/a.png")
	require.Equal(t,
		[]string{"https://s3.example.com/zuinder/uploads/a.png"}, fake.deleted)
}

func TestRemoveImageBestEffort_SkipsForeignAndEmptyURLs(t *testing.T) {
	t.Parallel()

	fake := &fakeMediaStore{prefix: "https://s3.example.com/zuinder/"}
	s := &CMS{logger: newTestLogger(t), media: fake}

	s.removeImageBestEffort(context.Background(), "https://elsewhere.example.com/a.png")
	s.removeImageBestEffort(context.Background(), "")
	require.Empty(t, fake.deleted)
}

func TestRemoveImageBestEffort_NilStore(t *testing.T) {
	t.Parallel()

	s := &CMS{logger: newTestLogger(t)}
	s.removeImageBestEffort(context.Background(),
		"https://s3.example.com/zuinder/uploads/a.png")
}
