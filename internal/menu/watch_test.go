package menu

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type reload struct {
	tree Tree
	err  error
}

func startWatcher(t *testing.T, path string) (*Watcher, <-chan reload) {
	t.Helper()
	ch := make(chan reload, 8)
	w, err := NewWatcher(path, func(tree Tree, err error) {
		ch <- reload{tree: tree, err: err}
	}, zap.NewNop())
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond
	require.NoError(t, w.Start(context.Background()))
	return w, ch
}

func waitReload(t *testing.T, ch <-chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for menu reload")
		return reload{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Eski\n"), 0o644))

	w, ch := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Yeni\n"), 0o644))

	r := waitReload(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, []string{"Yeni"}, r.tree.Leaves())

	require.NoError(t, w.Close())
}

func TestWatcherReportsInvalidMenu(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: A\n"), 0o644))

	w, ch := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0o644))

	r := waitReload(t, ch)
	assert.ErrorIs(t, r.err, ErrEmptyTree)

	require.NoError(t, w.Close())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: A\n"), 0o644))

	w, ch := startWatcher(t, path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case r := <-ch:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, w.Close())
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: A\n"), 0o644))

	w, _ := startWatcher(t, path)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestNewWatcherRequiresPath(t *testing.T) {
	_, err := NewWatcher("", nil, nil)
	assert.Error(t, err)
}
