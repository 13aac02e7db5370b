package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/configtree/pkg/tree"
)

func TestRecorder_Hooks(t *testing.T) {
	r := NewRecorder()
	hooks := r.Hooks()
	ctx := context.Background()

	hooks.OnVersionValidated(ctx, &tree.VersionEvent{Environment: "dev", Version: 1})
	hooks.OnVersionValidated(ctx, &tree.VersionEvent{Environment: "dev", Version: 2})
	hooks.OnVersionValidated(ctx, &tree.VersionEvent{Environment: "prod", Version: 1})
	hooks.OnWalkComplete(ctx, &tree.WalkEvent{Layout: tree.LayoutEnvironments, Versions: 3, Duration: 5 * time.Millisecond})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.validated.WithLabelValues("dev")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.validated.WithLabelValues("prod")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.walks.WithLabelValues("environments", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.lastSuccess))

	hooks.OnWalkComplete(ctx, &tree.WalkEvent{
		Layout: tree.LayoutVersions,
		Err:    errors.New("boom"),
		Kind:   tree.KindVersionMismatch,
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(r.walks.WithLabelValues("versions", "version_mismatch")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.lastSuccess))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Hooks().OnWalkComplete(context.Background(), &tree.WalkEvent{Layout: tree.LayoutEnvironments})

	path := filepath.Join(t.TempDir(), "configtree.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "configtree_last_walk_success 1")
	assert.Contains(t, string(data), `configtree_walks_total{kind="ok",layout="environments"} 1`)

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "configtree.prom"))
	assert.Error(t, err)
}
