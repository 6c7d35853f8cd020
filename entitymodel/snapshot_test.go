package entitymodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/editable-entity-go/entitymodel"
)

type address struct {
	Street string
	City   string
	Tags   []string
}

type account struct {
	Owner   string
	Balance int
}

func Test_BuildJSONSnapshotter_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		target      any
		expectedErr error
	}{
		{
			name:        "nil target",
			target:      nil,
			expectedErr: entitymodel.ErrNilSnapshotTarget,
		},
		{
			name:        "struct value instead of pointer",
			target:      address{},
			expectedErr: entitymodel.ErrSnapshotTargetNotPointer,
		},
		{
			name:        "pointer to non-struct",
			target:      new(int),
			expectedErr: entitymodel.ErrSnapshotTargetNotPointer,
		},
		{
			name:        "nil typed pointer",
			target:      (*address)(nil),
			expectedErr: entitymodel.ErrSnapshotTargetNotPointer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entitymodel.BuildJSONSnapshotter(tt.target)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_JSONSnapshotter_SnapshotAndRestoreRoundTrip(t *testing.T) {
	target := &address{Street: "Main St 1", City: "Springfield", Tags: []string{"home"}}
	snapshotter, err := entitymodel.BuildJSONSnapshotter(target)
	require.NoError(t, err)

	snapshot, err := snapshotter.Snapshot()
	require.NoError(t, err)

	target.Street = "Elm St 7"
	target.Tags = append(target.Tags, "work")

	require.NoError(t, snapshotter.Restore(snapshot))

	assert.Equal(t, &address{Street: "Main St 1", City: "Springfield", Tags: []string{"home"}}, target)
}

func Test_JSONSnapshotter_SnapshotIsADeepCopy(t *testing.T) {
	target := &address{Street: "Main St 1", Tags: []string{"home"}}
	snapshotter, err := entitymodel.BuildJSONSnapshotter(target)
	require.NoError(t, err)

	snapshot, err := snapshotter.Snapshot()
	require.NoError(t, err)

	// mutating shared backing state must not leak into the snapshot
	target.Tags[0] = "mutated"

	require.NoError(t, snapshotter.Restore(snapshot))
	assert.Equal(t, []string{"home"}, target.Tags)
}

func Test_JSONSnapshotter_EqualIsStructural(t *testing.T) {
	target := &address{Street: "Main St 1", City: "Springfield"}
	snapshotter, err := entitymodel.BuildJSONSnapshotter(target)
	require.NoError(t, err)

	snapshot, err := snapshotter.Snapshot()
	require.NoError(t, err)

	equal, err := snapshotter.Equal(snapshot)
	require.NoError(t, err)
	assert.True(t, equal)

	target.City = "Shelbyville"

	equal, err = snapshotter.Equal(snapshot)
	require.NoError(t, err)
	assert.False(t, equal)

	target.City = "Springfield"

	equal, err = snapshotter.Equal(snapshot)
	require.NoError(t, err)
	assert.True(t, equal)
}

func Test_JSONSnapshotter_CloneReturnsIndependentInstance(t *testing.T) {
	target := &address{Street: "Main St 1", Tags: []string{"home"}}
	snapshotter, err := entitymodel.BuildJSONSnapshotter(target)
	require.NoError(t, err)

	cloned, err := snapshotter.Clone()
	require.NoError(t, err)

	clonedAddress, ok := cloned.(*address)
	require.True(t, ok)
	assert.Equal(t, target, clonedAddress)
	assert.NotSame(t, target, clonedAddress)

	clonedAddress.Tags[0] = "mutated"
	assert.Equal(t, "home", target.Tags[0])
}

func Test_JSONSnapshotter_RejectsForeignSnapshots(t *testing.T) {
	target := &address{}
	snapshotter, err := entitymodel.BuildJSONSnapshotter(target)
	require.NoError(t, err)

	assert.ErrorIs(t, snapshotter.Restore("not a snapshot"), entitymodel.ErrSnapshotTypeMismatch)

	_, err = snapshotter.Equal(42)
	assert.ErrorIs(t, err, entitymodel.ErrSnapshotTypeMismatch)
}

func Test_BuildFuncSnapshotter_ErrorCases(t *testing.T) {
	target := &account{}
	loadState := func(into *account, from *account) { *into = *from }
	equalState := func(a *account, b *account) bool { return *a == *b }

	tests := []struct {
		name        string
		target      *account
		loadState   func(into *account, from *account)
		equalState  func(a *account, b *account) bool
		expectedErr error
	}{
		{
			name:        "nil target",
			target:      nil,
			loadState:   loadState,
			equalState:  equalState,
			expectedErr: entitymodel.ErrNilSnapshotTarget,
		},
		{
			name:        "nil load state",
			target:      target,
			loadState:   nil,
			equalState:  equalState,
			expectedErr: entitymodel.ErrNilLoadState,
		},
		{
			name:        "nil equal state",
			target:      target,
			loadState:   loadState,
			equalState:  nil,
			expectedErr: entitymodel.ErrNilEqualState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entitymodel.BuildFuncSnapshotter(tt.target, tt.loadState, tt.equalState)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_FuncSnapshotter_UsesSuppliedOperations(t *testing.T) {
	target := &account{Owner: "Ada", Balance: 100}

	snapshotter, err := entitymodel.BuildFuncSnapshotter(
		target,
		func(into *account, from *account) { *into = *from },
		func(a *account, b *account) bool { return *a == *b },
	)
	require.NoError(t, err)

	snapshot, err := snapshotter.Snapshot()
	require.NoError(t, err)

	target.Balance = 50

	equal, err := snapshotter.Equal(snapshot)
	require.NoError(t, err)
	assert.False(t, equal)

	require.NoError(t, snapshotter.Restore(snapshot))
	assert.Equal(t, 100, target.Balance)

	cloned, err := snapshotter.Clone()
	require.NoError(t, err)
	assert.Equal(t, target, cloned)

	assert.ErrorIs(t, snapshotter.Restore("foreign"), entitymodel.ErrSnapshotTypeMismatch)
}
