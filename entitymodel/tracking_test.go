package entitymodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/editable-entity-go/entitymodel"
	"github.com/modelkit/editable-entity-go/testutil/testdoubles"
)

func Test_Tracking_AcceptChangesTransitionsNewToPersistedAndEnablesTracking(t *testing.T) {
	c := buildCustomer(t, entitymodel.WithChangeTracking(true))
	c.Name = "Ada"

	assert.True(t, c.Base.IsNew())
	assert.True(t, c.Base.IsChangeTrackingEnabled())

	require.NoError(t, c.Base.AcceptChanges())

	assert.False(t, c.Base.IsNew())
	assert.True(t, c.Base.IsChangeTrackingEnabled(), "tracking stays enabled")
	assert.False(t, c.Base.IsChanged())
	assert.False(t, c.Base.IsEditing(), "control-property writes must not snapshot")
}

func Test_Tracking_AcceptChangesEnablesTrackingWhenPreviouslyOff(t *testing.T) {
	c := buildCustomer(t)
	c.Name = "Ada"

	assert.False(t, c.Base.IsChangeTrackingEnabled())

	require.NoError(t, c.Base.AcceptChanges())

	assert.False(t, c.Base.IsNew())
	assert.True(t, c.Base.IsChangeTrackingEnabled(), "first accept switches tracking on")
}

func Test_Tracking_TrackedWriteSnapshotsImplicitlyAndMarksDirty(t *testing.T) {
	c := buildCustomer(t, entitymodel.WithChangeTracking(true))
	c.Name = "Ada"
	c.Email = "ada@example.com"

	require.NoError(t, c.Base.AcceptChanges())

	_, err := c.setName("Grace")
	require.NoError(t, err)

	assert.True(t, c.Base.IsEditing(), "snapshot auto-created on first tracked write")
	assert.True(t, c.Base.IsChanged())

	require.NoError(t, c.Base.CancelEdit())

	assert.Equal(t, "Ada", c.Name, "field reverts to the snapshot")
	assert.False(t, c.Base.IsChanged())
	assert.False(t, c.Base.IsEditing())
}

func Test_Tracking_AcceptChangesWhileDirtyCommitsAndKeepsFieldValues(t *testing.T) {
	c := buildCustomer(t, entitymodel.WithChangeTracking(true))
	c.Name = "Ada"

	require.NoError(t, c.Base.AcceptChanges())

	_, err := c.setName("Grace")
	require.NoError(t, err)
	require.True(t, c.Base.IsChanged())

	require.NoError(t, c.Base.AcceptChanges())

	assert.Equal(t, "Grace", c.Name, "commit keeps the current field values")
	assert.False(t, c.Base.IsChanged())
	assert.False(t, c.Base.IsEditing())
	assert.False(t, c.Base.IsNew())
}

func Test_Tracking_DirtyFlagClearsWhenStateReturnsToSnapshot(t *testing.T) {
	c := buildCustomer(t, entitymodel.WithChangeTracking(true))
	c.Name = "Ada"

	require.NoError(t, c.Base.AcceptChanges())

	_, err := c.setName("Grace")
	require.NoError(t, err)
	assert.True(t, c.Base.IsChanged())

	_, err = c.setName("Ada")
	require.NoError(t, err)
	assert.False(t, c.Base.IsChanged(), "structural equality against the snapshot clears the flag")
}

func Test_Tracking_PropertyWritePipelineOrdering(t *testing.T) {
	c := buildCustomer(t, entitymodel.WithChangeTracking(true))
	c.Name = "Ada"

	require.NoError(t, c.Base.AcceptChanges())

	recorder := testdoubles.NewSignalRecorder()
	_, err := c.Base.OnBeginEditing(recorder.Plain("begin-editing"))
	require.NoError(t, err)
	_, err = c.Base.OnPropertyChanging(recorder.Named("changing"))
	require.NoError(t, err)
	_, err = c.Base.OnPropertyChanged(recorder.Named("changed"))
	require.NoError(t, err)
	_, err = c.Base.OnErrorsChanged(recorder.Named("errors"))
	require.NoError(t, err)

	_, err = c.setName("")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"begin-editing",
		"changing:Name",
		"changed:Name",
		"errors:Name",
		"changed:HasErrors",
		"changing:IsChanged",
		"changed:IsChanged",
	}, recorder.Trace())
}

func Test_Tracking_DisabledTrackingMeansNoImplicitSnapshotAndNoDirtyFlag(t *testing.T) {
	c := buildCustomer(t)
	c.Name = "Ada"

	_, err := c.setName("Grace")
	require.NoError(t, err)

	assert.False(t, c.Base.IsEditing())
	assert.False(t, c.Base.IsChanged())
}

func Test_Tracking_SetChangeTrackingEnabledIsNotifiedWithoutSideEffects(t *testing.T) {
	c := buildCustomer(t)

	recorder := testdoubles.NewSignalRecorder()
	_, err := c.Base.OnPropertyChanged(recorder.Named("changed"))
	require.NoError(t, err)

	require.NoError(t, c.Base.SetChangeTrackingEnabled(true))

	assert.True(t, c.Base.IsChangeTrackingEnabled())
	assert.Equal(t, []string{"changed:IsChangeTrackingEnabled"}, recorder.Trace())
	assert.False(t, c.Base.IsEditing())

	recorder.Reset()

	require.NoError(t, c.Base.SetChangeTrackingEnabled(true))

	assert.Empty(t, recorder.Trace(), "setting the same value again must not notify")
}

func Test_Tracking_IsNewOnlyClearedByAcceptChanges(t *testing.T) {
	c := buildCustomer(t, entitymodel.WithChangeTracking(true))
	c.Name = "Ada"

	_, err := c.setName("Grace")
	require.NoError(t, err)
	require.NoError(t, c.Base.CancelEdit())
	require.NoError(t, c.Base.BeginEdit())
	require.NoError(t, c.Base.EndEdit())

	assert.True(t, c.Base.IsNew())

	require.NoError(t, c.Base.AcceptChanges())

	assert.False(t, c.Base.IsNew())
}

func Test_Tracking_RejectChangesIsAnAliasForCancelEdit(t *testing.T) {
	c := buildCustomer(t, entitymodel.WithChangeTracking(true))
	c.Name = "Ada"

	require.NoError(t, c.Base.AcceptChanges())

	_, err := c.setName("Grace")
	require.NoError(t, err)
	require.True(t, c.Base.IsChanged())

	recorder := testdoubles.NewSignalRecorder()
	_, err = c.Base.OnCancelEditing(recorder.Plain("cancel-editing"))
	require.NoError(t, err)

	require.NoError(t, c.Base.RejectChanges())

	assert.Equal(t, "Ada", c.Name)
	assert.False(t, c.Base.IsChanged())
	assert.Equal(t, []string{"cancel-editing"}, recorder.Trace())
}
