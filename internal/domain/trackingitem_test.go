package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemIDFor(t *testing.T) {
	assert.Equal(t, "p1_1.2.3", ItemIDFor("p1", "1.2.3"))
}

func TestTrackingItem_Level(t *testing.T) {
	assert.Equal(t, 1, (&TrackingItem{WBSID: "1"}).Level())
	assert.Equal(t, 3, (&TrackingItem{WBSID: "1.2.10"}).Level())
}

func TestResolveParentRef_DottedForm(t *testing.T) {
	assert.Equal(t, "p1_1.2", ResolveParentRef("p1", "1.2"))
}

func TestResolveParentRef_AlreadyQualified(t *testing.T) {
	assert.Equal(t, "p1_1.2", ResolveParentRef("p1", "p1_1.2"))
}

func TestResolveParentRef_Empty(t *testing.T) {
	assert.Equal(t, "", ResolveParentRef("p1", ""))
}

func TestTrackingStatus_IsClosed(t *testing.T) {
	assert.True(t, StatusCompleted.IsClosed())
	assert.True(t, StatusCancelled.IsClosed())
	assert.False(t, StatusInProgress.IsClosed())
	assert.False(t, StatusNotStarted.IsClosed())
}
