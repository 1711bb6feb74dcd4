package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOwner_Client(t *testing.T) {
	o := ClassifyOwner("客戶窗口")
	assert.Equal(t, OwnerClient, o.Kind)
	assert.Equal(t, "客戶窗口", o.Primary)
	assert.Empty(t, o.Secondary)
}

func TestClassifyOwner_Department(t *testing.T) {
	o := ClassifyOwner("開發部 / 測試組")
	assert.Equal(t, OwnerDepartment, o.Kind)
	assert.Equal(t, "開發部", o.Primary)
	assert.Equal(t, "測試組", o.Secondary)
}

func TestClassifyOwner_Internal(t *testing.T) {
	o := ClassifyOwner("專案經理")
	assert.Equal(t, OwnerInternal, o.Kind)
	assert.Equal(t, "專案經理", o.Primary)
}

func TestClassifyOwner_Empty(t *testing.T) {
	o := ClassifyOwner("   ")
	assert.Equal(t, Owner{}, o)
}

func TestClassifyOwner_ClientMarkerWinsOverSlash(t *testing.T) {
	// A unit naming the client takes the client branch even if it contains a slash.
	o := ClassifyOwner("客戶/窗口")
	assert.Equal(t, OwnerClient, o.Kind)
	assert.Equal(t, "客戶/窗口", o.Primary)
}
