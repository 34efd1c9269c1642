package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePostRequestGroupIDAbsent(t *testing.T) {
	var req UpdatePostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"text":"edited"}`), &req))

	assert.False(t, req.GroupID.Set)
	assert.False(t, req.ImageKey.Set)
}

func TestUpdatePostRequestGroupIDNull(t *testing.T) {
	var req UpdatePostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"group_id":null}`), &req))

	assert.True(t, req.GroupID.Set)
	assert.Nil(t, req.GroupID.Value)
}

func TestUpdatePostRequestGroupIDValue(t *testing.T) {
	id := uuid.New()
	var req UpdatePostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"group_id":"`+id.String()+`"}`), &req))

	assert.True(t, req.GroupID.Set)
	require.NotNil(t, req.GroupID.Value)
	assert.Equal(t, id, *req.GroupID.Value)
}

func TestUpdatePostRequestImageKeyNull(t *testing.T) {
	var req UpdatePostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"image_key":null}`), &req))

	assert.True(t, req.ImageKey.Set)
	assert.Nil(t, req.ImageKey.Value)
}

func TestUpdatePostRequestGroupIDInvalid(t *testing.T) {
	var req UpdatePostRequest
	assert.Error(t, json.Unmarshal([]byte(`{"group_id":"not-a-uuid"}`), &req))
}
