package dao

import (
	"errors"
	"testing"

	"github.com/quillnote/quill-note-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseObjectID(t *testing.T) {
	valid := bson.NewObjectID().Hex()

	t.Run("valid hex id round-trips", func(t *testing.T) {
		oid, err := ParseObjectID(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, oid.Hex())
	})

	invalid := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "abc123"},
		{"too long", valid + "ff"},
		{"non hex characters", "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{"right length wrong alphabet", "g5f1c2d3e4a5b6c7d8e9f0a1"},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseObjectID(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidID))
		})
	}
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID(bson.NewObjectID().Hex()))
	assert.False(t, IsValidObjectID("not-an-object-id"))
	assert.False(t, IsValidObjectID(""))
}
