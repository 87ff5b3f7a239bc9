package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type srcPatch struct {
	Title   *string
	Content *string
}

type dstPatch struct {
	Title   *string
	Content *string
}

func TestStructAssign(t *testing.T) {
	title := "hello"
	src := srcPatch{Title: &title}

	var dst dstPatch
	require.NoError(t, StructAssign(&dst, src))

	require.NotNil(t, dst.Title)
	assert.Equal(t, "hello", *dst.Title)
	assert.Nil(t, dst.Content)
}

func TestStructToMap(t *testing.T) {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: "u1", Password: "hashed"}

	m, err := StructToMap(in)
	require.NoError(t, err)
	assert.Equal(t, "u1", m["username"])
	assert.Equal(t, "hashed", m["password"])

	delete(m, "password")
	_, ok := m["password"]
	assert.False(t, ok)
}
