package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageKey(t *testing.T) {
	key := StorageKey("profile-pictures")

	assert.True(t, strings.HasPrefix(key, "profile-pictures/"))

	parts := strings.Split(key, "/")
	assert.Len(t, parts, 4) // prefix/year/month/uuid
	assert.NotEmpty(t, parts[3])

	// Two keys never collide.
	assert.NotEqual(t, key, StorageKey("profile-pictures"))
}
