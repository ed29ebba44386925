package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortTruncatesLongRevisions(t *testing.T) {
	assert.Equal(t, "a3f8c2d1", short("a3f8c2d19b7e5f04c6d2a1b3"))
	assert.Equal(t, "dev", short("dev"))
	assert.Equal(t, "", short(""))
}

func TestFullCombinesAppNameAndCommit(t *testing.T) {
	assert.Equal(t, AppName+"/"+GitCommit, Full())
	assert.NotEmpty(t, GitCommit)
}
