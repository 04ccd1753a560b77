package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform(" LeetCode ")
	assert.NoError(t, err)
	assert.Equal(t, Leetcode, p)

	_, err = ParsePlatform("topcoder")
	assert.Error(t, err)
}

func TestPlatforms_Order(t *testing.T) {
	assert.Equal(t, []Platform{Leetcode, Codeforces, Codechef, Hackerrank}, Platforms())
	assert.Equal(t, "Codechef", Codechef.Title())
}
