package dashboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesrcielos/CodingTracker/internal/platform"
)

func TestFilter(t *testing.T) {
	all := platform.Platforms()
	assert.Equal(t, []platform.Platform{platform.Codeforces, platform.Codechef}, Filter(all, "CODE"))
	assert.Equal(t, all, Filter(all, ""))
	assert.Empty(t, Filter(all, "topcoder"))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, View{
		Profile: Profile{Username: "alice", Email: "a@x.com"},
		Cards: map[platform.Platform]Card{
			platform.Leetcode: {Platform: platform.Leetcode, Username: "alice_lc", TotalSolved: 9},
		},
		Daily:  DailyStatus{platform.Leetcode: true},
		Search: "leet",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Hello, ALICE")
	assert.Contains(t, out, "daily: pending")
	assert.Contains(t, out, "[x] Leetcode")
	assert.Contains(t, out, "Total Solved: 9")
	assert.NotContains(t, out, "Codeforces")
}

func TestRender_MissingCardsShowNotSet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, View{Profile: Profile{Username: "bob"}}))
	assert.Contains(t, buf.String(), "Not set")
	assert.Contains(t, buf.String(), "Hackerrank")
}
