package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanURLStripsTrackingParams(t *testing.T) {
	result, err := CleanURL("https://example.com/page?utm_source=newsletter&utm_medium=email&id=42")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/page?id=42", result.CleanedURL)
	require.Len(t, result.RemovedParams, 2)
	for _, removed := range result.RemovedParams {
		assert.Equal(t, "Google", removed.Company)
		assert.Equal(t, "utm_", removed.MatchedRule)
	}
}

func TestCleanURLExactMatchRules(t *testing.T) {
	result, err := CleanURL("https://example.com/?fbclid=abc123&gclid=xyz&q=search")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/?q=search", result.CleanedURL)
	require.Len(t, result.RemovedParams, 2)

	byParam := map[string]RemovedParamInfo{}
	for _, removed := range result.RemovedParams {
		byParam[removed.Parameter] = removed
	}
	assert.Equal(t, "Meta", byParam["fbclid"].Company)
	assert.Equal(t, "abc123", byParam["fbclid"].Value)
	assert.Equal(t, "Google", byParam["gclid"].Company)
}

func TestCleanURLKeepsUnknownParamsSorted(t *testing.T) {
	result, err := CleanURL("https://example.com/?zeta=1&alpha=2&mkt_tok=tok")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/?alpha=2&zeta=1", result.CleanedURL)
	require.Len(t, result.RemovedParams, 1)
	assert.Equal(t, "Marketo", result.RemovedParams[0].Company)
}

func TestCleanURLCaseInsensitiveMatch(t *testing.T) {
	result, err := CleanURL("https://example.com/?UTM_Source=x&FBCLID=y")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", result.CleanedURL)
	assert.Len(t, result.RemovedParams, 2)
}

func TestCleanURLNoQuery(t *testing.T) {
	result, err := CleanURL("https://example.com/path")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/path", result.CleanedURL)
	assert.Empty(t, result.RemovedParams)
}

func TestCleanURLNothingToRemove(t *testing.T) {
	result, err := CleanURL("https://example.com/?page=2&sort=asc")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/?page=2&sort=asc", result.CleanedURL)
	assert.Empty(t, result.RemovedParams)
}
