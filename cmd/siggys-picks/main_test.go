package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/siggys-picks/internal/config"
	applogger "github.com/yourusername/siggys-picks/internal/logger"
	"github.com/yourusername/siggys-picks/internal/models"
)

func setupCommandState(t *testing.T, overrides string) {
	t.Helper()
	cfg = &config.Config{Batch: config.BatchConfig{Workers: 2}}
	logger = applogger.Discard()
	overridesFile = overrides
	t.Cleanup(func() {
		cfg = nil
		logger = nil
		overridesFile = ""
	})
}

func TestDecodeMatch(t *testing.T) {
	f, err := os.Open("testdata/match.json")
	require.NoError(t, err)
	defer f.Close()

	match, err := decodeMatch(f)
	require.NoError(t, err)
	assert.Equal(t, "bos-ott", match.ID)
	assert.Equal(t, "Boston Bruins", match.Home.Name)
	require.NotNil(t, match.Away.Moneyline)
	assert.Equal(t, 130, *match.Away.Moneyline)
}

func TestDecodeMatchErrors(t *testing.T) {
	_, err := decodeMatch(strings.NewReader("not json"))
	assert.ErrorIs(t, err, models.ErrMatchDecode)

	_, err = decodeMatch(strings.NewReader(`{"home":{"stats":{"penaltyKillPct":-3}}}`))
	assert.ErrorIs(t, err, models.ErrInvalidMatch)
}

func TestDecodeMatches(t *testing.T) {
	f, err := os.Open("testdata/slate.json")
	require.NoError(t, err)
	defer f.Close()

	matches, err := decodeMatches(f)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "edm-cgy", matches[2].ID)
	assert.False(t, matches[2].HasMarket())
}

func TestOpenInputStdin(t *testing.T) {
	in, err := openInput("-", strings.NewReader("{}"))
	require.NoError(t, err)
	defer in.Close()

	match, err := decodeMatch(in)
	require.NoError(t, err)
	assert.Empty(t, match.ID)
}

func TestOpenInputMissingFile(t *testing.T) {
	_, err := openInput("testdata/does-not-exist.json", nil)
	assert.Error(t, err)
}

func TestResolvePicksConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setupCommandState(t, "")
		got, err := resolvePicksConfig()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPicksConfig(), got)
	})

	t.Run("overrides file", func(t *testing.T) {
		setupCommandState(t, "testdata/overrides.yaml")
		got, err := resolvePicksConfig()
		require.NoError(t, err)
		assert.Equal(t, 0.8, got.MarketWeight)
	})

	for _, path := range []string{
		"testdata/overrides_bad.json",
		"testdata/overrides_array.json",
		"testdata/overrides_broken.json",
		"testdata/overrides_scalar.yaml",
	} {
		t.Run("unusable overrides fall back "+path, func(t *testing.T) {
			setupCommandState(t, path)
			got, err := resolvePicksConfig()
			require.NoError(t, err)
			assert.Equal(t, config.DefaultPicksConfig(), got)
		})
	}

	t.Run("missing overrides file fails", func(t *testing.T) {
		setupCommandState(t, "testdata/nope.yaml")
		_, err := resolvePicksConfig()
		assert.Error(t, err)
	})
}

func TestPickCommandSummary(t *testing.T) {
	setupCommandState(t, "")
	matchFile = "testdata/match.json"
	summaryOnly = true
	t.Cleanup(func() {
		matchFile = "-"
		summaryOnly = false
	})

	out := &bytes.Buffer{}
	pickCmd.SetOut(out)
	require.NoError(t, pickCmd.RunE(pickCmd, nil))

	assert.Equal(t, "I'll take Boston Bruins ML at -150 / 1.67 (10%). • +1.5 on the Ottawa Senators (40% conf)\n", out.String())
}
