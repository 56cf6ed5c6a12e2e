package assumptions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsFixtureBundle(t *testing.T) {
	b, err := Get("IN", "2024-Q4")
	require.NoError(t, err)
	require.Equal(t, "IN", b.Region)
	require.Equal(t, "2024-Q4", b.Version)
	require.True(t, b.HasAsset("equity_index"))
	require.True(t, b.HasAsset("debt_index"))
	require.True(t, b.HasAsset("commodity_gold"))
	require.True(t, b.HasAsset("cash"))
}

func TestGetUnknownBundleFails(t *testing.T) {
	_, err := Get("US", "1999-Q1")
	require.Error(t, err)
}

func TestGetLatestReturnsHighestVersion(t *testing.T) {
	b, err := GetLatest("IN")
	require.NoError(t, err)
	require.Equal(t, "2024-Q4", b.Version)
}

func TestGetLatestUnknownRegionFails(t *testing.T) {
	_, err := GetLatest("ZZ")
	require.Error(t, err)
}

func TestListIncludesFixtureKey(t *testing.T) {
	keys := List()
	require.Contains(t, keys, RegistryKey{Region: "IN", Version: "2024-Q4"})
}

func TestBundleEquityReturnExceedsDebtReturn(t *testing.T) {
	b, err := Get("IN", "2024-Q4")
	require.NoError(t, err)
	equity := b.Assets["equity_index"]
	debt := b.Assets["debt_index"]
	require.Greater(t, equity.Nominal.Mean(), debt.Nominal.Mean())
}

func TestBundleCorrelationIsSymmetricAndOrderIndependent(t *testing.T) {
	b, err := Get("IN", "2024-Q4")
	require.NoError(t, err)
	require.Equal(t,
		b.Correlation("equity_index", "debt_index"),
		b.Correlation("debt_index", "equity_index"),
	)
	require.Equal(t, 1.0, b.Correlation("equity_index", "equity_index"))
}
