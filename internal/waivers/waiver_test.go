// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package waivers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempWaiversFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "waivers.yaml")
}

func TestNewManager_MissingFileYieldsEmptyRuleSet(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	assert.Empty(t, m.ListWaivers())
	assert.False(t, m.IsWaived("NECHE", "workload"))
}

func TestNewManager_CorruptFileYieldsEmptyRuleSet(t *testing.T) {
	path := tempWaiversFile(t)
	require.NoError(t, os.WriteFile(path, []byte("rules: [not: valid: yaml"), 0600))

	m := NewManager(path)
	assert.Empty(t, m.ListWaivers())
}

func TestAddWaiver_RoundTrip(t *testing.T) {
	path := tempWaiversFile(t)
	m := NewManager(path)

	require.NoError(t, m.AddWaiver("NECHE", "workload", "lab course, hours stated in schedule", "registrar", nil))
	assert.True(t, m.IsWaived("NECHE", "workload"))

	// A fresh manager re-reads the file.
	reloaded := NewManager(path)
	rules := reloaded.ListWaivers()
	require.Len(t, rules, 1)
	assert.Equal(t, "WVR-00000001", rules[0].ID)
	assert.Equal(t, "NECHE", rules[0].Regime)
	assert.Equal(t, "workload", rules[0].Field)
	assert.Equal(t, "registrar", rules[0].CreatedBy)
	assert.True(t, rules[0].Enabled)
	assert.True(t, reloaded.IsWaived("NECHE", "workload"))
}

func TestAddWaiver_DefaultExpiryIs90Days(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	require.NoError(t, m.AddWaiver("NECHE", "workload", "reason", "", nil))

	rules := m.ListWaivers()
	require.Len(t, rules, 1)
	require.NotNil(t, rules[0].ExpiresAt)
	expected := time.Now().AddDate(0, 0, 90)
	assert.WithinDuration(t, expected, *rules[0].ExpiresAt, time.Minute)
}

func TestAddWaiver_DuplicatePairRejected(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	require.NoError(t, m.AddWaiver("NECHE", "workload", "first", "", nil))

	err := m.AddWaiver("NECHE", "workload", "second", "", nil)
	assert.Error(t, err)
	assert.Len(t, m.ListWaivers(), 1)
}

func TestAddWaiver_IDsIncrement(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	require.NoError(t, m.AddWaiver("NECHE", "workload", "r", "", nil))
	require.NoError(t, m.AddWaiver("NECHE", "late_policy", "r", "", nil))

	rules := m.ListWaivers()
	require.Len(t, rules, 2)
	assert.Equal(t, "WVR-00000001", rules[0].ID)
	assert.Equal(t, "WVR-00000002", rules[1].ID)
}

func TestIsWaived_ScopedToRegimeAndField(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	require.NoError(t, m.AddWaiver("NECHE", "workload", "r", "", nil))

	assert.True(t, m.IsWaived("NECHE", "workload"))
	assert.False(t, m.IsWaived("UNH-Minimal", "workload"))
	assert.False(t, m.IsWaived("NECHE", "late_policy"))
}

func TestIsWaived_ExpiredRuleIgnored(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	past := time.Now().AddDate(0, 0, -1)
	require.NoError(t, m.AddWaiver("NECHE", "workload", "r", "", &past))

	assert.False(t, m.IsWaived("NECHE", "workload"))
	assert.Len(t, m.ListWaivers(), 1, "expired rules still list until cleanup")
}

func TestIsWaived_DisabledManagerWaivesNothing(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	require.NoError(t, m.AddWaiver("NECHE", "workload", "r", "", nil))

	m.SetEnabled(false)
	assert.False(t, m.IsWaived("NECHE", "workload"))
	m.SetEnabled(true)
	assert.True(t, m.IsWaived("NECHE", "workload"))
}

func TestRemoveWaiver(t *testing.T) {
	m := NewManager(tempWaiversFile(t))
	require.NoError(t, m.AddWaiver("NECHE", "workload", "r", "", nil))

	require.NoError(t, m.RemoveWaiver("WVR-00000001"))
	assert.Empty(t, m.ListWaivers())
	assert.False(t, m.IsWaived("NECHE", "workload"))

	assert.Error(t, m.RemoveWaiver("WVR-00000099"))
}

func TestCleanupExpired(t *testing.T) {
	path := tempWaiversFile(t)
	m := NewManager(path)
	past := time.Now().AddDate(0, 0, -1)
	require.NoError(t, m.AddWaiver("NECHE", "workload", "r", "", &past))
	require.NoError(t, m.AddWaiver("NECHE", "late_policy", "r", "", nil))

	assert.Equal(t, 1, m.CleanupExpired())
	rules := m.ListWaivers()
	require.Len(t, rules, 1)
	assert.Equal(t, "late_policy", rules[0].Field)

	// Cleanup persisted.
	assert.Len(t, NewManager(path).ListWaivers(), 1)
	assert.Equal(t, 0, m.CleanupExpired())
}
