// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package waivers manages approved exceptions to compliance requirements. A
// waiver excuses one required field under one regime, with an optional
// expiry, so a known-acceptable gap does not fail every report.
package waivers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"syllabus-scan/internal/paths"

	"gopkg.in/yaml.v3"
)

// WaiverRule excuses one regime+field pair.
type WaiverRule struct {
	ID        string     `yaml:"id"`
	Regime    string     `yaml:"regime"`
	Field     string     `yaml:"field"`
	Reason    string     `yaml:"reason"`
	Enabled   bool       `yaml:"enabled"`
	CreatedBy string     `yaml:"created_by,omitempty"`
	CreatedAt time.Time  `yaml:"created_at"`
	ExpiresAt *time.Time `yaml:"expires_at,omitempty"`
}

// WaiverConfig is the waiver configuration file.
type WaiverConfig struct {
	Version string       `yaml:"version"`
	Rules   []WaiverRule `yaml:"rules"`
}

// Manager loads waiver rules and answers compliance waiver checks. It
// implements compliance.WaiverChecker.
type Manager struct {
	configPath string
	config     *WaiverConfig
	enabled    bool
}

// NewManager creates a waiver manager. An empty configPath falls back to the
// default waivers file; a missing or unreadable file yields an empty rule
// set, not an error.
func NewManager(configPath string) *Manager {
	if configPath == "" {
		configPath = paths.GetWaiversFile()
	}
	m := &Manager{configPath: configPath, enabled: true}
	m.loadConfig()
	return m
}

func (m *Manager) loadConfig() {
	empty := &WaiverConfig{Version: "1.0", Rules: []WaiverRule{}}

	data, err := os.ReadFile(filepath.Clean(m.configPath))
	if err != nil {
		m.config = empty
		return
	}
	var config WaiverConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		m.config = empty
		return
	}
	m.config = &config
}

// IsWaived reports whether an active, unexpired rule covers the regime+field
// pair.
func (m *Manager) IsWaived(regime, field string) bool {
	if !m.enabled || m.config == nil {
		return false
	}
	for _, rule := range m.config.Rules {
		if rule.Regime != regime || rule.Field != field {
			continue
		}
		if !rule.Enabled {
			continue
		}
		if rule.ExpiresAt != nil && time.Now().After(*rule.ExpiresAt) {
			continue
		}
		return true
	}
	return false
}

// AddWaiver adds a rule for a regime+field pair. Duplicate pairs are
// rejected. A nil expiry defaults to 90 days.
func (m *Manager) AddWaiver(regime, field, reason, createdBy string, expiresAt *time.Time) error {
	if m.config == nil {
		m.config = &WaiverConfig{Version: "1.0", Rules: []WaiverRule{}}
	}

	for _, rule := range m.config.Rules {
		if rule.Regime == regime && rule.Field == field {
			return fmt.Errorf("waiver already exists for %s/%s", regime, field)
		}
	}

	maxID := 0
	for _, rule := range m.config.Rules {
		var num int
		if _, err := fmt.Sscanf(rule.ID, "WVR-%08d", &num); err == nil && num > maxID {
			maxID = num
		}
	}

	if expiresAt == nil {
		defaultExpiry := time.Now().AddDate(0, 0, 90)
		expiresAt = &defaultExpiry
	}

	m.config.Rules = append(m.config.Rules, WaiverRule{
		ID:        fmt.Sprintf("WVR-%08d", maxID+1),
		Regime:    regime,
		Field:     field,
		Reason:    reason,
		Enabled:   true,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	})
	return m.saveConfig()
}

// RemoveWaiver removes a rule by ID.
func (m *Manager) RemoveWaiver(id string) error {
	if m.config == nil {
		return fmt.Errorf("no waiver config loaded")
	}
	for i, rule := range m.config.Rules {
		if rule.ID == id {
			m.config.Rules = append(m.config.Rules[:i], m.config.Rules[i+1:]...)
			return m.saveConfig()
		}
	}
	return fmt.Errorf("waiver rule with ID %s not found", id)
}

// ListWaivers returns all rules, including disabled and expired ones.
func (m *Manager) ListWaivers() []WaiverRule {
	if m.config == nil {
		return []WaiverRule{}
	}
	return m.config.Rules
}

// CleanupExpired drops expired rules and returns how many were removed.
func (m *Manager) CleanupExpired() int {
	if m.config == nil {
		return 0
	}

	now := time.Now()
	var active []WaiverRule
	for _, rule := range m.config.Rules {
		if rule.ExpiresAt == nil || now.Before(*rule.ExpiresAt) {
			active = append(active, rule)
		}
	}

	removed := len(m.config.Rules) - len(active)
	m.config.Rules = active
	if removed > 0 {
		m.saveConfig()
	}
	return removed
}

// SetEnabled enables or disables all waiver checks.
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// GetConfigPath returns the path to the waiver config file.
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

func (m *Manager) saveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal waiver config: %w", err)
	}

	dir := filepath.Dir(m.configPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write waiver config: %w", err)
	}
	return nil
}
