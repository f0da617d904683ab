// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package instructor

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
	"sync"
)

// Embedded common-surname list used as the last-resort name signal. Loaded
// once and shared by reference; never re-read per call.
//
//go:embed data/last_names.txt
var lastNamesData []byte

var (
	lastNames map[string]bool
	loadOnce  sync.Once
)

// loadLastNames parses the embedded list into a lowercase lookup set.
func loadLastNames() map[string]bool {
	loadOnce.Do(func() {
		lastNames = make(map[string]bool, 320)
		scanner := bufio.NewScanner(bytes.NewReader(lastNamesData))
		for scanner.Scan() {
			name := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if name != "" && !strings.HasPrefix(name, "#") {
				lastNames[name] = true
			}
		}
	})
	return lastNames
}
