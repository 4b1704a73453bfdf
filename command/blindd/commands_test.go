// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefines(t *testing.T) {
	variables, err := parseDefines([]string{"rate=250", " chain = local ", "empty="})
	assert.Nil(t, err)
	assert.Equal(t, map[string]string{"rate": "250", "chain": "local", "empty": ""}, variables)

	for _, d := range []string{"novalue", "=1"} {
		_, err := parseDefines([]string{d})
		assert.NotNil(t, err, d)
	}
}

func TestSetupCommands(t *testing.T) {
	assert.True(t, processSetupCommand("blindd", nil))
	assert.True(t, processSetupCommand("blindd", []string{"version"}))
	assert.False(t, processSetupCommand("blindd", []string{"genesis"}))
	assert.False(t, processConfigCommand([]string{"genesis"}, nil))
}
