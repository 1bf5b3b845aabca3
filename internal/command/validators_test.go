// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	for _, valid := range []string{"text", "json", "raw", "yaml"} {
		assert.NoError(t, OutputValidator(valid))
	}
	assert.Error(t, OutputValidator("xml"))
}

func TestJammedFlagValidator(t *testing.T) {
	assert.NoError(t, JammedFlagValidator("refs.yaml"))
	assert.Error(t, JammedFlagValidator("--refs"))
}

func TestFlagValidators(t *testing.T) {
	err := FlagValidators("--oops", JammedFlagValidator)
	assert.Error(t, err)

	err = FlagValidators("json", JammedFlagValidator, OutputValidator)
	assert.NoError(t, err)
}

func TestMustBeTrueValidator(t *testing.T) {
	assert.NoError(t, MustBeTrueValidator(true))
	assert.Error(t, MustBeTrueValidator(false))
}
