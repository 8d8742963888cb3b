//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetForTest restores package state so Setup() runs again instead of
// short-circuiting on the idempotency flag left by an earlier test or run.
func resetForTest() {
	initialized = false
	Settings = conf{}
	ConfFile = "./config.toml"
	LogLevel = 5
	TestLogLevel = 5
	MagicsFile = "magics.json"
}

func TestSetupAppliesConfigFileValues(t *testing.T) {
	resetForTest()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[Log]
Level = 2
TestLevel = 7

[Magics]
File = "custom-magics.json"
`), 0o644))

	ConfFile = path
	Setup()

	assert.Equal(t, 2, LogLevel)
	assert.Equal(t, 7, TestLogLevel)
	assert.Equal(t, "custom-magics.json", MagicsFile)
}

func TestSetupToleratesMissingConfigFile(t *testing.T) {
	resetForTest()

	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")
	Setup()

	assert.Equal(t, 5, LogLevel)
	assert.Equal(t, 5, TestLogLevel)
	assert.Equal(t, "magics.json", MagicsFile)
}

func TestSetupIsIdempotent(t *testing.T) {
	resetForTest()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Log]\nLevel = 3\n"), 0o644))
	ConfFile = path
	Setup()
	assert.Equal(t, 3, LogLevel)

	// A second Setup() call must not re-read the file: changing LogLevel by
	// hand and calling Setup() again should leave it untouched.
	LogLevel = 9
	Setup()
	assert.Equal(t, 9, LogLevel)
}

func TestConfStringReportsEveryField(t *testing.T) {
	resetForTest()
	Settings.Log.Level = 4
	Settings.Magics.File = "x.json"

	s := Settings.String()
	assert.Contains(t, s, "Log Config:")
	assert.Contains(t, s, "Level")
	assert.Contains(t, s, "4")
	assert.Contains(t, s, "Magics Config:")
	assert.Contains(t, s, "File")
	assert.Contains(t, s, "x.json")
}
