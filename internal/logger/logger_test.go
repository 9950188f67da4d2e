/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"bennypowers.dev/bruecke/internal/logger"
)

func TestLogger(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	logger.Info("Build started...")
	logger.Warn("file %s skipped", "a.json")
	logger.Error("broken")
	logger.Debug("hidden")
	logger.SetDebug(true)
	logger.Debug("shown")
	logger.SetDebug(false)

	assert.Equal(t, "Build started...\nwarning: file a.json skipped\nerror: broken\nshown\n", buf.String())

	logger.SetOutput(io.Discard)
	logger.Info("nothing")
}
