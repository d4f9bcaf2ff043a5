// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package zap

import (
	"strings"
	"testing"

	"github.com/pion/minisdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFactory(zap.New(core)).NewLogger("scope")

	log.Trace("trace")
	log.Debugf("debug %d", 1)
	log.Info("info")
	log.Warnf("warn %s", "x")
	log.Error("error")

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	for i, want := range []struct {
		level zapcore.Level
		msg   string
	}{
		{zapcore.DebugLevel, "trace"},
		{zapcore.DebugLevel, "debug 1"},
		{zapcore.InfoLevel, "info"},
		{zapcore.WarnLevel, "warn x"},
		{zapcore.ErrorLevel, "error"},
	} {
		assert.Equal(t, want.level, entries[i].Level)
		assert.Equal(t, want.msg, entries[i].Message)
		assert.Equal(t, "scope", entries[i].LoggerName)
	}
}

func TestAPILogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	s := minisdp.SettingEngine{LoggerFactory: NewLoggerFactory(zap.New(core))}
	api := minisdp.NewAPI(minisdp.WithSettingEngine(s))

	var m minisdp.Message
	_, err := api.Unpack([]byte{0xFF, 'S', 'D', 'P'}, &m)
	require.ErrorIs(t, err, minisdp.ErrPacketTooShort)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "minisdp", entries[0].LoggerName)
	assert.True(t, strings.HasPrefix(entries[0].Message, minisdp.OpUnpack))
}
