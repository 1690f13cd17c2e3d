/*
 * logger_test.go, part of trajplot.
 *
 * Copyright 2026 The trajplot authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTo(Te *testing.T) {
	var buf bytes.Buffer
	logger, err := NewTo(&buf, "trajplot", "DEBUG")
	require.NoError(Te, err)
	assert.Equal(Te, zerolog.DebugLevel, logger.GetLevel())
	logger.Debug().Str("file", "a.dat").Msg("parsed")
	out := buf.String()
	assert.Contains(Te, out, "parsed")
	assert.Contains(Te, out, "app=")
	assert.Contains(Te, out, "trajplot")
	assert.Contains(Te, out, "a.dat")
}

func TestNewLevels(Te *testing.T) {
	var buf bytes.Buffer
	logger, err := NewTo(&buf, "trajsim", "warn")
	require.NoError(Te, err)
	logger.Info().Msg("hidden")
	assert.Empty(Te, buf.String())

	logger, err = NewTo(&buf, "trajsim", "loud")
	assert.Error(Te, err)
	assert.Equal(Te, zerolog.InfoLevel, logger.GetLevel())

	logger, err = NewTo(&buf, "trajsim", "")
	require.NoError(Te, err)
	assert.Equal(Te, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew(Te *testing.T) {
	logger, err := New("trajplot", "error")
	require.NoError(Te, err)
	assert.Equal(Te, zerolog.ErrorLevel, logger.GetLevel())
}
