// Setlist Core
// Copyright (c) 2026 The Setlist Core Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Setlist Core.
//
// Setlist Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Setlist Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Setlist Core.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInstance_ConcurrentAccess verifies policy reads, setters and reloads
// can run concurrently without deadlocking.
func TestInstance_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(afero.NewMemMapFs(), testDir, BaseDefaults)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := range 10 {
		go func() {
			for j := range 100 {
				_ = cfg.ManualPolicy()
				_ = cfg.TimelinePolicy()
				_ = cfg.DebugLogging()
				cfg.SetWorkers(i + j)
				if j%25 == 0 {
					_ = cfg.Load()
				}
			}
			done <- struct{}{}
		}()
	}

	for range 10 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("concurrent access deadlocked")
		}
	}
}

// TestInstance_SaveDoesNotHoldReadLock is a regression guard: Save takes the
// write lock and must not call any accessor that takes the read lock.
func TestInstance_SaveDoesNotHoldReadLock(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(afero.NewMemMapFs(), testDir, BaseDefaults)
	require.NoError(t, err)

	done := make(chan error)
	go func() {
		done <- cfg.Save()
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Save() deadlocked")
	}
}
