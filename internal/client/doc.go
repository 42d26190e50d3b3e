// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It resumes a stored session, wires the watering watcher into the
// terminal UI and keeps the background workers tied to the process
// lifecycle.
package client
