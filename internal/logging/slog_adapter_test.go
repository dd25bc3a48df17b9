// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newSlogFrom(h *SlogHandler) *slog.Logger {
	return slog.New(h)
}

func TestSlogHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := &SlogHandler{logger: NewTestLogger(&buf)}
	logger := slog.New(h.WithGroup("supervisor"))
	logger.Info("event", "service", "api")

	if !strings.Contains(buf.String(), `"supervisor.service":"api"`) {
		t.Errorf("expected grouped key, got: %s", buf.String())
	}
}
