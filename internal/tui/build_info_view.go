// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/riegum-client/models"
)

// renderBuildInfoWindow is the "about" overlay of the home page.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Aplicación", "Riegum, seguimiento de riego"},
		{"Versión", info.BuildVersion()},
		{"Fecha", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	body := ""
	for i, r := range rows {
		if i > 0 {
			body += "\n"
		}
		body += fmt.Sprintf("%-11s│ %s", r[0], r[1])
	}

	return overlayBoxStyle.Render(renderPage("ACERCA DE", body, "esc: volver"))
}
