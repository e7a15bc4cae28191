// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/eat-that-list/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	data := fmt.Sprintf("Название приложения: EatThatList\nВерсия: %s\nДата: %s\nКоммит: %s\n\nВерсия сервера: %s",
		valueOrDash(info.BuildVersion()), valueOrDash(info.BuildDate()), valueOrDash(info.BuildCommit()),
		valueOrDash(serverVersion))

	return renderPage(titleStyle.Render("О программе"), data, "esc / v назад")
}
