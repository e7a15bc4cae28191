package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
)

// appInfoService answers the build info screen of the client.
type appInfoService struct {
	version string
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version. Surrounding blanks are dropped so a version read from a file with
// a trailing newline still renders on one line.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("list server build")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
