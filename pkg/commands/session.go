package commands

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/sommnus/pkg/config"
	"tableflip.dev/sommnus/pkg/logging"
)

// session is the configuration and logger shared by one command run.
type session struct {
	viper  *viper.Viper
	config *config.Config
	logger *zap.Logger
}

func loadSession() (*session, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	path := debug.LogFile
	if path == "" {
		path = cfg.LogFile
	}
	logger, err := logging.New(path)
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	logger.Debug("session loaded", zap.String("config", cfg.File))
	return &session{viper: v, config: cfg, logger: logger}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
