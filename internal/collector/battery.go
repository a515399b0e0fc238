package collector

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/prabalesh/battwidget/internal/models"
)

// DefaultSysfsRoot is where Linux exposes power supplies.
const DefaultSysfsRoot = "/sys/class/power_supply"

// SysfsSource reads the first BAT* power supply under Root.
type SysfsSource struct {
	Root     string
	Interval time.Duration
}

func NewSysfsSource(root string, interval time.Duration) *SysfsSource {
	if root == "" {
		root = DefaultSysfsRoot
	}
	return &SysfsSource{Root: root, Interval: interval}
}

func (s *SysfsSource) Supported() bool {
	_, err := s.batteryDir()
	return err == nil
}

func (s *SysfsSource) GetBattery(ctx context.Context) (Handle, error) {
	r, err := s.read()
	if err != nil {
		return nil, err
	}
	h := NewPollingHandle(r, s.read, s.Interval)
	go h.Run(ctx)
	return h, nil
}

func (s *SysfsSource) batteryDir() (string, error) {
	// Find battery directory
	batteryDirs, err := filepath.Glob(filepath.Join(s.Root, "BAT*"))
	if err != nil {
		return "", errors.Wrapf(err, "failed to glob %s", s.Root)
	}
	if len(batteryDirs) == 0 {
		// No battery found (desktop system)
		return "", ErrNoBattery
	}
	return batteryDirs[0], nil
}

func (s *SysfsSource) read() (models.Reading, error) {
	batteryDir, err := s.batteryDir()
	if err != nil {
		return models.Reading{}, err
	}

	level, err := s.readLevel(batteryDir)
	if err != nil {
		return models.Reading{}, err
	}
	status, err := readBatteryString(filepath.Join(batteryDir, "status"))
	if err != nil {
		return models.Reading{}, err
	}

	return models.Reading{
		Level:    level,
		Charging: status == "Charging",
	}, nil
}

// readLevel prefers the capacity file and falls back to energy or charge
// counters on firmware that does not provide it.
func (s *SysfsSource) readLevel(batteryDir string) (float64, error) {
	if capacity, err := readBatteryInt(filepath.Join(batteryDir, "capacity")); err == nil {
		return clampLevel(float64(capacity) / 100), nil
	}

	for _, prefix := range []string{"energy", "charge"} {
		now, err := readBatteryInt(filepath.Join(batteryDir, prefix+"_now"))
		if err != nil {
			continue
		}
		full, err := readBatteryInt(filepath.Join(batteryDir, prefix+"_full"))
		if err != nil || full <= 0 {
			continue
		}
		return clampLevel(float64(now) / float64(full)), nil
	}

	return 0, errors.Errorf("no charge level available in %s", batteryDir)
}

func readBatteryInt(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s", path)
	}
	val, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s", path)
	}
	return val, nil
}

func readBatteryString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return strings.TrimSpace(string(content)), nil
}

func clampLevel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}
