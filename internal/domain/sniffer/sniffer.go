package sniffer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Classification methods
const (
	MethodExtension = "extension"
	MethodMagic     = "magic"
	MethodNone      = "none"
)

// Sniffer classifies files into platforms
type Sniffer struct {
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// New creates a sniffer; logger and metrics are optional
func New(logger *zap.Logger, metrics *monitoring.Metrics) *Sniffer {
	return &Sniffer{
		logger:  logging.Component(logger, "sniffer"),
		metrics: metrics,
	}
}

// Details describes how a path was classified
type Details struct {
	Path      string         `json:"path"`
	Extension string         `json:"extension,omitempty"`
	Platform  types.Platform `json:"platform"`
	Method    string         `json:"method"`
	Format    string         `json:"format,omitempty"`
	MIME      string         `json:"mime,omitempty"`
}

// Classify returns the platform of path. A recognized extension decides
// without touching the file; otherwise the first four bytes are sniffed.
func (s *Sniffer) Classify(path string) types.Platform {
	platform, method, _ := s.classify(path)
	s.observe(path, platform, method)
	return platform
}

// Inspect classifies path and, when the bytes had to be read, also reports
// the binary format and the detected MIME type
func (s *Sniffer) Inspect(path string) Details {
	platform, method, format := s.classify(path)
	s.observe(path, platform, method)

	d := Details{
		Path:      path,
		Extension: Ext(path),
		Platform:  platform,
		Method:    method,
		Format:    format,
	}
	if method != MethodExtension {
		if mtype, err := mimetype.DetectFile(path); err == nil {
			d.MIME = mtype.String()
		}
	}
	return d
}

// IsELF reports whether the file at path starts with the ELF magic
func IsELF(path string) bool {
	header, err := ReadMagic(path)
	if err != nil {
		return false
	}
	_, format := MatchMagic(header)
	return format == "elf"
}

// ReadMagic reads the first MagicLen bytes of a file
func ReadMagic(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, MagicLen)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, err
	}
	return header, nil
}

// Ext returns the lowercase extension of path including the dot
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(strings.TrimRight(path, `/\`)))
}

func (s *Sniffer) classify(path string) (types.Platform, string, string) {
	if p, ok := PlatformForExtension(Ext(path)); ok {
		return p, MethodExtension, ""
	}

	header, err := ReadMagic(path)
	if err != nil {
		s.logger.Debug("Magic sniff failed", zap.String("path", path), zap.Error(err))
		return types.PlatformUnknown, MethodNone, ""
	}

	platform, format := MatchMagic(header)
	if platform == types.PlatformUnknown {
		return platform, MethodNone, ""
	}
	return platform, MethodMagic, format
}

func (s *Sniffer) observe(path string, platform types.Platform, method string) {
	s.logger.Debug("Classified",
		zap.String("path", path),
		zap.String("platform", platform.String()),
		zap.String("method", method))
	if s.metrics != nil {
		s.metrics.RecordClassification(platform.String(), method)
	}
}
