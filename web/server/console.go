package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RenderLogger implements core.Logger by tagging each message with its render ID
type RenderLogger struct {
	renderID string
	logger   *log.Logger
}

// NewRenderLogger creates a logger for a specific render
func NewRenderLogger(renderID string, logger *log.Logger) core.Logger {
	return &RenderLogger{
		renderID: renderID,
		logger:   logger,
	}
}

// Printf implements core.Logger interface
func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	rl.logger.Printf("[%s] %s", rl.renderID, message)
}
