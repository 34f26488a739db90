package handler

import (
	"github.com/philipp01105/logbridge/core"
	"k8s.io/klog/v2"
)

// klogDebugVerbosity is the -v level bridged debug messages need.
const klogDebugVerbosity = 4

// KlogHandler writes entries through the global klog logger
type KlogHandler struct{}

// NewKlogHandler creates a handler that logs through klog
func NewKlogHandler() *KlogHandler {
	return &KlogHandler{}
}

// Handle writes the entry as a structured klog line
func (h *KlogHandler) Handle(entry *core.Entry) error {
	kv := []interface{}{"source", entry.Source}
	if entry.Truncated {
		kv = append(kv, "truncated", true)
	}

	switch entry.Level {
	case core.DebugLevel:
		if klog.V(klogDebugVerbosity).Enabled() {
			klog.InfoSDepth(1, entry.Message, kv...)
		}
	case core.WarnLevel:
		// klog has no structured warning call
		klog.WarningDepth(1, entry.Source+": "+entry.Message)
	case core.ErrorLevel:
		klog.ErrorSDepth(1, nil, entry.Message, kv...)
	default:
		klog.InfoSDepth(1, entry.Message, kv...)
	}
	return nil
}

// Close flushes klog's buffers
func (h *KlogHandler) Close() error {
	klog.Flush()
	return nil
}
