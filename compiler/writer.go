package compiler

import (
	"fmt"
	"sync"
)

// ModuleWriter abstracts persisting an analyzed module's dependency record
// and serialized AST as a capability interface, rather than hard-wiring a
// filesystem. An analyzer.Analyzer with a nil Writer still analyzes forms
// fine; its Writer's WriteModule is called once per analyzed fn* in
// compiling mode. Runtime's own Writer field is not consulted by the
// analyzer.
type ModuleWriter interface {
	// WriteModule persists the given namespace's compiled artifact (opaque
	// bytes, produced by whatever downstream code-generator the caller
	// plugs in) along with the namespaces it depends on.
	WriteModule(namespace string, deps []string, artifact []byte) error
}

// MemoryModuleWriter is an in-process ModuleWriter. It is most useful for
// tests and for single-process tooling (the jankc CLI's "analyze"
// subcommand, for instance, never needs real persistence).
type MemoryModuleWriter struct {
	mu      sync.Mutex
	modules map[string]memoryModule
}

type memoryModule struct {
	deps     []string
	artifact []byte
}

// NewMemoryModuleWriter returns an empty MemoryModuleWriter.
func NewMemoryModuleWriter() *MemoryModuleWriter {
	return &MemoryModuleWriter{modules: make(map[string]memoryModule)}
}

func (w *MemoryModuleWriter) WriteModule(namespace string, deps []string, artifact []byte) error {
	if namespace == "" {
		return fmt.Errorf("write-module: empty namespace")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.modules[namespace] = memoryModule{deps: append([]string(nil), deps...), artifact: artifact}
	return nil
}

// Dependencies returns the dependency list last recorded for namespace, or
// nil if WriteModule has never been called for it.
func (w *MemoryModuleWriter) Dependencies(namespace string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, ok := w.modules[namespace]
	if !ok {
		return nil
	}
	return append([]string(nil), m.deps...)
}

// Artifact returns the bytes last recorded for namespace.
func (w *MemoryModuleWriter) Artifact(namespace string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, ok := w.modules[namespace]
	if !ok {
		return nil, false
	}
	return m.artifact, true
}
