package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/samvad-json-client/pkg/jsonapi"
)

// Package endpoints loads named call targets from YAML/JSON config files.

// Endpoint is a single call target declared in the endpoints file.
type Endpoint struct {
	ID               string            `json:"id" yaml:"id"`
	Name             string            `json:"name" yaml:"name"`
	Method           string            `json:"method" yaml:"method"`
	URL              string            `json:"url" yaml:"url"`
	Params           map[string]string `json:"params" yaml:"params"`
	Headers          map[string]string `json:"headers" yaml:"headers"`
	Body             map[string]any    `json:"body" yaml:"body"`
	TimeoutSeconds   float64           `json:"timeout_seconds" yaml:"timeout_seconds"`
	AllowErrorStatus bool              `json:"allow_error_status" yaml:"allow_error_status"`
}

type registryFile struct {
	Endpoints []Endpoint `json:"endpoints" yaml:"endpoints"`
}

// Registry materializes endpoint definitions loaded from a config file.
type Registry struct {
	mu        sync.RWMutex
	endpoints []Endpoint
	idx       map[string]Endpoint
}

// Load reads the endpoint registry from a YAML/JSON file.
func Load(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("endpoints file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open endpoints file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}

	fileReg, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(fileReg.Endpoints) == 0 {
		return nil, errors.New("endpoints file contains no endpoints entries")
	}

	reg := &Registry{
		endpoints: make([]Endpoint, len(fileReg.Endpoints)),
		idx:       make(map[string]Endpoint, len(fileReg.Endpoints)),
	}

	for i := range fileReg.Endpoints {
		ep := sanitizeEndpoint(fileReg.Endpoints[i])
		if err := validateEndpoint(ep); err != nil {
			return nil, fmt.Errorf("endpoints[%d]: %w", i, err)
		}
		if _, exists := reg.idx[ep.ID]; exists {
			return nil, fmt.Errorf("duplicate endpoint id %q", ep.ID)
		}
		reg.endpoints[i] = ep
		reg.idx[ep.ID] = ep
	}

	return reg, nil
}

func parseRegistry(data []byte, ext string) (registryFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		ext string
		fn  func([]byte, any) error
	}{
		{ext: ".yaml", fn: yaml.Unmarshal},
		{ext: ".yml", fn: yaml.Unmarshal},
		{ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg registryFile
		if err := d.fn(data, &reg); err == nil {
			return reg, nil
		}
	}

	return registryFile{}, errors.New("endpoints file format not recognized (expected YAML or JSON)")
}

func sanitizeEndpoint(ep Endpoint) Endpoint {
	ep.ID = strings.TrimSpace(ep.ID)
	ep.Name = strings.TrimSpace(ep.Name)
	ep.Method = strings.ToUpper(strings.TrimSpace(ep.Method))
	ep.URL = strings.TrimSpace(ep.URL)

	if ep.Method == "" {
		ep.Method = http.MethodGet
	}
	return ep
}

func validateEndpoint(ep Endpoint) error {
	if ep.ID == "" {
		return errors.New("id is required")
	}
	if ep.URL == "" {
		return fmt.Errorf("url is required for endpoint %q", ep.ID)
	}
	if ep.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative for endpoint %q", ep.ID)
	}
	return nil
}

// ByID returns the endpoint for the given id, if loaded.
func (r *Registry) ByID(id string) (Endpoint, bool) {
	if r == nil {
		return Endpoint{}, false
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return Endpoint{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	ep, ok := r.idx[id]
	return ep, ok
}

// All returns a copy of the loaded endpoints.
func (r *Registry) All() []Endpoint {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Endpoint, len(r.endpoints))
	copy(out, r.endpoints)
	return out
}

// Timeout converts timeout_seconds to a duration. Zero defers to the caller
// default.
func (ep Endpoint) Timeout() time.Duration {
	if ep.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(ep.TimeoutSeconds * float64(time.Second))
}

// Request builds the jsonapi request for this endpoint.
func (ep Endpoint) Request() jsonapi.Request {
	var body any
	if len(ep.Body) > 0 {
		body = ep.Body
	}
	return jsonapi.Request{
		Method:           ep.Method,
		URL:              ep.URL,
		Params:           ep.Params,
		Body:             body,
		Headers:          ep.Headers,
		Timeout:          ep.Timeout(),
		AllowErrorStatus: ep.AllowErrorStatus,
	}
}
