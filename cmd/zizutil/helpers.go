package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"zizutil/internal/config"
	"zizutil/internal/jsonconfig"
)

// readDocumentFile decodes a JSON object supplied by the user. Unlike a
// persisted config, a malformed input file is an error.
func readDocumentFile(path string) (*jsonconfig.Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("document path is required")
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", expanded, err)
	}
	doc, err := jsonconfig.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", expanded, err)
	}
	return doc, nil
}
