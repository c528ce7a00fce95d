// Package keystore resolves the process-wide token signing key.
package keystore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source tells where the signing key came from.
type Source string

const (
	SourceEnv       Source = "env"
	SourceFile      Source = "file"
	SourceGenerated Source = "generated"
)

const generatedKeyBytes = 32

// Load returns the signing key. A non-empty envValue wins; otherwise the
// trimmed contents of path are used; otherwise a random key is generated and
// written to path with mode 0600. The key is never logged.
func Load(envValue, path string) ([]byte, Source, error) {
	if v := strings.TrimSpace(envValue); v != "" {
		return []byte(v), SourceEnv, nil
	}
	if path == "" {
		return nil, "", errors.New("keystore: no signing key configured")
	}

	key, err := readKeyFile(path)
	if err == nil {
		return key, SourceFile, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, "", err
	}

	key, err = generate(path)
	if errors.Is(err, fs.ErrExist) {
		// Another process created the file first.
		key, err = readKeyFile(path)
		if err != nil {
			return nil, "", err
		}
		return key, SourceFile, nil
	}
	if err != nil {
		return nil, "", err
	}
	return key, SourceGenerated, nil
}

func readKeyFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keystore: read %s: %w", path, err)
	}
	key := strings.TrimSpace(string(raw))
	if key == "" {
		return nil, fmt.Errorf("keystore: %s is empty", path)
	}
	return []byte(key), nil
}

func generate(path string) ([]byte, error) {
	buf := make([]byte, generatedKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("keystore: generate key: %w", err)
	}
	key := hex.EncodeToString(buf)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("keystore: create %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("keystore: create %s: %w", path, err)
	}
	if _, err := f.WriteString(key); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("keystore: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("keystore: close %s: %w", path, err)
	}
	return []byte(key), nil
}
