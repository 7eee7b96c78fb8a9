// Package site collects the local files that make up a site directory.
package site

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"
)

// ManifestName is the optional per-site configuration file. It stays local
// and is never uploaded.
const ManifestName = "reocities.yaml"

const gitignoreName = ".gitignore"

// Manifest configures how a site directory is published.
type Manifest struct {
	// Folder is the remote prefix uploads are placed under.
	Folder string `yaml:"folder,omitempty"`
	// Ignore lists gitignore-style patterns excluded from push.
	Ignore []string `yaml:"ignore,omitempty"`
}

// File is a local file selected for upload.
type File struct {
	LocalPath  string // absolute path on disk
	RemotePath string // slash-separated path on the site
	Size       int64
}

// LoadManifest reads dir's manifest. A missing file returns (nil, nil).
func LoadManifest(dir string) (*Manifest, error) {
	f, err := os.Open(filepath.Join(dir, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", ManifestName, err)
	}
	defer func() { _ = f.Close() }()

	var m Manifest
	if err := yaml.NewDecoder(f).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}
	return &m, nil
}

// Collect walks dir and returns the files a push would upload, in walk
// order. The root .gitignore, the manifest's ignore patterns, and the
// built-in exclusions (.git, the manifest itself) are applied.
func Collect(dir string) ([]File, *Manifest, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, err
	}
	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("directory %s does not exist", dir)
		}
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%s is not a directory", dir)
	}

	manifest, err := LoadManifest(absDir)
	if err != nil {
		return nil, nil, err
	}

	matcher, err := ignoreMatcher(absDir, manifest)
	if err != nil {
		return nil, nil, err
	}

	var files []File
	walkErr := filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(absDir, path)
		if err != nil {
			return err
		}
		remote := filepath.ToSlash(rel)
		if remote == ManifestName {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(remote) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, File{LocalPath: path, RemotePath: remote, Size: fi.Size()})
		return nil
	})
	if walkErr != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", dir, walkErr)
	}
	return files, manifest, nil
}

// ignoreMatcher combines the root .gitignore with the manifest's patterns.
func ignoreMatcher(dir string, manifest *Manifest) (*ignore.GitIgnore, error) {
	var patterns []string
	data, err := os.ReadFile(filepath.Join(dir, gitignoreName))
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, line)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", gitignoreName, err)
	}
	if manifest != nil {
		patterns = append(patterns, manifest.Ignore...)
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	return ignore.CompileIgnoreLines(patterns...), nil
}
