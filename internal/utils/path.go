package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver locates corpus and config files relative to the running
// binary. Servers are usually spawned by an editor with an unpredictable
// working directory, so a bare filename is tried against several roots.
type PathResolver struct {
	executablePath string
	executableDir  string
}

// NewPathResolver determines the executable location, resolving symlinks so
// installed and development layouts behave the same.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	return &PathResolver{
		executablePath: execPath,
		executableDir:  filepath.Dir(execPath),
	}, nil
}

// ResolveCorpusPath finds a corpus file. Absolute paths are taken as given;
// relative paths are tried against the working directory first and the
// executable directory second. When no candidate exists the original path is
// returned so the open error names what the user typed.
func (pr *PathResolver) ResolveCorpusPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	candidates := []string{path}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	candidates = append(candidates, filepath.Join(pr.executableDir, path))

	for _, candidate := range candidates {
		if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
			log.Debugf("Resolved corpus path: %s", candidate)
			return candidate
		}
		log.Debugf("Corpus path candidate not valid: %s", candidate)
	}
	return path
}

// GetExecutableDir returns the directory containing the executable.
func (pr *PathResolver) GetExecutableDir() string {
	return pr.executableDir
}

// GetExecutablePath returns the full path to the executable.
func (pr *PathResolver) GetExecutablePath() string {
	return pr.executablePath
}
