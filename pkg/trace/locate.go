package trace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Yessminech/Bachelor-Thesis/pkg/common"
)

// ResolveInput returns path unchanged when it names a file. For a directory
// it picks the most recently modified ptp_offset_history*.csv, which is what
// the camera GUI leaves behind in output/offset after each session.
func ResolveInput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "locating offset history")
	}
	if !info.IsDir() {
		return path, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", errors.Wrapf(err, "listing %s", path)
	}

	var (
		latest     string
		latestInfo os.FileInfo
	)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isTraceFile(name) {
			continue
		}

		fi, err := entry.Info()
		if err != nil {
			log.Warnf("Skipping %s: %v", name, err)
			continue
		}

		if latestInfo == nil || newer(fi, latestInfo) {
			latest, latestInfo = name, fi
		}
	}

	if latestInfo == nil {
		return "", errors.Wrapf(os.ErrNotExist, "no %s*%s in %s", common.TraceFilePrefix, common.TraceFileExt, path)
	}

	resolved := filepath.Join(path, latest)
	log.Infof("Using most recent offset history %s", resolved)

	return resolved, nil
}

func isTraceFile(name string) bool {
	return strings.HasPrefix(name, common.TraceFilePrefix) && strings.HasSuffix(name, common.TraceFileExt)
}

// Equal timestamps fall back to the name; the timestamped names sort in
// chronological order.
func newer(a, b os.FileInfo) bool {
	if a.ModTime().Equal(b.ModTime()) {
		return a.Name() > b.Name()
	}
	return a.ModTime().After(b.ModTime())
}
