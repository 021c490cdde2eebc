package splice

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/logfields"
)

// Inserter patches a target page with a preview block.
type Inserter struct {
	Class  string
	Now    func() time.Time
	Logger *slog.Logger
}

// BackupName is the backup file name for a splice performed at t:
// index.<first seven digits of the unix time>.html.
func BackupName(t time.Time) string {
	secs := strconv.FormatInt(t.Unix(), 10)
	if len(secs) > 7 {
		secs = secs[:7]
	}
	return "index." + secs + ".html"
}

// InsertPreview copies target into backupDir, then replaces the contents
// of its marker element with block. It returns the backup path.
func (in *Inserter) InsertPreview(target, backupDir, block string) (string, error) {
	logger := in.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if in.Now != nil {
		now = in.Now
	}

	// #nosec G304 -- target is the configured preview page.
	data, err := os.ReadFile(target)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot read preview target").
			Fatal().WithContext("path", target).Build()
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot stat preview target").
			Fatal().WithContext("path", target).Build()
	}

	backup := filepath.Join(backupDir, BackupName(now()))
	if err := os.MkdirAll(backupDir, 0o750); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot create backup directory").
			Fatal().WithContext("path", backupDir).Build()
	}
	if err := os.WriteFile(backup, data, 0o600); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot write backup").
			Fatal().WithContext("path", backup).Build()
	}
	logger.Debug("Backed up preview target", logfields.Path(backup))

	page := string(data)
	region, err := FindRegion(page, in.Class)
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return "", ce.WithContext("path", target)
		}
		return "", err
	}

	if err := os.WriteFile(target, []byte(Splice(page, region, block)), info.Mode().Perm()); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "cannot write preview target").
			Fatal().WithContext("path", target).Build()
	}
	logger.Info("Inserted preview", logfields.Path(target), logfields.Class(in.Class),
		slog.Int("start_line", region.Start), slog.Int("end_line", region.End))
	return backup, nil
}
