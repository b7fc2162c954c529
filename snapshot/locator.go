package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/ozonechain/ozone/logging"
	"github.com/ozonechain/ozone/types"

	"github.com/dustin/go-humanize"
)

// Archive file names carry the identity claim so discovery never needs to
// decode content: snapshot-<slot>-<base58 accounts hash>.<format>.
var archiveNamePattern = regexp.MustCompile(`^snapshot-([0-9]+)-([1-9A-HJ-NP-Za-km-z]+)\.(tar(?:\.(?:zst|gz|bz2))?)$`)

// Locator discovers snapshot archives in the archive output directory and
// picks the most recent one. Selection is monotonic in slot; when two
// archives claim the same slot the one seen first in directory order wins.
type Locator struct {
	Config
	log *logging.Logger
}

// NewLocator returns a locator over snapshot archive directories.
func NewLocator(log *logging.Logger, cfg Config) *Locator {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Locator{
		Config: cfg,
		log:    log,
	}
}

// ArchiveName renders the canonical file name for an archive claiming the
// given identity.
func ArchiveName(slot types.Slot, hash types.Hash, format types.ArchiveFormat) string {
	return fmt.Sprintf("snapshot-%d-%s%s", slot, hash.String(), format.Extension())
}

// ParseArchiveName extracts the identity claim from an archive file name.
func ParseArchiveName(name string) (types.Slot, types.Hash, types.ArchiveFormat, error) {
	m := archiveNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, types.Hash{}, types.Tar, fmt.Errorf("%w: %s", types.ErrInvalidArchiveName, name)
	}
	slot, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, types.Hash{}, types.Tar, fmt.Errorf("%w: %s", types.ErrInvalidArchiveName, name)
	}
	hash, err := types.HashFromString(m[2])
	if err != nil {
		return 0, types.Hash{}, types.Tar, fmt.Errorf("%w: %s", types.ErrInvalidArchiveName, name)
	}
	format, err := types.ArchiveFormatFromExtension("." + m[3])
	if err != nil {
		return 0, types.Hash{}, types.Tar, err
	}
	return types.Slot(slot), hash, format, nil
}

// List returns the claims of every well-formed archive in the directory,
// in directory order.
func (l *Locator) List(dir string) ([]*types.ArchiveDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read archive directory %q: %w", dir, err)
	}
	descriptors := make([]*types.ArchiveDescriptor, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		slot, hash, format, err := ParseArchiveName(entry.Name())
		if err != nil {
			if l.log.IsDebug() {
				l.log.Debug("Ignoring file with no archive claim",
					logging.String("file", entry.Name()),
				)
			}
			continue
		}
		descriptors = append(descriptors, &types.ArchiveDescriptor{
			Path:   filepath.Join(dir, entry.Name()),
			Slot:   slot,
			Hash:   hash,
			Format: format,
		})
	}
	return descriptors, nil
}

// HighestArchive returns the archive claiming the highest slot under dir,
// or types.ErrNoSnapshotArchive when the directory holds none. The claim
// is untrusted; verification happens after decode.
func (l *Locator) HighestArchive(dir string) (*types.ArchiveDescriptor, error) {
	descriptors, err := l.List(dir)
	if err != nil {
		return nil, err
	}
	var best *types.ArchiveDescriptor
	for _, d := range descriptors {
		if best == nil || d.Slot > best.Slot {
			best = d
		}
	}
	if best == nil {
		return nil, types.ErrNoSnapshotArchive
	}

	size := "unknown"
	if info, err := os.Stat(best.Path); err == nil {
		size = humanize.IBytes(uint64(info.Size()))
	}
	l.log.Info("Highest snapshot archive found",
		logging.String("archive", best.Path),
		logging.Uint64("claimed-slot", uint64(best.Slot)),
		logging.String("claimed-hash", best.Hash.String()),
		logging.String("format", best.Format.String()),
		logging.String("size", size),
	)
	return best, nil
}
