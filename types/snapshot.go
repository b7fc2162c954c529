package types

import "fmt"

// ArchiveFormat is the container/compression format of a snapshot archive.
type ArchiveFormat int

const (
	// TarZstd is the default archive format.
	TarZstd ArchiveFormat = iota
	TarGzip
	TarBzip2
	Tar
)

var archiveExtensions = map[ArchiveFormat]string{
	TarZstd:  ".tar.zst",
	TarGzip:  ".tar.gz",
	TarBzip2: ".tar.bz2",
	Tar:      ".tar",
}

func (f ArchiveFormat) String() string {
	switch f {
	case TarZstd:
		return "tar.zst"
	case TarGzip:
		return "tar.gz"
	case TarBzip2:
		return "tar.bz2"
	case Tar:
		return "tar"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used for archives of this format,
// leading dot included.
func (f ArchiveFormat) Extension() string {
	ext, ok := archiveExtensions[f]
	if !ok {
		return ""
	}
	return ext
}

// ArchiveFormatFromExtension maps an archive file extension (leading dot
// included) back to its format.
func ArchiveFormatFromExtension(ext string) (ArchiveFormat, error) {
	for f, e := range archiveExtensions {
		if e == ext {
			return f, nil
		}
	}
	return Tar, fmt.Errorf("%w: %s", ErrUnknownArchiveFormat, ext)
}

// UnmarshalText lets the format be specified as a string in the toml
// configuration, e.g. Format = "tar.zst".
func (f *ArchiveFormat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "tar.zst":
		*f = TarZstd
	case "tar.gz":
		*f = TarGzip
	case "tar.bz2":
		*f = TarBzip2
	case "tar":
		*f = Tar
	default:
		return fmt.Errorf("%w: %s", ErrUnknownArchiveFormat, string(text))
	}
	return nil
}

func (f ArchiveFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ArchiveDescriptor is the claim a discovered snapshot archive makes about
// its own identity. The claim comes from file metadata only and is
// untrusted until the decoded content reproduces the same slot and hash.
type ArchiveDescriptor struct {
	// Path is the location of the archive file on disk.
	Path string
	// Slot the archive claims to capture.
	Slot Slot
	// Hash is the accounts hash the archive claims to decode to.
	Hash Hash
	// Format of the archive container.
	Format ArchiveFormat
}

func (d ArchiveDescriptor) String() string {
	return fmt.Sprintf("%s (slot %d, hash %s, %s)", d.Path, d.Slot, d.Hash.String(), d.Format.String())
}

// SnapshotConfig configures where snapshot archives live on disk. A nil
// SnapshotConfig means snapshots are disabled and the node always replays
// from genesis.
type SnapshotConfig struct {
	// StagingPath is scratch space used while decoding or producing
	// archives. It is wiped and recreated on every bootstrap attempt and
	// must never be trusted to hold valid state across restarts.
	StagingPath string
	// ArchiveOutputPath is the directory snapshot archives are discovered
	// in and written to.
	ArchiveOutputPath string
	// Format used when producing new archives.
	Format ArchiveFormat
}
