package util

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// tailSize is how much of the end of a file the fingerprint hashes.
const tailSize = 2048

// Fingerprint summarises a file version: its stat identity plus a CRC32 of
// its tail. Two equal fingerprints mean the file is very likely unchanged.
type Fingerprint struct {
	Info FileInfo
	Tail string
}

// CalculateFileFingerprint calculates the CRC32 of the last 2KB of a file
func CalculateFileFingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", err
	}

	readSize := int64(tailSize)
	if stat.Size() < readSize {
		readSize = stat.Size()
	}
	if _, err := file.Seek(-readSize, io.SeekEnd); err != nil {
		return "", err
	}

	data := make([]byte, readSize)
	if _, err := io.ReadFull(file, data); err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE(data)), nil
}

// FingerprintFile returns the fingerprint of path.
func FingerprintFile(path string) (Fingerprint, error) {
	info, err := GetFileInfo(path)
	if err != nil {
		return Fingerprint{}, err
	}
	tail, err := CalculateFileFingerprint(path)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{Info: *info, Tail: tail}, nil
}
