package util

import (
	"golang.org/x/sys/unix"
)

// FileInfo identifies a version of a file on disk.
type FileInfo struct {
	ModTime int64  // modification time, nanoseconds since epoch
	Size    int64  // size in bytes
	Inode   uint64 // inode number
}

// GetFileInfo stats path.
func GetFileInfo(path string) (*FileInfo, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, err
	}

	sec, nsec := st.Mtim.Unix()
	return &FileInfo{
		ModTime: sec*1e9 + nsec,
		Size:    st.Size,
		Inode:   uint64(st.Ino),
	}, nil
}
