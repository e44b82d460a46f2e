package entity

// ParentDirName is the display name of the synthetic parent entry.
const ParentDirName = ".."

// DirEntry is one row of a directory listing.
type DirEntry struct {
	// Name is the base name shown to the user
	Name string
	// Path is the absolute path the entry refers to; for the parent marker it is the parent directory
	Path string
	// IsDir is true for directories and for the parent marker
	IsDir bool
	// IsParent marks the synthetic ".." entry
	IsParent bool
}
