package config

const (
	// MaxUploadBytes is the maximum size of a single uploaded document.
	// 50 MiB comfortably covers every office file the converter is
	// expected to see; larger uploads are rejected before any work
	// happens so they cannot hold a conversion slot.
	MaxUploadBytes = 50 << 20

	// MaxMultipartMemory is the in-memory budget for parsing multipart
	// request bodies. Parts beyond this spill to disk, which is fine
	// because uploads are spooled to a scratch file anyway.
	MaxMultipartMemory = 10 << 20

	// PreviewCharLimit is the number of characters (runes, not bytes)
	// shown in the inline preview. The full document is only available
	// through the download endpoint.
	PreviewCharLimit = 2000

	// MaxVideoURLLength bounds the video URL form field. Real watch
	// URLs are far shorter; longer values indicate garbage input.
	MaxVideoURLLength = 2048

	// MaxFilenameLength is the maximum length for uploaded file names.
	// Limited to 255 to match common filesystem limits and provide
	// reasonable UX (names should be short and descriptive).
	MaxFilenameLength = 255

	// MaxLogFiles is how many timestamped log files are kept when
	// file logging is enabled via LOG_DIR.
	MaxLogFiles = 5
)
