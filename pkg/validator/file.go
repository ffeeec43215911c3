package validator

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MsgFileTypeNotAllowed = "File type is not allowed. Allowed types: %s"
	MsgFileTooLarge       = "File size exceeds the maximum allowed size of %s"
	MsgFileSizeInvalid    = "File size is invalid"
)

// FileInfo describes an upload as reported by the client or detected from content.
type FileInfo struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// ValidateFile checks f against AllowedFileTypes and MaxFileSize.
func ValidateFile(f FileInfo) Result {
	return ValidateFileWith(f, AllowedFileTypes(), MaxFileSize)
}

// ValidateFileWith checks the type first, then the size, so a wrong type is
// reported even for an oversized file.
func ValidateFileWith(f FileInfo, allowed []string, maxSize int64) Result {
	if !slices.Contains(allowed, baseMIMEType(f.MIMEType)) {
		return fail(fmt.Sprintf(MsgFileTypeNotAllowed, describeTypes(allowed)))
	}
	if f.Size < 0 {
		return fail(MsgFileSizeInvalid)
	}
	if f.Size > maxSize {
		return fail(fmt.Sprintf(MsgFileTooLarge, formatSize(maxSize)))
	}
	return ok()
}

// DetectFile builds a FileInfo whose MIME type comes from the content of r
// rather than from what the client claimed.
func DetectFile(name string, r io.Reader, size int64) (FileInfo, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return FileInfo{}, errors.Join(ErrFileUnreadable, err)
	}
	return FileInfo{
		Name:     name,
		MIMEType: baseMIMEType(mt.String()),
		Size:     size,
	}, nil
}

// FileFromHeader sniffs a multipart upload.
// For streamed uploads fh.Size may be 0; storage must still enforce the limit while copying.
func FileFromHeader(fh *multipart.FileHeader) (FileInfo, error) {
	if fh == nil {
		return FileInfo{}, ErrNilFileHeader
	}
	f, err := fh.Open()
	if err != nil {
		return FileInfo{}, errors.Join(ErrFileUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	return DetectFile(fh.Filename, f, fh.Size)
}

// baseMIMEType drops parameters ("text/plain; charset=utf-8" -> "text/plain") and lower-cases.
func baseMIMEType(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func describeTypes(types []string) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		if n, ok := fileTypeNames[t]; ok {
			names = append(names, n)
			continue
		}
		names = append(names, t)
	}
	return strings.Join(names, ", ")
}

func formatSize(n int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	switch {
	case n >= mib && n%mib == 0:
		return fmt.Sprintf("%d MB", n/mib)
	case n >= kib && n%kib == 0:
		return fmt.Sprintf("%d KB", n/kib)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
