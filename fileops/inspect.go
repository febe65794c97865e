package fileops

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"

	"github.com/kchaow/filemanager"
)

// sampleSize is how much content is read for charset detection
const sampleSize = 64 * 1024

// Inspect reports size, modification time, MIME type and, for text content,
// the detected character set of the file at path.
func Inspect(path string) (filemanager.FileDetails, error) {
	info, err := os.Stat(path)
	if err != nil {
		return filemanager.FileDetails{}, fmt.Errorf("stat %s: %w", path, filemanager.OSError(err))
	}
	if info.IsDir() {
		return filemanager.FileDetails{}, fmt.Errorf("%s is a directory: %w", path, filemanager.ErrValidation)
	}

	details := filemanager.FileDetails{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return details, fmt.Errorf("detect type of %s: %w", path, filemanager.OSError(err))
	}
	details.MimeType = mtype.String()

	if !isText(mtype) || info.Size() == 0 {
		return details, nil
	}
	sample, err := readSample(path)
	if err != nil {
		return details, err
	}
	details.Charset = detectCharset(sample)
	return details, nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	s := mtype.String()
	return strings.HasPrefix(s, "text/") ||
		strings.HasPrefix(s, "application/json") ||
		strings.HasPrefix(s, "application/xml")
}

func readSample(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, filemanager.OSError(err))
	}
	defer f.Close()

	sample, err := io.ReadAll(io.LimitReader(f, sampleSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, filemanager.OSError(err))
	}
	return sample, nil
}

// detectCharset returns the most likely charset of data, or "UTF-8" when the
// detector has no answer
func detectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return "UTF-8"
	}
	return result.Charset
}
