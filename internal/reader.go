package internal

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// sniffSize is how much of a file the binary check looks at.
const sniffSize = 1024

// LooksBinary reads up to the first 1024 bytes of the file and reports
// whether they contain a NUL byte. Unreadable files are reported as binary
// so they get skipped rather than exported as garbage. This is a heuristic,
// not a content-type detector.
func LooksBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		logrus.WithError(err).Errorf("Error checking if file is binary: %s", path)
		return true
	}
	defer f.Close()

	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		logrus.WithError(err).Errorf("Error checking if file is binary: %s", path)
		return true
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}

// ReadTextFile reads the whole file as UTF-8 text, dropping invalid byte
// sequences instead of failing.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
