// Package files reads and writes source documents as text.Rope values.
package files

import (
	"io"
	"os"

	"splitfmt/text"
)

// Read loads path's entire contents into a Rope.
func Read(path string) (text.Rope, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return text.New(), err
	}
	return text.NewString(string(content)), nil
}

// Write overwrites path with rope's contents.
func Write(path string, rope text.Rope) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, rope.Reader(0))
	return err
}
