//go:build !unix

package jsonconfig

import "os"

func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".access-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
