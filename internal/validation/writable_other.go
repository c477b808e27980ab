//go:build !unix

package validation

import "os"

func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".create-bluewaves-app-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
