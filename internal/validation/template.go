package validation

import "github.com/imamik/create-bluewaves-app/internal/config"

// ValidateTemplate checks that s names one of the known templates.
func ValidateTemplate(s string) error {
	_, err := config.ParseTemplate(s)
	return err
}

// ValidatePackageManager checks that s names a package manager a user may
// choose.
func ValidatePackageManager(s string) error {
	_, err := config.ParsePackageManager(s)
	return err
}
