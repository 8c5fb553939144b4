package v1beta1

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"
)

// ConfigErrorPrefix marks configuration consistency errors in the output
const ConfigErrorPrefix = "[CONFIG_ERROR]"

// OSProberPackage is the package that provides other-OS detection for grub
const OSProberPackage = "os-prober"

// ConfigError is returned when the configuration is inconsistent
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return ConfigErrorPrefix + " " + e.Message
}

// IsConfigError returns true if the error chain contains a ConfigError
func IsConfigError(err error) bool {
	var cerr *ConfigError
	return errors.As(err, &cerr)
}

// Check verifies the cross-field consistency of the configuration. It must pass
// before anything destructive is done to the target devices. Only the first
// violation is reported.
func (c *Config) Check() error {
	if !c.OS.HasPackage(c.User.Shell) {
		return &ConfigError{Message: "user.shell is not included in os.packages."}
	}

	if !c.Grub.DisableOSProber && !c.OS.HasPackage(OSProberPackage) {
		return &ConfigError{Message: "grub.disable_os_prober is false, but os-prober is not included in os.packages."}
	}

	return nil
}

var localeLine = regexp.MustCompile(`^\S+ \S+$`)

func init() {
	validation.ErrorTag = "toml"
}

// Validate checks the language and locale settings
func (o *OS) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Lang, validation.By(validLang)),
		validation.Field(&o.Locale, validation.Each(validation.Match(localeLine).Error("must be in the form '<locale> <charset>'"))),
	)
}

// validLang accepts POSIX style locale names such as en_US.UTF-8 whose
// language part is a well-formed language tag
func validLang(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	name := s
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}

	if name == "C" || name == "POSIX" {
		return nil
	}

	if _, err := language.Parse(strings.ReplaceAll(name, "_", "-")); err != nil {
		return errors.New("must be a locale name with a valid language tag")
	}

	return nil
}
