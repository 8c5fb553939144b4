package v1beta1

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	validator "github.com/go-playground/validator/v10"
)

// Config describes the archctl installation configuration
type Config struct {
	User      User      `yaml:"user" toml:"user"`
	OS        OS        `yaml:"os" toml:"os"`
	Network   Network   `yaml:"network" toml:"network"`
	Partition Partition `yaml:"partition" toml:"partition"`
	Grub      Grub      `yaml:"grub" toml:"grub"`
	Pacman    Pacman    `yaml:"pacman" toml:"pacman"`

	// Origin is the path of the file the configuration was read from
	Origin string `yaml:"-" toml:"-"`
}

// User is the account created on the installed system
type User struct {
	Name         string `yaml:"name" toml:"name" validate:"required"`
	Shell        string `yaml:"shell" toml:"shell" validate:"required"`
	RootPassword string `yaml:"root_password,omitempty" toml:"root_password,omitempty"`
}

// OS holds the settings for the installed operating system
type OS struct {
	Packages        []string `yaml:"packages" toml:"packages" validate:"required,min=1,dive,required"`
	Timezone        string   `yaml:"timezone" toml:"timezone" default:"UTC" validate:"required"`
	Lang            string   `yaml:"lang" toml:"lang" default:"en_US.UTF-8" validate:"required"`
	Locale          []string `yaml:"locale" toml:"locale" validate:"dive,required"`
	Hostname        string   `yaml:"hostname" toml:"hostname" validate:"required,hostname_rfc1123"`
	EnabledServices []string `yaml:"enabled_services" toml:"enabled_services" validate:"dive,required"`
}

// HasPackage returns true when the package is in the package list
func (o *OS) HasPackage(name string) bool {
	for _, p := range o.Packages {
		if p == name {
			return true
		}
	}
	return false
}

// Network controls how the pacman mirror list is produced
type Network struct {
	Reflector bool     `yaml:"reflector" toml:"reflector"`
	Mirrors   []string `yaml:"mirrors" toml:"mirrors" validate:"dive,url"`
}

// Partition names the target block devices
type Partition struct {
	Boot  string `yaml:"boot" toml:"boot" validate:"required,startswith=/dev/"`
	Root  string `yaml:"root" toml:"root" validate:"required,startswith=/dev/,nefield=Boot"`
	Label string `yaml:"label" toml:"label" default:"ARCH" validate:"required,max=255"`
}

// Grub holds the bootloader settings
type Grub struct {
	BootloaderID    string `yaml:"bootloader_id" toml:"bootloader_id" default:"GRUB" validate:"required"`
	DisableOSProber bool   `yaml:"disable_os_prober" toml:"disable_os_prober"`
}

// Pacman toggles extra package repositories
type Pacman struct {
	Multilib    bool `yaml:"multilib" toml:"multilib"`
	ArchlinuxCN bool `yaml:"archlinuxcn" toml:"archlinuxcn"`
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type config Config
	yc := (*config)(c)

	if err := unmarshal(yc); err != nil {
		return err
	}

	return c.SetDefaults()
}

// SetDefaults fills in the default values for unset fields
func (c *Config) SetDefaults() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("failed to set defaults: %w", err)
	}
	return nil
}

// Validate performs a configuration sanity check on the individual fields.
// Cross-field consistency is checked by Check.
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(tomlFieldName)
	if err := v.Struct(c); err != nil {
		return formatFieldErrors(err)
	}

	return c.OS.Validate()
}

func tomlFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func formatFieldErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// drop the root struct name from the namespace
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s validation", ns, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", ns, fe.Tag()))
		}
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
