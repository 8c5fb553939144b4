package v1beta1

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func testConfig() *Config {
	return &Config{
		User: User{Name: "alice", Shell: "zsh"},
		OS: OS{
			Packages:        []string{"base", "linux", "grub", "zsh", "os-prober"},
			Timezone:        "Asia/Shanghai",
			Lang:            "en_US.UTF-8",
			Locale:          []string{"en_US.UTF-8 UTF-8", "zh_CN.UTF-8 UTF-8"},
			Hostname:        "arch",
			EnabledServices: []string{"NetworkManager"},
		},
		Network:   Network{Reflector: true},
		Partition: Partition{Boot: "/dev/sda1", Root: "/dev/sda2", Label: "ARCH"},
		Grub:      Grub{BootloaderID: "GRUB"},
	}
}

func TestCheckShellNotInPackages(t *testing.T) {
	cfg := testConfig()
	cfg.User.Shell = "fish"

	err := cfg.Check()
	require.EqualError(t, err, "[CONFIG_ERROR] user.shell is not included in os.packages.")
	require.True(t, IsConfigError(err))
}

func TestCheckOSProber(t *testing.T) {
	cfg := testConfig()
	cfg.OS.Packages = []string{"base", "zsh"}

	err := cfg.Check()
	require.EqualError(t, err, "[CONFIG_ERROR] grub.disable_os_prober is false, but os-prober is not included in os.packages.")

	cfg.OS.Packages = append(cfg.OS.Packages, "os-prober")
	require.NoError(t, cfg.Check())

	cfg.OS.Packages = []string{"base", "zsh"}
	cfg.Grub.DisableOSProber = true
	require.NoError(t, cfg.Check())
}

func TestCheckReportsShellFirst(t *testing.T) {
	cfg := testConfig()
	cfg.OS.Packages = []string{"base"}

	require.EqualError(t, cfg.Check(), "[CONFIG_ERROR] user.shell is not included in os.packages.")
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, testConfig().Validate())
	})

	t.Run("missing user name", func(t *testing.T) {
		cfg := testConfig()
		cfg.User.Name = ""
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "user.name: failed required validation")
	})

	t.Run("empty package list", func(t *testing.T) {
		cfg := testConfig()
		cfg.OS.Packages = nil
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "os.packages")
	})

	t.Run("invalid mirror", func(t *testing.T) {
		cfg := testConfig()
		cfg.Network.Mirrors = []string{"https://mirror.example.com/archlinux/$repo/os/$arch", "not a url"}
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "network.mirrors[1]: failed url validation")
	})

	t.Run("device outside /dev", func(t *testing.T) {
		cfg := testConfig()
		cfg.Partition.Root = "sda2"
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "partition.root: failed startswith=/dev/ validation")
	})

	t.Run("same device twice", func(t *testing.T) {
		cfg := testConfig()
		cfg.Partition.Root = cfg.Partition.Boot
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "partition.root: failed nefield=Boot validation")
	})

	t.Run("bad lang", func(t *testing.T) {
		cfg := testConfig()
		cfg.OS.Lang = "not_a_locale!"
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "lang: must be a locale name with a valid language tag")
	})

	t.Run("C lang", func(t *testing.T) {
		cfg := testConfig()
		cfg.OS.Lang = "C.UTF-8"
		require.NoError(t, cfg.Validate())
	})

	t.Run("bad locale line", func(t *testing.T) {
		cfg := testConfig()
		cfg.OS.Locale = []string{"en_US.UTF-8"}
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "locale")
	})
}

func TestUnmarshalYAMLSetsDefaults(t *testing.T) {
	data := `
user:
  name: alice
  shell: bash
os:
  packages: [base, bash]
  hostname: arch
partition:
  boot: /dev/vda1
  root: /dev/vda2
`
	cfg := &Config{}
	require.NoError(t, yaml.Unmarshal([]byte(data), cfg))
	require.Equal(t, "UTC", cfg.OS.Timezone)
	require.Equal(t, "en_US.UTF-8", cfg.OS.Lang)
	require.Equal(t, "ARCH", cfg.Partition.Label)
	require.Equal(t, "GRUB", cfg.Grub.BootloaderID)
	require.Equal(t, "/dev/vda2", cfg.Partition.Root)
}

func TestOSErrorsUseTomlNames(t *testing.T) {
	require.Equal(t, "toml", validation.ErrorTag, "set when the package loads")

	o := OS{Lang: "en_US.UTF-8", Locale: []string{"en_US.UTF-8"}}
	err := o.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "locale: (0: must be in the form")
}
