package phase

import (
	"context"

	"github.com/archctl/archctl/configurer"
	log "github.com/sirupsen/logrus"
)

// ConfigureLocale generates the locales and sets the default language
type ConfigureLocale struct {
	GenericPhase
}

// Title for the phase
func (p *ConfigureLocale) Title() string {
	return "Configure locale"
}

// Run the phase
func (p *ConfigureLocale) Run(_ context.Context) error {
	h := p.host()
	c := p.configurer()
	settings := p.Config.OS

	var steps []func() error
	if len(settings.Locale) > 0 {
		steps = append(steps, func() error {
			return h.AppendFile(p.target(configurer.LocaleGenPath), configurer.MultilineString(settings.Locale...))
		})
	}

	steps = append(steps,
		func() error { return c.LocaleGen(h, p.root()) },
		func() error {
			log.Infof("%s: setting LANG=%s", h, settings.Lang)
			return h.WriteFile(p.target(configurer.LocaleConfPath), configurer.LocaleConf(settings.Lang))
		},
	)

	return p.each(steps...)
}
