// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvunits"
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/factory"
	"github.com/katalvlaran/lvunits/resolver"
	"github.com/katalvlaran/lvunits/units"
)

// Configuration keys; each is also a persistent flag and LVUNITS_<KEY> with
// dashes turned into underscores.
const (
	keyConfig        = "config"
	keyLogLevel      = "log-level"
	keyLogFormat     = "log-format"
	keyEquivalencies = "equivalencies"
	keyRest          = "rest"
	keyWav           = "wav"
	keyFrequency     = "frequency"
	keyBeamArea      = "beam-area"
	keyPixelScale    = "pixscale"
	keyPlateScale    = "platescale"
	keyH0            = "h0"
	keyTcmb          = "tcmb"
	keyCosmology     = "cosmology"
)

// cmdContext is shared by every subcommand.
type cmdContext struct {
	out io.Writer
	vip *viper.Viper
	log *logrus.Logger
}

func newContext(out, errOut io.Writer) *cmdContext {
	log := logrus.New()
	log.SetOutput(errOut)

	return &cmdContext{out: out, vip: viper.New(), log: log}
}

// load reads the config file (explicit, or lvunits.yaml in the working
// directory if present), binds the environment and configures logging.
func (c *cmdContext) load() error {
	c.vip.SetEnvPrefix("LVUNITS")
	c.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.vip.AutomaticEnv()

	if file := c.vip.GetString(keyConfig); file != "" {
		c.vip.SetConfigFile(file)
	} else {
		c.vip.SetConfigName("lvunits")
		c.vip.SetConfigType("yaml")
		c.vip.AddConfigPath(".")
	}
	if err := c.vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	lvl, err := logrus.ParseLevel(c.vip.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	c.log.SetLevel(lvl)
	switch f := c.vip.GetString(keyLogFormat); f {
	case "text":
		c.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		c.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", f)
	}
	c.log.WithField("config", c.vip.ConfigFileUsed()).Debug("configuration loaded")

	return nil
}

// bareUnit is the unit assumed when a key is given as a bare number.
var bareUnit = map[string]units.Unit{
	keyH0:   factory.HubbleUnit,
	keyTcmb: units.Kelvin,
}

// params collects factory parameters from flags, env and config.
func (c *cmdContext) params() (factory.Params, error) {
	p := factory.Params{Cosmology: c.vip.GetString(keyCosmology)}
	for key, dst := range map[string]*units.Quantity{
		keyRest:       &p.Rest,
		keyWav:        &p.Wav,
		keyFrequency:  &p.Frequency,
		keyBeamArea:   &p.BeamArea,
		keyPixelScale: &p.PixelScale,
		keyPlateScale: &p.PlateScale,
		keyH0:         &p.H0,
		keyTcmb:       &p.Tcmb,
	} {
		s := c.vip.GetString(key)
		if s == "" {
			continue
		}
		q, err := units.ParseQuantity(s)
		if err != nil {
			return factory.Params{}, fmt.Errorf("--%s: %w", key, err)
		}
		if u, ok := bareUnit[key]; ok && q.Unit.IsDimensionless() && q.Unit.Scale() == 1 {
			q.Unit = u
		}
		*dst = q
	}

	return p, nil
}

// build composes the named factories; no names yields ok == false.
func (c *cmdContext) build(names []string, p factory.Params) (eq equivalency.Equivalency, ok bool, err error) {
	names = splitList(names)
	if len(names) == 0 {
		return equivalency.Equivalency{}, false, nil
	}
	eq, err = factory.Default().BuildAll(names, p)
	if err != nil {
		return equivalency.Equivalency{}, false, err
	}

	return eq, true, nil
}

// session returns a Session with the configured equivalencies enabled
// persistently, plus the per-call explicit equivalencies.
func (c *cmdContext) session(explicit []string, obs resolver.Observer) (*lvunits.Session, []equivalency.Equivalency, error) {
	p, err := c.params()
	if err != nil {
		return nil, nil, err
	}

	opts := []lvunits.Option{lvunits.WithLogger(c.log)}
	if obs != nil {
		opts = append(opts, lvunits.WithObserver(obs))
	}
	enabled, ok, err := c.build(c.vip.GetStringSlice(keyEquivalencies), p)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", keyEquivalencies, err)
	}
	if ok {
		opts = append(opts, lvunits.WithEnabled(enabled))
	}

	var eqs []equivalency.Equivalency
	eq, ok, err := c.build(explicit, p)
	if err != nil {
		return nil, nil, fmt.Errorf("--equiv: %w", err)
	}
	if ok {
		eqs = append(eqs, eq)
	}

	return lvunits.NewSession(opts...), eqs, nil
}

// splitList accepts both repeated values and comma or space separated lists,
// since env values arrive as one string.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		out = append(out, strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })...)
	}

	return out
}
