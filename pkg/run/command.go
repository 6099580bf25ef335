/*
   EdidForge - EDID generator for display test rigs
   Copyright (c) 2026, the EdidForge authors

   This file is part of EdidForge.

   EdidForge is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   EdidForge is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with EdidForge. If not, see <http://www.gnu.org/licenses/>.
*/

package run

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//
const (
	prologueHeader = ""
	epilogueHeader = `
Notes:

`
)

/*
	The package initializer sets up logging based on logrus. The following
	environment variables can be used to configure logging:

		LOG_FORMAT		set to `json` for JSON logging
		LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
		LOG_METHODS		set to non-empty for including methods in log
		LOG_LEVEL		`panic`, `fatal`, `error`, `warn`, `info`, `debug`, `trace`
*/
func init() {

	log.SetOutput(os.Stdout)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if strings.ToLower(os.Getenv("LOG_FORCE_COLORS")) != "" {
		log.SetFormatter(&log.TextFormatter{
			ForceColors: true,
		})
	}

	if strings.ToLower(os.Getenv("LOG_METHODS")) != "" {
		log.SetReportCaller(true)
	}

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			log.Errorf("invalid log level: '%s'; valid levels are: panic, "+
				"fatal, error, warn, info, debug, trace", level)
		} else {
			log.SetLevel(l)
		}
	}
}

//
var (
	UnderTest bool
)

// DieOnError exits the running process if e is not nil. The error gets logged.
func DieOnError(e error) {
	if e != nil {
		fmt.Printf("%v\n", e)
		if UnderTest {
			panic(e.Error())
		} else {
			os.Exit(1)
		}
	}
}

// Die exits the running process, while logging the given message.
func Die(msg string, params ...interface{}) {
	if UnderTest {
		err := fmt.Sprintf(msg, params...)
		fmt.Print(err)
		panic(err)
	} else {
		if len(params) > 0 {
			fmt.Printf(msg, params...)
		} else {
			fmt.Println(msg)
		}
		os.Exit(1)
	}
}

/*
	NewCommand creates a base command instance, wrapping a new Cobra command.
	The exec function is invoked when the command's Execute method is called.
*/
func NewCommand(use, short, long, helpPrologue, helpEpilogue string,
	exec func() error) *Command {

	ret := Command{
		cmd: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
			RunE: func(*cobra.Command, []string) error {
				return exec()
			},
			SilenceErrors:         true,
			SilenceUsage:          true,
			DisableFlagsInUseLine: true,
		},
		settings:     map[string]*setting{},
		helpPrologue: helpPrologue,
		helpEpilogue: helpEpilogue,
	}
	ret.helpFunc = ret.cmd.HelpFunc()
	ret.cmd.SetHelpFunc(ret.help)
	return &ret
}

/*
	Command is a wrapper around Cobra & Viper. It keeps the boiler plate of
	binding a setting to a flag, an environment variable and a target
	variable in one place, and produces a meaningful error message when a
	required setting is missing that names both the flag and the variable.
*/
type Command struct {
	//
	cmd *cobra.Command
	//
	settings map[string]*setting
	//
	Args []string
	//
	helpPrologue string
	helpEpilogue string
	helpFunc     func(*cobra.Command, []string)
}

//
func (c *Command) help(cmd *cobra.Command, args []string) {
	if c.helpPrologue != "" {
		fmt.Fprintln(cmd.OutOrStdout(), prologueHeader+c.helpPrologue)
	}
	if c.helpFunc != nil {
		c.helpFunc(cmd, args)
	}
	if c.helpEpilogue != "" {
		fmt.Fprintln(cmd.OutOrStdout(), epilogueHeader+c.helpEpilogue)
	} else {
		fmt.Fprintln(cmd.OutOrStdout())
	}
}

/*
	Execute invokes the exec function that was set on this command when it
	was created. If args is of non-zero length, it overrides os.Args.
*/
func (c *Command) Execute(args []string) error {
	if len(args) > 0 {
		c.cmd.SetArgs(args)
	}
	return c.cmd.Execute()
}

/*
	AddSetting adds a setting to this command. Target is a pointer to the
	variable to which the setting should be bound; string, int and bool
	targets are supported. Flag specifies the long (double-dash) command
	line flag for the setting, short its short (single-dash) version, and
	env the name of the environment variable that may carry this setting.
	def is a default value for the setting; when set to nil, the default
	value will be the zero value of the setting's type. help carries online
	help info about this setting, and required specifies whether this is a
	mandatory setting.
*/
func (c *Command) AddSetting(target interface{}, flag, short, env string,
	def interface{}, help string, required bool) {

	s := &setting{flag: flag, env: env, required: required, target: target}
	c.settings[flag] = s

	if required && def != nil {
		Die("required setting '%s' does not take a default value", flag)
	}

	log.Tracef("add setting: flag=%s, env=%s", flag, env)

	helpMsg := help
	if env != "" {
		helpMsg = fmt.Sprintf("%s (%s)", help, env)
	}

	bindSetting(c.cmd.Flags(), target, flag, short, def, helpMsg)

	viper.BindPFlag(flag, c.cmd.Flags().Lookup(flag))
	if env != "" {
		viper.BindEnv(flag, env)
	}
}

//
func bindSetting(flags *pflag.FlagSet, target interface{},
	flag, short string, def interface{}, helpMsg string) {

	switch t := target.(type) {

	case *string:
		d := ""
		if def != nil {
			var ok bool
			if d, ok = def.(string); !ok {
				Die("default value for setting '%s' has incorrect type", flag)
			}
		}
		flags.StringVarP(t, flag, short, d, helpMsg)

	case *int:
		d := 0
		if def != nil {
			var ok bool
			if d, ok = def.(int); !ok {
				Die("default value for setting '%s' has incorrect type", flag)
			}
		}
		flags.IntVarP(t, flag, short, d, helpMsg)

	case *bool:
		d := false
		if def != nil {
			var ok bool
			if d, ok = def.(bool); !ok {
				Die("default value for setting '%s' has incorrect type", flag)
			}
		}
		flags.BoolVarP(t, flag, short, d, helpMsg)

	default:
		Die("setting '%s' is of unsupported type", flag)
	}
}

/*
	ParseSettings handles all settings that have been added thus far via the
	AddSetting method. Afterwards, setting values are available in the
	variables to which they were bound. This should be called in the exec
	function that was set on this command when it was created, before any
	references to variables that are bound to settings.
*/
func (c *Command) ParseSettings() {
	for _, s := range c.settings {
		DieOnError(s.get())
	}
	c.Args = c.cmd.Flags().Args()
}

//
type setting struct {
	flag     string
	env      string
	required bool
	target   interface{}
}

/*
	get pulls the setting value from Viper into the target variable. Viper's
	BindEnv does not write through to the bound flag variable, so the target
	is always set from the Viper value here: a specified flag wins over the
	environment variable, which wins over the default.
*/
func (s *setting) get() error {

	missing := false

	switch t := s.target.(type) {

	case *string:
		*t = viper.GetString(s.flag)
		missing = *t == ""

	case *int:
		*t = viper.GetInt(s.flag)
		missing = *t == 0

	case *bool:
		*t = viper.GetBool(s.flag)
		missing = !*t

	default:
		return fmt.Errorf("setting '%s' is of unsupported type", s.flag)
	}

	log.Tracef("get setting: flag=%s", s.flag)

	if s.required && missing {
		msg := fmt.Sprintf(
			"you need to specify the --%s command line flag", s.flag)
		if s.env != "" {
			msg = fmt.Sprintf(
				"%s or the %s environment variable", msg, s.env)
		}
		return fmt.Errorf("%s", msg)
	}

	return nil
}
