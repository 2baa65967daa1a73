package config

import (
	"os"

	"github.com/spf13/pflag"
)

var CliArgs *CliConfig

type CliConfig struct {
	ConfigFile string
	EnvFile    string
	Debug      bool
	Version    bool

	flags *pflag.FlagSet
}

func ParseArgs() {
	if CliArgs != nil {
		panic("already defined")
	}
	args, err := parseArgs(pflag.CommandLine, os.Args[1:])
	if err != nil {
		panic(err)
	}
	CliArgs = args
}

func parseArgs(fs *pflag.FlagSet, arguments []string) (*CliConfig, error) {
	args := &CliConfig{flags: fs}
	fs.StringVar(&args.ConfigFile, "config", "", "Path to the config file")
	fs.StringVar(&args.EnvFile, "env-file", ".env", "Path to a dotenv file loaded at startup if present")
	fs.String("listen", "", "Address to listen on, overrides listen_address")
	fs.BoolVarP(&args.Debug, "debug", "d", false, "Enable debug mode")
	fs.BoolVarP(&args.Version, "version", "v", false, "Print version and exit")
	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}
	return args, nil
}
