package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote service (default from Config)
//	-s string   path of the session file
//	-t int      toast lifetime in seconds
//	-p int      rows per page in list views
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote service")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path of the session file")
	toastTTL := fs.Int("t", int(cfg.ToastTTL.Seconds()), "toast lifetime (in seconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "rows per page in list views")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ToastTTL = time.Duration(*toastTTL) * time.Second
}
