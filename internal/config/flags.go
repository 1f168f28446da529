package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/classhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-r string   store driver: sheets | postgres | memory
//	-s string   spreadsheet ID (sheets driver)
//	-w int      worksheet index (sheets driver)
//	-f string   service-account credentials file (sheets driver)
//	-d string   PostgreSQL DSN (postgres driver)
//	-a string   admin shared secret (empty disables the gate)
//	-n string   instructor display name
//	-i string   instructor handle (seeded at startup when set)
//	-u string   profile base URL (display only)
//	-l int      rate-limit window, seconds
//	-m int      rate-limit max add attempts per window
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-s", "-w", "-f", "-d", "-a", "-n", "-i", "-u", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StoreDriver, "r", config.StoreDriver, "store driver (sheets, postgres, memory)")
	fs.StringVar(&config.SpreadsheetID, "s", config.SpreadsheetID, "spreadsheet ID")
	fs.IntVar(&config.WorksheetIndex, "w", config.WorksheetIndex, "worksheet index")
	fs.StringVar(&config.CredentialsFile, "f", config.CredentialsFile, "service-account credentials file")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AdminSecret, "a", config.AdminSecret, "admin shared secret")
	fs.StringVar(&config.InstructorName, "n", config.InstructorName, "instructor display name")
	fs.StringVar(&config.InstructorHandle, "i", config.InstructorHandle, "instructor handle")
	fs.StringVar(&config.ProfileBaseURL, "u", config.ProfileBaseURL, "profile base URL")

	rateLimitWindow := fs.Int("l", int(config.RateLimitWindow.Seconds()), "rate-limit window (in seconds)")
	fs.IntVar(&config.RateLimitMaxAttempts, "m", config.RateLimitMaxAttempts, "rate-limit max attempts per window")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RateLimitWindow = time.Duration(*rateLimitWindow) * time.Second
}
