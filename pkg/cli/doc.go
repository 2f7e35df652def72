/*
Package cli provides command-line interface utilities for credhyg.

The cli package includes the error taxonomy used for exit-status mapping
and the output formatters used by the credhyg command.

Output Formatting:

Command results can be rendered as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Errors:

ConfigError covers anything caught before file access (bad flags, bad
config values); CommandError wraps failures from a running command. Both
exit the process with status 1, but the distinction keeps the single
fatal line shown to the user precise about what went wrong.
*/
package cli
