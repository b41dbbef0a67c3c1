package main

// legacyAliases maps the single-dash long options of the original pylint-exit
// CLI to their double-dash forms. pflag shorthands are single characters, so
// these are rewritten before parsing.
var legacyAliases = map[string]string{
	"-efail": "--error-fail",
	"-wfail": "--warn-fail",
	"-rfail": "--refactor-fail",
	"-cfail": "--convention-fail",
}

// normalizeLegacyArgs rewrites legacy aliases up to the "--" terminator.
func normalizeLegacyArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i, arg := range out {
		if arg == "--" {
			break
		}
		if long, ok := legacyAliases[arg]; ok {
			out[i] = long
		}
	}
	return out
}
