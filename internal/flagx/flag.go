// Package flagx lets several independent flag parsers share one command
// line: each parser picks out only the flags it owns.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and their
// values, preserving order. Both "-f value" and "-f=value" are recognised,
// and "--f" is the same flag as "-f". A value is only consumed when the
// next token does not start with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := toSet(allowedFlags)
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := allowed[canonical(name)]; keep {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, keep := allowed[canonical(arg)]; !keep {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// Positional returns the arguments that are not flags. valuedFlags names the
// flags that take a separate value, so that value is not mistaken for a
// positional argument; "--f" and "-f" are the same flag. Everything after
// "--" is positional.
func Positional(args []string, valuedFlags []string) []string {
	valued := toSet(valuedFlags)
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i+1:]...)
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			out = append(out, arg)
			continue
		}
		if strings.Contains(arg, "=") {
			continue
		}
		if _, ok := valued[canonical(arg)]; ok && i+1 < len(args) {
			i++
		}
	}

	return out
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// It returns "" when neither flag is present. When both are given the last
// one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// canonical maps "--name" to "-name", the spelling the flag package treats
// as equivalent.
func canonical(name string) string {
	if len(name) > 2 && strings.HasPrefix(name, "--") {
		return name[1:]
	}
	return name
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[canonical(n)] = struct{}{}
	}
	return set
}
