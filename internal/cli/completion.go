package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "shell")
	IsFile    bool     // true if the flag takes a file path
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "details", Short: "d", Help: "Show timings and memory statistics"},
	{Long: "progress", Help: "Show a spinner while generators run"},
	{Long: "max-reference-index", Help: "Largest index read from a reference file", Values: []string{"1001"}, ValueName: "number"},
	{Long: "metrics-file", Help: "Write Prometheus metrics to a textfile", IsFile: true, ValueName: "file"},
	{Long: "chart", Help: "Write an HTML chart of the benchmark", IsFile: true, ValueName: "file"},
	{Long: "log-level", Help: "Diagnostic log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// Positional words offered by the completion scripts.
var (
	completionModes      = []string{"naive", "dynamic", "all"}
	completionAlgorithms = []string{"iterative", "recursive", "direct"}
)

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer) error {
	var opts []string
	var caseBody strings.Builder
	var filePatterns []string
	for _, f := range flagRegistry {
		opts = append(opts, "--"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, "--"+f.Long)
		case len(f.Values) > 0:
			fmt.Fprintf(&caseBody, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				f.Long, strings.Join(f.Values, " "))
		}
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&caseBody, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	script := fmt.Sprintf(`# Bash completion script for fibfinder
# Add this to your ~/.bashrc or ~/.bash_completion

_fibfinder_completions() {
    local cur prev opts modes algorithms words
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    modes="%s"
    algorithms="%s"

    case "${prev}" in
%s        naive|dynamic)
            COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi

    # Reference file after "all <n>"
    if [[ ${COMP_CWORD} -ge 3 && "${COMP_WORDS[COMP_CWORD-2]}" == "all" ]]; then
        COMPREPLY=( $(compgen -f -- "${cur}") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "${modes}" -- "${cur}") )
}

complete -F _fibfinder_completions fibfinder
`, strings.Join(opts, " "), strings.Join(completionModes, " "), strings.Join(completionAlgorithms, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	args = append(args,
		"        '1:mode:("+strings.Join(completionModes, " ")+")'",
		"        '2:algorithm or index:->second'",
		"        '3::index or reference file:_files'",
	)

	script := fmt.Sprintf(`#compdef fibfinder

# Zsh completion script for fibfinder
# Add this to your ~/.zshrc or place in $fpath

_fibfinder() {
    local state
    _arguments -s \
%s

    case $state in
        second)
            if [[ $words[2] == (naive|dynamic) ]]; then
                _values 'algorithm' %s
            fi
            ;;
    esac
}

_fibfinder "$@"
`, strings.Join(args, " \\\n"), strings.Join(completionAlgorithms, " "))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer) error {
	lines := []string{
		"# Fish completion script for fibfinder",
		"# Add this to ~/.config/fish/completions/fibfinder.fish",
		"",
		"# Disable file completion by default",
		"complete -c fibfinder -f",
		"",
		"# Modes and algorithms",
		fmt.Sprintf("complete -c fibfinder -n '__fish_use_subcommand' -a '%s'", strings.Join(completionModes, " ")),
		fmt.Sprintf("complete -c fibfinder -n '__fish_seen_subcommand_from naive dynamic' -a '%s'", strings.Join(completionAlgorithms, " ")),
		"",
		"# Options",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c fibfinder"}
	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	}
	return strings.Join(parts, " ")
}
