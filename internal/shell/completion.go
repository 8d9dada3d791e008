package shell

import (
	"fmt"
)

const bashCompletion = `# Bash completion for uvenv
_uvenv_completion() {
    local cur prev commands

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    commands="create activate list remove lock thaw python shell-integration doctor"

    case "${prev}" in
        uvenv)
            COMPREPLY=($(compgen -W "${commands}" -- ${cur}))
            return 0
            ;;
        activate|remove|lock|thaw)
            local envs=$(uvenv list --quiet 2>/dev/null)
            COMPREPLY=($(compgen -W "${envs}" -- ${cur}))
            return 0
            ;;
        python)
            COMPREPLY=($(compgen -W "install list" -- ${cur}))
            return 0
            ;;
    esac
}

complete -F _uvenv_completion uvenv
`

const zshCompletion = `#compdef uvenv
# Zsh completion for uvenv

_uvenv() {
    local context state line
    typeset -A opt_args

    _arguments \
        '1: :->command' \
        '*: :->args'

    case $state in
        command)
            _values 'commands' \
                'create[Create a new virtual environment]' \
                'activate[Print activation command for environment]' \
                'list[List all virtual environments]' \
                'remove[Remove a virtual environment]' \
                'lock[Generate lockfile for environment]' \
                'thaw[Rebuild environment from lockfile]' \
                'python[Manage python interpreters]' \
                'shell-integration[Install shell completion]' \
                'doctor[Diagnose the uvenv setup]'
            ;;
        args)
            case ${words[2]} in
                activate|remove|lock|thaw)
                    _values 'environments' ${(f)"$(uvenv list --quiet 2>/dev/null)"}
                    ;;
            esac
            ;;
    esac
}

_uvenv "$@"
`

const fishCompletion = `# Fish completion for uvenv

complete -c uvenv -f -n '__fish_use_subcommand' -a 'create' -d 'Create a new virtual environment'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'activate' -d 'Print activation command for environment'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'list' -d 'List all virtual environments'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'remove' -d 'Remove a virtual environment'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'lock' -d 'Generate lockfile for environment'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'thaw' -d 'Rebuild environment from lockfile'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'python' -d 'Manage python interpreters'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'shell-integration' -d 'Install shell completion'
complete -c uvenv -f -n '__fish_use_subcommand' -a 'doctor' -d 'Diagnose the uvenv setup'

complete -c uvenv -f -n '__fish_seen_subcommand_from activate remove lock thaw' -a '(uvenv list --quiet 2>/dev/null)'

complete -c uvenv -f -n '__fish_seen_subcommand_from remove' -l force -s f -d 'Force removal without confirmation'
`

// CompletionScript는 셸별 completion 스크립트를 반환한다.
func CompletionScript(shellType string) (string, error) {
	switch shellType {
	case "bash":
		return bashCompletion, nil
	case "zsh":
		return zshCompletion, nil
	case "fish":
		return fishCompletion, nil
	default:
		return "", fmt.Errorf("shell.CompletionScript: 지원하지 않는 셸: %s", shellType)
	}
}
