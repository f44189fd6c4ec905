// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/meta"
)

const bashCompletionScript = `# bash completion for zowe
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_zowe()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local conn="--host -H --port -P --user -u --password --token-type --token-value --base-path --protocol --reject-unauthorized"
    local common="$conn --color -c --output -o"
    local cmp="$common --binary -b --encoding --seqnum --context-lines --browser-view --interactive -i --json --stats --response-timeout --volume-serial"

    case ${COMP_CWORD} in
    1)
        COMPREPLY=( $(compgen -W "zos-files zos-workflows auth completion --help --version" -- "$cur") )
        return 0
        ;;
    2)
        case ${COMP_WORDS[1]} in
        zos-files|files) COMPREPLY=( $(compgen -W "compare" -- "$cur") ) ;;
        zos-workflows|wf) COMPREPLY=( $(compgen -W "archive delete" -- "$cur") ) ;;
        auth) COMPREPLY=( $(compgen -W "logout" -- "$cur") ) ;;
        completion) COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") ) ;;
        esac
        return 0
        ;;
    3)
        case ${COMP_WORDS[1]} in
        zos-files|files) COMPREPLY=( $(compgen -W "local-file-uss-file local-file-data-set uss-file data-set" -- "$cur") ) ;;
        zos-workflows|wf) COMPREPLY=( $(compgen -W "active-workflow" -- "$cur") ) ;;
        auth) COMPREPLY=( $(compgen -W "apiml" -- "$cur") ) ;;
        esac
        return 0
        ;;
    esac

    case "$prev" in
    --output|-o)
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
        ;;
    --protocol)
        COMPREPLY=( $(compgen -W "http https" -- "$cur") )
        return 0
        ;;
    esac

    local opts="$common"
    case ${COMP_WORDS[1]} in
    zos-files|files)
        opts="$cmp"
        case ${COMP_WORDS[3]} in
        uss-file|uss|data-set|ds) opts="$cmp --binary2 --encoding2 --volume-serial2" ;;
        esac
        ;;
    zos-workflows|wf)
        opts="$common --workflow-key --zosmf-version"
        ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Local file arguments complete as paths.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _zowe zowe
`

const zshCompletionScript = `#compdef zowe

_zowe() {
  local -a groups
  groups=(
    'zos-files:manage z/OS data sets and USS files'
    'zos-workflows:archive and delete z/OSMF workflows'
    'auth:connect to the API Mediation Layer authentication service'
    'completion:generate shell completion script'
  )

  local -a conn
  conn=(
  '(-H --host)'{-H,--host}'[host name]:host'
  '(-P --port)'{-P,--port}'[port]:port'
  '(-u --user)'{-u,--user}'[user name]:user'
  '--password[password]:password'
  '--token-type[token type]:type'
  '--token-value[token value]:value'
  '--base-path[base path]:path'
  '--protocol[protocol]:protocol:(http https)'
  '--reject-unauthorized[reject self-signed certificates]'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  )

  local -a cmp
  cmp=(
  '(-b --binary)'{-b,--binary}'[binary transfer]'
  '--encoding[code page]:encoding'
  '--seqnum[compare sequence numbers]'
  '--context-lines[context lines]:lines'
  '--browser-view[open in browser]'
  '(-i --interactive)'{-i,--interactive}'[page through the diff]'
  '--json[compare as JSON]'
  '--stats[show line statistics]'
  '--response-timeout[response timeout seconds]:seconds'
  '--volume-serial[volume serial]:volser'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'zowe commands' groups
    return
  fi

  case $words[2] in
    zos-files|files)
      case $CURRENT in
        3) _values 'command' compare ;;
        4) _values 'compare' local-file-uss-file local-file-data-set uss-file data-set ;;
        *) _arguments -C $conn $cmp \
             '--binary2[binary transfer of the second file]' \
             '--encoding2[code page of the second file]:encoding' \
             '--volume-serial2[volume serial of the second data set]:volser' \
             '*:file:_files' ;;
      esac
      ;;
    zos-workflows|wf)
      case $CURRENT in
        3) _values 'command' archive delete ;;
        4) _values 'type' active-workflow ;;
        *) _arguments -C $conn '--workflow-key[workflow key]:key' '--zosmf-version[z/OSMF version]:version' ;;
      esac
      ;;
    auth)
      case $CURRENT in
        3) _values 'command' logout ;;
        4) _values 'service' apiml ;;
        *) _arguments -C $conn ;;
      esac
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _zowe zowe
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	case "":
		// Try to detect from SHELL or print usage
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: zowe completion [bash|zsh]")
		}
	default:
		return fmt.Errorf("unsupported shell %q, use bash or zsh", shell)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "zowe completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
