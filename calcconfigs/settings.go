package calcconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/vars"
)

type Prompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		"> ",
	))
}

type HistoryFile string

var historyFlag = cmds.Var[string]("-history")

func (Module) HistoryFile(
	mode modes.Mode,
	loader configs.Loader,
) HistoryFile {
	if mode == modes.ModeDevelopment {
		return ""
	}
	var defaultPath string
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = filepath.Join(home, ".taicalc_history")
	}
	return HistoryFile(vars.FirstNonZero(
		*historyFlag,
		configs.First[string](loader, "history_file"),
		defaultPath,
	))
}

// Trace enables parser step logging.
type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

type QuitWords []string

func (Module) QuitWords(
	loader configs.Loader,
) QuitWords {
	if words := configs.First[[]string](loader, "quit"); len(words) > 0 {
		return words
	}
	return QuitWords{"q"}
}

// ResultFormat switches to scientific notation for non-integral results whose
// decimal order of magnitude reaches SciThreshold.
type ResultFormat struct {
	SciThreshold int
	SciDigits    int
}

var (
	sciThresholdFlag = cmds.Var[int]("-sci-threshold")
	sciDigitsFlag    = cmds.Var[int]("-sci-digits")
)

func (Module) ResultFormat(
	loader configs.Loader,
) ResultFormat {
	digits := 5
	if *sciDigitsFlag > 0 {
		digits = *sciDigitsFlag
	} else {
		var n int
		if err := loader.Decode("sci_digits", &n); err == nil {
			digits = n
		}
	}
	return ResultFormat{
		SciThreshold: vars.FirstNonZero(
			*sciThresholdFlag,
			configs.First[int](loader, "sci_threshold"),
			4,
		),
		SciDigits: digits,
	}
}
