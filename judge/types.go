package judge

import (
	"fmt"
	"strconv"
	"strings"
)

// Status ids reported by the judge. Higher ids are less favourable outcomes;
// anything below StatusAccepted is still queued or running.
const (
	StatusInQueue             = 1
	StatusProcessing          = 2
	StatusAccepted            = 3
	StatusWrongAnswer         = 4
	StatusTimeLimitExceeded   = 5
	StatusCompilationError    = 6
	StatusRuntimeErrorSIGSEGV = 7
	StatusRuntimeErrorSIGXFSZ = 8
	StatusRuntimeErrorSIGFPE  = 9
	StatusRuntimeErrorSIGABRT = 10
	StatusRuntimeErrorNZEC    = 11
	StatusRuntimeErrorOther   = 12
	StatusInternalError       = 13
	StatusExecFormatError     = 14
)

func IsFinished(statusID int) bool {
	return statusID >= StatusAccepted
}

func IsRuntimeError(statusID int) bool {
	return statusID >= StatusRuntimeErrorSIGSEGV && statusID <= StatusRuntimeErrorOther
}

// BatchItem is a single execution request, one per test case. Textual
// fields are expected to be base64 encoded already.
type BatchItem struct {
	SourceCode           string `json:"source_code"`
	Stdin                string `json:"stdin"`
	ExpectedOutput       string `json:"expected_output"`
	LanguageID           int    `json:"language_id"`
	CompilerOptions      string `json:"compiler_options"`
	CommandLineArguments string `json:"command_line_arguments"`
	CPUTimeLimit         int    `json:"cpu_time_limit"` // seconds
	MemoryLimit          int    `json:"memory_limit"`   // kilobytes
}

// Status is the polled state of one token.
type Status struct {
	ID     int     // status_id
	Time   float64 // seconds
	Memory int     // kilobytes
}

type statusJson struct {
	StatusID int     `json:"status_id"`
	Time     Seconds `json:"time"`
	Memory   *int    `json:"memory"`
}

// Seconds accepts both "0.012" and 0.012 as well as null.
type Seconds float64

func (s *Seconds) UnmarshalJSON(b []byte) error {
	str := strings.Trim(string(b), `"`)
	if str == "" || str == "null" {
		*s = 0
		return nil
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("invalid time value %q: %w", str, err)
	}
	*s = Seconds(f)
	return nil
}

type About struct {
	Version    string `json:"version"`
	Homepage   string `json:"homepage"`
	SourceCode string `json:"source_code"`
	Maintainer string `json:"maintainer"`
}
